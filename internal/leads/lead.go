// Package leads forwards contact-form submissions to the external lead
// ingestion API.
package leads

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var (
	// ErrInvalidLead wraps every validation failure.
	ErrInvalidLead = errors.New("invalid lead")
	// ErrUnavailable means the request never produced an HTTP response.
	ErrUnavailable = errors.New("lead endpoint unavailable")
)

// Lead is the user-supplied part of a submission.
type Lead struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (l Lead) Normalize() Lead {
	return Lead{
		Name:    strings.TrimSpace(l.Name),
		Email:   strings.TrimSpace(l.Email),
		Phone:   strings.TrimSpace(l.Phone),
		Message: strings.TrimSpace(l.Message),
	}
}

// Validate requires a name and a well-formed email; phone and message are optional.
func (l Lead) Validate() error {
	var errs []error
	if l.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if l.Email == "" {
		errs = append(errs, errors.New("email is required"))
	} else if addr, err := mail.ParseAddress(l.Email); err != nil || addr.Address != l.Email {
		errs = append(errs, fmt.Errorf("email %q is not a valid address", l.Email))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidLead, errors.Join(errs...))
	}
	return nil
}

// RejectedError is returned when the endpoint answers with a non-success status.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("lead rejected with status %d", e.Status)
	}
	return fmt.Sprintf("lead rejected with status %d: %s", e.Status, e.Message)
}
