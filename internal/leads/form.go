package leads

import (
	"context"
	"errors"
)

// Status is the lifecycle state of a contact form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

const (
	msgNetwork  = "Network error. Please try again."
	msgFallback = "Something went wrong"
)

// MsgRateLimited is shown when a visitor submits too often.
const MsgRateLimited = "Too many requests. Please wait a minute and try again."

// Form tracks one visitor's contact form: the values shown in the inputs, the
// lifecycle status, and the message displayed on error.
type Form struct {
	Values       Lead
	Status       Status
	ErrorMessage string
}

// NewForm returns an idle form with empty inputs.
func NewForm() *Form {
	return &Form{Status: StatusIdle}
}

// Submit makes a single attempt through s. On success the inputs are cleared;
// on failure they are kept so the visitor can resubmit.
func (f *Form) Submit(ctx context.Context, s Submitter) error {
	f.Status = StatusSubmitting
	f.ErrorMessage = ""

	err := s.Submit(ctx, f.Values)
	if err == nil {
		f.Status = StatusSuccess
		f.Values = Lead{}
		return nil
	}

	f.Status = StatusError
	f.ErrorMessage = UserMessage(err)
	return err
}

// Fail moves the form to the error state without attempting a submission.
func (f *Form) Fail(message string) {
	f.Status = StatusError
	f.ErrorMessage = message
}

// RateLimited marks the form as throttled.
func (f *Form) RateLimited() {
	f.Fail(MsgRateLimited)
}

func (f *Form) Succeeded() bool { return f.Status == StatusSuccess }
func (f *Form) Failed() bool    { return f.Status == StatusError }

// UserMessage maps a submission error to the text shown next to the form.
func UserMessage(err error) string {
	var rejected *RejectedError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidLead):
		return "Please enter your name and a valid email address."
	case errors.As(err, &rejected):
		if rejected.Message != "" {
			return rejected.Message
		}
		return msgFallback
	case errors.Is(err, ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return msgNetwork
	default:
		return msgFallback
	}
}
