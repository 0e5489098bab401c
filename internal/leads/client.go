package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxErrorBody = 64 << 10

// Submitter is implemented by Client; handlers depend on it so tests can fake
// the endpoint.
type Submitter interface {
	Submit(ctx context.Context, lead Lead) error
}

// ClientConfig configures a Client.
type ClientConfig struct {
	Endpoint   string
	BusinessID string
	Source     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client posts leads to the ingestion endpoint. Each Submit makes exactly one
// attempt.
type Client struct {
	endpoint   string
	businessID string
	source     string
	http       *http.Client
	logger     *zap.Logger
}

// payload is the wire format expected by the ingestion API.
type payload struct {
	BusinessID string `json:"businessId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	Source     string `json:"source"`
}

type errorBody struct {
	Error string `json:"error"`
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("lead endpoint is required")
	}
	if cfg.BusinessID == "" {
		return nil, errors.New("lead business ID is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		businessID: cfg.BusinessID,
		source:     cfg.Source,
		http:       httpClient,
		logger:     logger,
	}, nil
}

// Submit validates lead and posts it once. Validation failures wrap
// ErrInvalidLead, transport failures wrap ErrUnavailable, and non-2xx
// responses return *RejectedError.
func (c *Client) Submit(ctx context.Context, lead Lead) error {
	lead = lead.Normalize()
	if err := lead.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(payload{
		BusinessID: c.businessID,
		Name:       lead.Name,
		Email:      lead.Email,
		Phone:      lead.Phone,
		Message:    lead.Message,
		Source:     c.source,
	})
	if err != nil {
		return fmt.Errorf("encode lead: %w", err)
	}

	requestID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build lead request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	logger := c.logger.With(zap.String("lead_request_id", requestID))

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("lead submission failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		logger.Info("lead submitted", zap.Int("status", resp.StatusCode))
		return nil
	}

	rejected := &RejectedError{Status: resp.StatusCode}
	var eb errorBody
	if raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)); readErr == nil {
		if json.Unmarshal(raw, &eb) == nil {
			rejected.Message = eb.Error
		}
	}
	logger.Warn("lead rejected", zap.Int("status", resp.StatusCode), zap.String("error", rejected.Message))
	return rejected
}
