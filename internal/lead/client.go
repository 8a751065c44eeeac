package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orbiter/internal/errors"
	"orbiter/internal/log"

	"github.com/google/uuid"
)

// FailureMessage is shown when a submission does not go through.
const FailureMessage = "There was an error submitting the form. Please try again."

// SuccessMessage is shown after a successful submission.
const SuccessMessage = "Your demo request has been submitted successfully. We'll contact you soon."

// Receipt describes an accepted submission.
type Receipt struct {
	ID          string
	SubmittedAt time.Time
	StatusCode  int
}

type payload struct {
	Form
	SubmissionID string    `json:"submission_id"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// Client posts demo requests to an HTTP endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	now      func() time.Time
}

// NewClient creates a client for endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		now:      time.Now,
	}
}

// Endpoint returns the submission URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Submit validates form and posts it as JSON. Validation failures return
// before any request is made.
func (c *Client) Submit(ctx context.Context, form Form) (Receipt, error) {
	if err := form.Validate(); err != nil {
		return Receipt{}, err
	}

	p := payload{
		Form:         form.Normalized(),
		SubmissionID: uuid.New().String(),
		SubmittedAt:  c.now().UTC(),
	}
	logger := log.LogWithFields(log.F("submission_id", p.SubmissionID), log.F("endpoint", c.endpoint))

	body, err := json.Marshal(p)
	if err != nil {
		return Receipt{}, errors.NewSubmissionError(FailureMessage, errors.SubmissionFailed, nil, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Receipt{}, errors.NewSubmissionError(FailureMessage, errors.SubmissionFailed, nil, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", p.SubmissionID)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.With(log.F("error", err)).Warn("Demo request failed")
		return Receipt{}, errors.NewSubmissionError(FailureMessage, errors.SubmissionFailed, nil, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.With(log.F("status", resp.StatusCode)).Warn("Demo request rejected")
		return Receipt{}, errors.NewSubmissionError(FailureMessage, errors.SubmissionFailed, nil,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	logger.Info("Demo request submitted")
	return Receipt{ID: p.SubmissionID, SubmittedAt: p.SubmittedAt, StatusCode: resp.StatusCode}, nil
}
