// Package evaluator is the sole consumer of the answer-evaluation backend.
// It submits questions to POST {base}/ask and converts every failure mode
// into a single stable user-facing error, logging the underlying cause for
// diagnostics.
package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"qajudge/internal/conversation"
)

// ErrMessage is the only error text ever shown to the user for a failed
// submission. The cause behind it goes to the log, never to the screen.
const ErrMessage = "Failed to get answer. Please try again later."

// SubmissionError wraps a transport-level failure behind the stable user
// message. Unwrap exposes the cause for logging and tests.
type SubmissionError struct {
	cause error
}

func (e *SubmissionError) Error() string { return ErrMessage }
func (e *SubmissionError) Unwrap() error { return e.cause }

// Client talks to the evaluation backend. It performs no retries and keeps
// no state beyond the HTTP client; callers own the in-flight discipline
// and the conversation store.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// New builds a client for the given base URL (without the /ask suffix).
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type askRequest struct {
	Question string `json:"question"`
}

// askResponse mirrors the backend payload. Evaluation stays a pointer so
// its absence survives decoding; the body is kept verbatim, defaulting
// happens only at render time.
type askResponse struct {
	Answer     string                   `json:"answer"`
	Evaluation *conversation.Evaluation `json:"evaluation"`
	Error      string                   `json:"error"`
}

// Submit sends one question and returns the resulting record. A question
// that trims to empty is rejected locally: no network call, (nil, nil).
// Any transport failure, non-2xx status, or unparseable body comes back as
// a *SubmissionError. The caller inserts the record into the store and
// clears its input on success only.
func (c *Client) Submit(ctx context.Context, question string) (*conversation.EvaluationRecord, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, nil
	}

	body, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return nil, c.fail("marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(body))
	if err != nil {
		return nil, c.fail("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail("request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail("read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail("backend status", fmt.Errorf("status %d: %s", resp.StatusCode, respBody))
	}

	var parsed askResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, c.fail("parse response", err)
	}

	if parsed.Error != "" {
		// Degraded 200: the backend answered but could not evaluate.
		// The record carries the answer with no evaluation; presentation
		// shows the error verdict tier.
		c.log.Warn("backend returned degraded answer",
			zap.String("backend_error", parsed.Error))
	}

	c.log.Info("evaluation received",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("answer_len", len(parsed.Answer)),
		zap.Bool("evaluated", parsed.Evaluation != nil))

	now := time.Now()
	return &conversation.EvaluationRecord{
		ID:         now.UnixMilli(),
		Question:   question,
		Answer:     parsed.Answer,
		Evaluation: parsed.Evaluation,
		CreatedAt:  now,
	}, nil
}

// HealthStatus is the backend's health report.
type HealthStatus struct {
	Status         string `json:"status"`
	EvaluatorReady bool   `json:"evaluator_ready"`
	Environment    string `json:"environment"`
	Timestamp      string `json:"timestamp"`
}

// Health fetches GET {base}/health.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("health check failed with status %d", resp.StatusCode)
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to parse health response: %w", err)
	}
	return &status, nil
}

func (c *Client) fail(op string, cause error) error {
	c.log.Error("submission failed", zap.String("op", op), zap.Error(cause))
	return &SubmissionError{cause: cause}
}
