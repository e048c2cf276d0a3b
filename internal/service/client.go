// Package service holds the client for the downstream PSC data API: the
// full-record PUT and DELETE endpoints, response classification and the
// circuit breaker guarding both.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"psc-delta-consumer/internal/errs"
	"psc-delta-consumer/internal/platform/circuit"
	"psc-delta-consumer/internal/platform/metrics"
	"psc-delta-consumer/internal/psc"
	"psc-delta-consumer/internal/requestcontext"
)

const fullRecordPathFormat = "/company/%s/persons-with-significant-control/%s/full_record"

const (
	headerRequestID = "X-Request-Id"
	headerDeltaAt   = "X-DELTA-AT"
	headerKind      = "X-KIND"
)

// Client calls the PSC data API with an API key.
type Client struct {
	logger     *slog.Logger
	metrics    *metrics.Metrics
	httpClient *http.Client
	breaker    *circuit.Breaker
	baseURL    string
	apiKey     string
}

// New returns a data-API client. A nil httpClient selects a default with a
// thirty-second timeout.
func New(logger *slog.Logger, m *metrics.Metrics, breaker *circuit.Breaker, baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		logger:     logger,
		metrics:    m,
		httpClient: httpClient,
		breaker:    breaker,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// PutPscFullRecord upserts a full record for the notification id.
func (c *Client) PutPscFullRecord(ctx context.Context, companyNumber, notificationID string, record psc.FullRecord) error {
	path, err := c.fullRecordPath(companyNumber, notificationID)
	if err != nil {
		return err
	}

	body, err := json.Marshal(record)
	if err != nil {
		return errs.NewNonRetryable("failed to serialise full record", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errs.NewRetryable("failed to build PUT request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.InfoContext(ctx, "PUT full record",
		slog.String("context_id", requestcontext.ContextID(ctx)),
		slog.Int("attempt", requestcontext.Attempt(ctx)),
		slog.String("path", path))
	return c.do(ctx, req)
}

// DeletePscFullRecord removes the record addressed by the delete request. The
// raw delta_at and the kind slug travel as headers.
func (c *Client) DeletePscFullRecord(ctx context.Context, deleteReq psc.DeleteRequest) error {
	path, err := c.fullRecordPath(deleteReq.CompanyNumber, deleteReq.NotificationID)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return errs.NewRetryable("failed to build DELETE request", err)
	}
	req.Header.Set(headerDeltaAt, deleteReq.DeltaAt)
	req.Header.Set(headerKind, deleteReq.Kind)

	c.logger.InfoContext(ctx, "DELETE full record",
		slog.String("context_id", requestcontext.ContextID(ctx)),
		slog.Int("attempt", requestcontext.Attempt(ctx)),
		slog.String("path", path))
	return c.do(ctx, req)
}

// fullRecordPath validates and escapes the path parameters. A malformed URI
// is treated as retryable so the record is not lost to a transient data
// problem upstream.
func (c *Client) fullRecordPath(companyNumber, notificationID string) (string, error) {
	if companyNumber == "" || notificationID == "" {
		return "", errs.NewRetryable("Invalid URI", nil)
	}
	return fmt.Sprintf(fullRecordPathFormat,
		url.PathEscape(companyNumber), url.PathEscape(notificationID)), nil
}

// do sends the request and classifies the response. 2xx succeeds; 400 and
// 409 are non-retryable; every other status, and any transport failure, is
// retryable. The breaker counts retryable outcomes as failures and any
// response from the API as a success.
func (c *Client) do(ctx context.Context, req *http.Request) error {
	if c.breaker.IsOpen() {
		c.metrics.CircuitOpen.Set(1)
		return errs.NewRetryable("data api circuit open", nil)
	}

	req.Header.Set("Authorization", c.apiKey)
	if contextID := requestcontext.ContextID(ctx); contextID != "" {
		req.Header.Set(headerRequestID, contextID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(req.Method, "error", start)
		c.recordFailure()
		return errs.NewRetryable("failed to call data api", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	c.observe(req.Method, strconv.Itoa(resp.StatusCode), start)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.recordSuccess()
		return nil
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusConflict:
		c.recordSuccess()
		c.logger.ErrorContext(ctx, "data api rejected request",
			slog.String("context_id", requestcontext.ContextID(ctx)),
			slog.Int("status", resp.StatusCode))
		return errs.NewNonRetryable(
			fmt.Sprintf("Call to API failed, status code: %d", resp.StatusCode), nil)
	default:
		c.recordFailure()
		c.logger.WarnContext(ctx, "data api call failed, will retry",
			slog.String("context_id", requestcontext.ContextID(ctx)),
			slog.Int("status", resp.StatusCode))
		return errs.NewRetryable(
			fmt.Sprintf("Call to API failed, status code: %d", resp.StatusCode), nil)
	}
}

func (c *Client) observe(method, status string, start time.Time) {
	c.metrics.APICallDuration.WithLabelValues(method, status).Observe(time.Since(start).Seconds())
}

func (c *Client) recordFailure() {
	if c.breaker.RecordFailure() {
		c.metrics.CircuitOpen.Set(1)
	}
}

func (c *Client) recordSuccess() {
	if c.breaker.RecordSuccess() {
		c.metrics.CircuitOpen.Set(0)
	}
}
