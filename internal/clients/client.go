package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"lab-portal/pkg/config"
	"lab-portal/pkg/contextkeys"

	"go.uber.org/zap"
)

// UpstreamError is a non-success status from a backend service. Body is
// surfaced to the user verbatim (falling back to the status text), per the
// error taxonomy.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s service returned %d: %s", e.Service, e.StatusCode, e.Body)
}

// TransportError is a network-level failure: the service never answered.
type TransportError struct {
	Service string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s service unreachable: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client is the shared REST plumbing for one upstream service. Every call
// is bounded by the configured timeout and made exactly once.
type Client struct {
	service string
	baseURL string
	timeout config.UpstreamConfig
	http    *http.Client
	logger  *zap.Logger
}

func newClient(service string, cfg config.UpstreamConfig, logger *zap.Logger) *Client {
	return &Client{
		service: service,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg,
		http:    &http.Client{},
		logger:  logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout.Timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", c.service, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		requestID, _ := ctx.Value(contextkeys.RequestID).(string)
		c.logger.Error("upstream call failed",
			zap.String("service", c.service),
			zap.String("method", method),
			zap.String("path", path),
			zap.String("requestId", requestID),
			zap.Error(err),
		)
		return &TransportError{Service: c.service, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Service: c.service, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := strings.TrimSpace(string(data))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &UpstreamError{Service: c.service, StatusCode: resp.StatusCode, Body: msg}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s response: %w", c.service, err)
		}
	}
	return nil
}
