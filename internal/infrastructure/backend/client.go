package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ads-dental-admin/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout = 15 * time.Second
	maxLoggedBody  = 300
)

// Client issues every request to the dental REST backend. It does not retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logrus.Logger
	metrics    *Metrics
}

// Request describes a single backend call. Form takes precedence over Body
// and is sent form-encoded; Body is sent as JSON.
type Request struct {
	Operation  string
	EntityKind string
	Method     string
	Path       string
	Token      string
	Body       interface{}
	Form       url.Values
}

func NewClient(cfg config.BackendConfig, log *logrus.Logger, metrics *Metrics) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		log:        log,
		metrics:    metrics,
	}
}

// Do sends req and decodes a 2xx response body into out (when out is non-nil
// and the body is not empty). Any other outcome is a *RequestError.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	fail := func(status int, err error) error {
		return &RequestError{Operation: req.Operation, EntityKind: req.EntityKind, StatusCode: status, Err: err}
	}

	var (
		bodyReader  io.Reader
		contentType string
	)
	switch {
	case req.Form != nil:
		bodyReader = strings.NewReader(req.Form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.Body != nil:
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return fail(0, fmt.Errorf("marshal request: %w", err))
		}
		bodyReader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, bodyReader)
	if err != nil {
		return fail(0, fmt.Errorf("build request: %w", err))
	}
	requestID, ok := RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	entry := c.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"operation":  req.Operation,
		"entity":     req.EntityKind,
		"method":     req.Method,
		"path":       req.Path,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.Observe(req.Operation, req.EntityKind, 0, time.Since(start))
		entry.Warnf("Backend request failed: %+v", err)
		return fail(0, fmt.Errorf("http request: %w", err))
	}
	defer resp.Body.Close()
	c.metrics.Observe(req.Operation, req.EntityKind, resp.StatusCode, time.Since(start))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(respBody)
		if len(msg) > maxLoggedBody {
			msg = msg[:maxLoggedBody]
		}
		entry.WithField("status", resp.StatusCode).Warnf("Backend returned non-2xx response: %s", msg)
		return fail(resp.StatusCode, nil)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		entry.Warnf("Failed to decode backend response: %+v", err)
		return fail(0, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
