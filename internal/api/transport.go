// Package api implements the HTTP client for the finview backend: a thin
// transport that normalizes errors into a single shape, plus typed gateways
// for the identity and dashboard endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"finview/internal/logging"
)

// Client is the transport layer. It attaches the ambient session cookie via
// the jar installed on the underlying http.Client, serializes request bodies
// as JSON, and maps every failure to *Error. It never retries and never
// caches; retry policy belongs to callers.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewClient builds a transport rooted at baseURL. The jar carries the
// session cookie; the client itself never manages credentials. A zero
// timeout means no timeout.
func NewClient(baseURL string, jar http.CookieJar, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
		log:     log,
	}
}

// Get issues a GET request and decodes the JSON response into out.
// Pass nil out to discard the body.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request. A nil body is omitted entirely, which is
// distinct from sending an empty JSON object.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPost, path, body, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: genericMessage}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Message: genericMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed",
			"request_id", requestID, "method", method, "path", path, "error", err)
		return &Error{Message: genericMessage}
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request completed",
		"request_id", requestID, "method", method, "path", path,
		"status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Message: genericMessage}
	}
	// An empty 2xx body is a valid "no content" reply, not a decode failure.
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Message: genericMessage}
	}
	return nil
}

// errorBody holds the raw detail payload. The service reports errors either
// as {"detail": "..."} or, for validation failures, as
// {"detail": [{"msg": "..."}, ...]}. The union is decoded here, once, and
// nowhere else.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationItem struct {
	Msg string `json:"msg"`
}

func decodeError(resp *http.Response) *Error {
	e := &Error{
		Message:         genericMessage,
		Unauthenticated: resp.StatusCode == http.StatusUnauthorized,
	}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Detail) == 0 {
		return e
	}

	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err == nil {
		if detail != "" {
			e.Message = detail
		}
		return e
	}

	var items []validationItem
	if err := json.Unmarshal(body.Detail, &items); err == nil && len(items) > 0 {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			msgs = append(msgs, item.Msg)
		}
		e.Message = strings.Join(msgs, ", ")
	}
	return e
}
