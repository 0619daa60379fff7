// ABOUTME: HTTP client for the CRM REST backend
// ABOUTME: Owns request shaping, auth headers and the error taxonomy
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for the cases the UI distinguishes. Everything else
// surfaces as a *StatusError.
var (
	// ErrUnauthorized means the bearer token or session was rejected;
	// the UI tells the user to log in again.
	ErrUnauthorized = errors.New("não autenticado, inicie sessão novamente")

	// ErrNotFound means a single-entity fetch answered non-OK; it is
	// rendered inline in place of the form, not as a toast.
	ErrNotFound = errors.New("registo não encontrado")
)

// StatusError carries a non-2xx response. Body holds the raw response
// text so the toast can show the backend's own message.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("pedido falhou (%d): %s", e.Code, e.Body)
	}
	return fmt.Sprintf("pedido falhou (%d)", e.Code)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	}
	return false
}

// Client talks to the CRM backend. SessionToken authenticates the
// regular endpoints; the upload endpoints live on a different origin
// with a stricter body limit and need a separate bearer token, fetched
// on demand (see uploads.go).
type Client struct {
	baseURL      string
	http         *http.Client
	sessionToken string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: trimSlash(baseURL),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetSessionToken attaches the session credential sent with every
// request.
func (c *Client) SetSessionToken(token string) {
	c.sessionToken = token
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListOptions are the shared query parameters of the collection
// endpoints. Zero values are omitted from the query string.
type ListOptions struct {
	Limit  int
	Skip   int
	Search string
	Status string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Skip > 0 {
		q.Set("skip", strconv.Itoa(o.Skip))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	return q
}

// do issues one JSON request and decodes a 2xx response into out.
// Non-2xx responses become a *StatusError with the raw body text.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.sessionToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
