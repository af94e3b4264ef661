// Package rest implements core.Remote against the notes HTTP API,
// plus the register/login/signout authentication endpoints.
//
// The backend is loose about payload shapes (lists arrive bare or
// wrapped, writes return the note directly or under a "note" field), so
// decoding here is deliberately tolerant; status codes are classified
// into the core error taxonomy.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jotlabs/jot/pkg/core"
)

// Config holds the client configuration.
type Config struct {
	// BaseURL of the API, e.g. "http://localhost:5000".
	BaseURL string

	// HTTPClient overrides the default client (10s timeout).
	HTTPClient *http.Client

	// Logger is optional.
	Logger *slog.Logger
}

// Client talks to the notes API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a client for the given configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		logger:  cfg.Logger,
	}
}

// Register creates an account and returns the identity and its token.
func (c *Client) Register(ctx context.Context, name, email, password string) (core.Identity, string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	data, err := c.do(ctx, http.MethodPost, "/users/register", "", body)
	if err != nil {
		return core.Identity{}, "", err
	}
	return decodeAuth(data)
}

// Login exchanges credentials for an identity and token.
func (c *Client) Login(ctx context.Context, email, password string) (core.Identity, string, error) {
	body := map[string]string{"email": email, "password": password}
	data, err := c.do(ctx, http.MethodPost, "/users/login", "", body)
	if err != nil {
		return core.Identity{}, "", err
	}
	return decodeAuth(data)
}

// SignOut invalidates the token server-side. Callers treat the result
// as advisory: local logout proceeds regardless.
func (c *Client) SignOut(ctx context.Context, token string) error {
	_, err := c.do(ctx, http.MethodPost, "/users/signout", token, struct{}{})
	return err
}

// ListNotes implements core.Remote. The payload may be a bare array or
// wrapped under "notes" or "data"; anything else is treated as an empty
// list rather than an error, since the request itself succeeded.
func (c *Client) ListNotes(ctx context.Context, token string) ([]core.Note, error) {
	data, err := c.do(ctx, http.MethodGet, "/notes", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList(data, c.logger), nil
}

// CreateNote implements core.Remote.
func (c *Client) CreateNote(ctx context.Context, token, title, content string) (core.Note, error) {
	body := map[string]string{"title": title, "content": content}
	data, err := c.do(ctx, http.MethodPost, "/notes", token, body)
	if err != nil {
		return core.Note{}, err
	}
	return decodeNote(data)
}

// UpdateNote implements core.Remote.
func (c *Client) UpdateNote(ctx context.Context, token, id, title, content string) (core.Note, error) {
	body := map[string]string{"title": title, "content": content}
	data, err := c.do(ctx, http.MethodPut, "/notes/"+id, token, body)
	if err != nil {
		return core.Note{}, err
	}
	return decodeNote(data)
}

// DeleteNote implements core.Remote. The response body is ignored.
func (c *Client) DeleteNote(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/notes/"+id, token, nil)
	return err
}

// do executes one request and returns the raw response body for
// successful statuses. Failures are classified into the core taxonomy.
func (c *Client) do(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if c.logger != nil {
		c.logger.Debug("remote call", "method", method, "path", path, "request_id", requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", core.ErrFetchFailed, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}

	if c.logger != nil {
		c.logger.Debug("remote call failed",
			"method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, core.ErrSessionExpired
	case http.StatusNotFound:
		return nil, core.ErrNotFound
	case http.StatusBadRequest:
		if msg := serverMessage(data); msg != "" {
			return nil, fmt.Errorf("%w: %s", core.ErrInvalidInput, msg)
		}
		return nil, core.ErrInvalidInput
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrFetchFailed, resp.Status)
	}
}

// serverMessage extracts the backend's {"message": "..."} error detail.
func serverMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Message
}
