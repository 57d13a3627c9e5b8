package backend

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound marks a 404 from the backend; views render a not-found
// placeholder instead of the form.
var ErrNotFound = errors.New("resource not found")

// Client talks to the remote order/billing/shipment backend. All state is
// owned by the backend; the client holds no caches.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// BasicToken derives the Basic-auth token the way the login form does.
func BasicToken(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}

func (c *Client) do(ctx context.Context, method, path, auth string, body, out any, wantStatus int) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json,application/problem+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", "Basic "+auth)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == wantStatus:
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	default:
		return fmt.Errorf("%s %s: backend returned status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// Login validates the credentials against the backend. A 204 means success;
// the caller derives the Basic token locally.
func (c *Client) Login(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/login", "", loginWire{Username: username, Password: password}, nil, http.StatusNoContent)
}

func batchPath(batchID int64, suffix string) string {
	return "/api/admin/order_batches/" + strconv.FormatInt(batchID, 10) + suffix
}
