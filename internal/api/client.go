// Package api is the REST client for the Student Resource Hub.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blackwell-systems/hubctl/internal/logger"
)

const defaultBaseURL = "http://localhost:5000"

// sessionCookie is the cookie name the Hub issues on login.
const sessionCookie = "token"

// Client talks to the Hub API. The base URL is injected by the caller;
// nothing reads it from global state.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     logger.Logger
}

// New creates a Client for the given base URL and session token. An
// empty baseURL falls back to the local development server; an empty
// token means anonymous requests.
func New(baseURL, token string, log logger.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// SetToken replaces the session token (after login/logout).
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current session token.
func (c *Client) Token() string { return c.token }

// BaseURL returns the injected API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// do executes a request with the session cookie attached.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: c.token})
	}
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			logger.String("method", req.Method),
			logger.String("url", req.URL.String()),
			logger.Err(err))
		return nil, err
	}
	c.log.Debug("request",
		logger.String("method", req.Method),
		logger.String("url", req.URL.String()),
		logger.Int("status", resp.StatusCode),
		logger.Duration("elapsed", time.Since(start)))
	return resp, nil
}

// doJSON sends a request and decodes the JSON response into out.
func (c *Client) doJSON(ctx context.Context, method, url string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return err
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &ParseError{Err: err}
		}
	}
	return nil
}

// url builds an API URL from path segments.
func (c *Client) url(parts ...string) string {
	return c.baseURL + "/" + strings.Join(parts, "/")
}

// checkStatus maps non-2xx responses into the error taxonomy. The
// server's `{error}` body is decoded for the message; a body that is
// not valid JSON becomes a ParseError rather than being coerced.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var body struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return &ParseError{Err: err}
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrAuthRequired
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return &StatusError{StatusCode: resp.StatusCode, Message: body.Error}
	}
}
