package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Login authenticates and returns the session token issued via the
// `token` cookie. The client's own token is updated on success.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	token, err := c.authPost(ctx, "login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	c.token = token
	return token, nil
}

// Signup registers a new account and returns the session token when the
// server issues one immediately.
func (c *Client) Signup(ctx context.Context, name, email, password string) (string, error) {
	token, err := c.authPost(ctx, "signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("signup: %w", err)
	}
	if token != "" {
		c.token = token
	}
	return token, nil
}

// Logout ends the server-side session and clears the local token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodPost, c.url("api", "auth", "logout"), nil, "", nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	c.token = ""
	return nil
}

func (c *Client) authPost(ctx context.Context, action string, payload map[string]string) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.url("api", "auth", action), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return "", err
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == sessionCookie {
			return ck.Value, nil
		}
	}
	return "", nil
}
