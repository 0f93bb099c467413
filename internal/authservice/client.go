// Package authservice is the HTTP client for the remote registration
// collaborator.
package authservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/comigor/saturday-go/internal/config"
	"github.com/comigor/saturday-go/internal/session"
)

// Client talks to the auth service's POST /api/register endpoint.
type Client struct {
	cfg    config.AuthServiceConfig
	client *http.Client
}

// New creates an auth service client.
func New(cfg config.AuthServiceConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type registerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Register asks the auth service to create an account. A service-reported
// rejection comes back as *session.AuthError carrying the service message
// verbatim; transport and status failures are wrapped the same way so the
// renderer always gets an in-domain auth outcome.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body, err := json.Marshal(registerRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/register", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &session.AuthError{Message: "An error occurred. Please try again."}
	}
	defer resp.Body.Close()

	var parsed registerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return &session.AuthError{Message: fmt.Sprintf("unexpected response from auth service (status %d)", resp.StatusCode)}
	}
	if !parsed.Success {
		return &session.AuthError{Message: parsed.Message}
	}

	return nil
}
