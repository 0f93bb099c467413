// Package chatservice is the HTTP client for the remote emotion-aware
// chat collaborator.
package chatservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/comigor/saturday-go/internal/config"
	"github.com/comigor/saturday-go/internal/emotion"
	"github.com/comigor/saturday-go/internal/exchange"
)

// Client talks to the chat service's POST /chat endpoint.
type Client struct {
	cfg    config.ChatServiceConfig
	client *http.Client
}

// New creates a chat service client.
func New(cfg config.ChatServiceConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	BotResponse      string `json:"bot_response"`
	PredictedEmotion string `json:"predicted_emotion"`
}

// Send posts one message and returns the service reply. Transport errors,
// non-2xx statuses and bodies missing a reply are all plain errors; the
// caller decides what a failed exchange means.
func (c *Client) Send(ctx context.Context, message, sessionID string) (exchange.Reply, error) {
	body, err := json.Marshal(chatRequest{Message: message, SessionID: sessionID})
	if err != nil {
		return exchange.Reply{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat", bytes.NewBuffer(body))
	if err != nil {
		return exchange.Reply{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return exchange.Reply{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return exchange.Reply{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return exchange.Reply{}, fmt.Errorf("malformed chat response: %w", err)
	}
	if parsed.BotResponse == "" {
		return exchange.Reply{}, fmt.Errorf("chat response missing bot_response")
	}

	return exchange.Reply{
		Text:    parsed.BotResponse,
		Emotion: emotion.Label(parsed.PredictedEmotion),
	}, nil
}
