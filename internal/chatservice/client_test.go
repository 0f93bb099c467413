package chatservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/comigor/saturday-go/internal/config"
	"github.com/comigor/saturday-go/internal/emotion"
)

func newTestClient(baseURL string) *Client {
	return New(config.ChatServiceConfig{BaseURL: baseURL, Timeout: 2 * time.Second})
}

func TestSendSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["message"] != "hello" || body["session_id"] != "session_abc" {
			t.Errorf("unexpected request body: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"bot_response":      "Hi there!",
			"predicted_emotion": "joy",
		})
	}))
	defer srv.Close()

	reply, err := newTestClient(srv.URL).Send(context.Background(), "hello", "session_abc")
	if err != nil {
		t.Fatalf("Send err: %v", err)
	}
	if reply.Text != "Hi there!" {
		t.Errorf("unexpected reply text: %q", reply.Text)
	}
	if reply.Emotion != emotion.Joy {
		t.Errorf("unexpected emotion: %q", reply.Emotion)
	}
}

func TestSendNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Send(context.Background(), "hello", "s"); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestSendMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Send(context.Background(), "hello", "s"); err == nil {
		t.Fatal("expected error for malformed response body")
	}
}

func TestSendMissingReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predicted_emotion":"joy"}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Send(context.Background(), "hello", "s"); err == nil {
		t.Fatal("expected error when bot_response is missing")
	}
}

func TestSendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	if _, err := newTestClient(srv.URL).Send(context.Background(), "hello", "s"); err == nil {
		t.Fatal("expected transport error")
	}
}
