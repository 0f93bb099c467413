package conversation

import (
	"time"

	"github.com/comigor/saturday-go/internal/emotion"
)

// Sender distinguishes the two sides of the conversation.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is a single entry of the conversation log. The ID is a display
// and reconciliation key only; ordering is insertion order.
type Message struct {
	ID        string        `json:"id"`
	Sender    Sender        `json:"sender"`
	Text      string        `json:"text"`
	Emotion   emotion.Label `json:"emotion,omitempty"`
	Glyph     string        `json:"glyph,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
