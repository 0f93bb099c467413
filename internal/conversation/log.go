// Package conversation holds the ordered, append-only conversation log
// for the live session. Entries are never reordered or removed; logout
// clears the whole sequence at once.
package conversation

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/comigor/saturday-go/internal/emotion"
)

// Log is the owned message sequence. All methods are safe for concurrent
// use; Messages returns a defensive copy so observers never alias the
// underlying slice.
type Log struct {
	mu       sync.Mutex
	messages []Message
}

// NewLog returns an empty conversation log.
func NewLog() *Log {
	return &Log{messages: make([]Message, 0, 16)}
}

// Append adds a message to the end of the log, assigning an ID and a
// capture timestamp when they are missing, and returns the stored entry.
func (l *Log) Append(msg Message) Message {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()
	return msg
}

// AppendUser appends a user message carrying the given text.
func (l *Log) AppendUser(text string) Message {
	return l.Append(Message{Sender: SenderUser, Text: text})
}

// AppendAssistant appends an assistant message, resolving the display
// glyph from the emotion label.
func (l *Log) AppendAssistant(text string, label emotion.Label) Message {
	return l.Append(Message{
		Sender:  SenderAssistant,
		Text:    text,
		Emotion: label,
		Glyph:   emotion.ResolveGlyph(label),
	})
}

// Messages returns a copy of the log in insertion order.
func (l *Log) Messages() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}

// Clear discards every entry. Only session teardown calls this.
func (l *Log) Clear() {
	l.mu.Lock()
	l.messages = l.messages[:0]
	l.mu.Unlock()
}
