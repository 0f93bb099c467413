// Package presence derives the "assistant is composing a reply" signal.
package presence

// Source exposes the in-flight state the signal is derived from.
type Source interface {
	InFlight() bool
}

// Indicator is a pure derivation over its source: it asserts exactly
// while a chat request is outstanding and holds no state of its own.
type Indicator struct {
	source Source
}

// New creates an indicator over the given source.
func New(source Source) *Indicator {
	return &Indicator{source: source}
}

// Asserted reports whether the assistant is composing a reply.
func (i *Indicator) Asserted() bool {
	return i.source != nil && i.source.InFlight()
}
