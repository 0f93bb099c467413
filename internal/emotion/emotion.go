// Package emotion maps classifier labels to the display glyphs the
// renderer shows next to assistant messages.
package emotion

// Label is an emotion label as reported by the chat service classifier.
type Label string

// Labels the classifier is known to emit.
const (
	Sadness     Label = "sadness"
	Joy         Label = "joy"
	Anger       Label = "anger"
	Fear        Label = "fear"
	Love        Label = "love"
	Gratitude   Label = "gratitude"
	Confusion   Label = "confusion"
	Curiosity   Label = "curiosity"
	Neutral     Label = "neutral"
	Positive    Label = "positive"
	Negative    Label = "negative"
	Surprise    Label = "surprise"
	Relief      Label = "relief"
	Guilt       Label = "guilt"
	Grief       Label = "grief"
	Pride       Label = "pride"
	Excitement  Label = "excitement"
	Nervousness Label = "nervousness"
	Disgust     Label = "disgust"
	Admiration  Label = "admiration"
	Jealousy    Label = "jealousy"
)

// DefaultGlyph is used for absent or unrecognized labels.
const DefaultGlyph = "🤖"

var glyphs = map[Label]string{
	Sadness:     "💙",
	Joy:         "😄",
	Anger:       "🔥",
	Fear:        "😱",
	Love:        "❤️",
	Gratitude:   "🙏",
	Confusion:   "🤔",
	Curiosity:   "🔍",
	Neutral:     "🙂",
	Positive:    "🌟",
	Negative:    "😔",
	Surprise:    "😲",
	Relief:      "😌",
	Guilt:       "🌼",
	Grief:       "🖤",
	Pride:       "🏆",
	Excitement:  "🎉",
	Nervousness: "💪",
	Disgust:     "😖",
	Admiration:  "🌟",
	Jealousy:    "💚",
}

// ResolveGlyph returns the display glyph for a label. It is total: any
// label outside the vocabulary, including the empty label, resolves to
// DefaultGlyph.
func ResolveGlyph(label Label) string {
	if g, ok := glyphs[label]; ok {
		return g
	}
	return DefaultGlyph
}

// Known reports whether the label belongs to the recognized vocabulary.
func Known(label Label) bool {
	_, ok := glyphs[label]
	return ok
}
