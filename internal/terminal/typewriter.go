package terminal

import "time"

// DefaultTypingSpeed is the delay between revealed characters.
const DefaultTypingSpeed = 30 * time.Millisecond

// Typewriter reveals text one rune at a time. The caller drives it from a
// ticker.
type Typewriter struct {
	runes []rune
	shown int
}

func NewTypewriter(text string) Typewriter {
	return Typewriter{runes: []rune(text)}
}

// Advance reveals one more rune and reports whether any remain hidden.
func (t *Typewriter) Advance() bool {
	if t.shown < len(t.runes) {
		t.shown++
	}
	return t.shown < len(t.runes)
}

func (t *Typewriter) Finish() { t.shown = len(t.runes) }

func (t Typewriter) Done() bool { return t.shown >= len(t.runes) }

func (t Typewriter) Visible() string { return string(t.runes[:t.shown]) }

func (t Typewriter) Text() string { return string(t.runes) }
