package deck

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns slide markdown into styled terminal text.
type Renderer struct {
	style string
	wrap  int
	tr    *glamour.TermRenderer
}

// NewRenderer builds a renderer. Style "auto" (or empty) picks light or dark
// from the terminal background; other values name a glamour standard style.
func NewRenderer(style string, wrap int) (*Renderer, error) {
	r := &Renderer{style: style}
	if err := r.SetWidth(wrap); err != nil {
		return nil, err
	}
	return r, nil
}

// SetWidth rebuilds the renderer for a new word-wrap width.
func (r *Renderer) SetWidth(wrap int) error {
	if wrap <= 0 {
		wrap = 80
	}
	if r.tr != nil && wrap == r.wrap {
		return nil
	}
	styleOpt := glamour.WithStandardStyle(r.style)
	if r.style == "" || r.style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	r.tr, r.wrap = tr, wrap
	return nil
}

func (r *Renderer) Width() int { return r.wrap }

// Render formats the slide title and body.
func (r *Renderer) Render(s Slide) (string, error) {
	var b strings.Builder
	if s.Title != "" {
		b.WriteString("# " + s.Title + "\n\n")
	}
	b.WriteString(s.Body)
	out, err := r.tr.Render(b.String())
	if err != nil {
		return "", fmt.Errorf("render slide %s: %w", s.ID, err)
	}
	return strings.TrimRight(out, "\n"), nil
}
