// Package deck loads and validates slide decks.
package deck

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jask/gitdeck/internal/quiz"
)

//go:embed default.yaml
var defaultDeck []byte

var ErrInvalidDeck = errors.New("invalid deck")

type Deck struct {
	Title  string  `yaml:"title"`
	Slides []Slide `yaml:"slides"`
}

// Slide is one page of the presentation. At most one widget (terminal, quiz
// or profile form) is attached.
type Slide struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Body        string         `yaml:"body"`
	Terminal    *TerminalSpec  `yaml:"terminal,omitempty"`
	Quiz        *quiz.Question `yaml:"quiz,omitempty"`
	ProfileForm bool           `yaml:"profile_form,omitempty"`
}

// TerminalSpec configures the command widget. Demo lists the clickable
// commands; Interactive enables the Try It tab.
type TerminalSpec struct {
	Demo        []string `yaml:"demo"`
	Interactive bool     `yaml:"interactive"`
}

// Default returns the built-in deck.
func Default() (*Deck, error) {
	return Parse(defaultDeck)
}

// LoadFile reads and validates a deck from disk.
func LoadFile(path string) (*Deck, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return Parse(b)
}

// Load returns the deck at path, or the built-in deck when path is empty.
func Load(path string) (*Deck, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

func Parse(b []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeck, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return fmt.Errorf("%w: no slides", ErrInvalidDeck)
	}
	seen := make(map[string]bool, len(d.Slides))
	questions := make(map[string]bool)
	for i, s := range d.Slides {
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("%w: slide %d has no id", ErrInvalidDeck, i+1)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate slide id %q", ErrInvalidDeck, s.ID)
		}
		seen[s.ID] = true

		widgets := 0
		if s.Terminal != nil {
			widgets++
			for _, c := range s.Terminal.Demo {
				if strings.TrimSpace(c) == "" {
					return fmt.Errorf("%w: slide %q has an empty demo command", ErrInvalidDeck, s.ID)
				}
			}
			if len(s.Terminal.Demo) == 0 && !s.Terminal.Interactive {
				return fmt.Errorf("%w: slide %q terminal has no demo and is not interactive", ErrInvalidDeck, s.ID)
			}
		}
		if s.Quiz != nil {
			widgets++
			if err := s.Quiz.Validate(); err != nil {
				return fmt.Errorf("%w: slide %q: %w", ErrInvalidDeck, s.ID, err)
			}
			if questions[s.Quiz.ID] {
				return fmt.Errorf("%w: duplicate question id %q", ErrInvalidDeck, s.Quiz.ID)
			}
			questions[s.Quiz.ID] = true
		}
		if s.ProfileForm {
			widgets++
		}
		if widgets > 1 {
			return fmt.Errorf("%w: slide %q has more than one widget", ErrInvalidDeck, s.ID)
		}
	}
	return nil
}

// Questions returns the quiz questions in slide order.
func (d *Deck) Questions() []quiz.Question {
	var out []quiz.Question
	for _, s := range d.Slides {
		if s.Quiz != nil {
			out = append(out, *s.Quiz)
		}
	}
	return out
}

// DemoCommands returns every demo command in the deck, in order.
func (d *Deck) DemoCommands() []string {
	var out []string
	for _, s := range d.Slides {
		if s.Terminal != nil {
			out = append(out, s.Terminal.Demo...)
		}
	}
	return out
}
