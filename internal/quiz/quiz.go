// Package quiz scores multiple-choice questions. State is a value passed in
// and returned from Answer, so a widget can hold it without globals.
package quiz

import (
	"errors"
	"fmt"
	"maps"
)

var (
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrInvalidQuestion = errors.New("invalid question")
)

type Option struct {
	Text    string `yaml:"text"`
	Correct bool   `yaml:"correct"`
}

type Question struct {
	ID          string   `yaml:"id"`
	Prompt      string   `yaml:"prompt"`
	Options     []Option `yaml:"options"`
	Explanation string   `yaml:"explanation"`
}

// Validate requires an id, a prompt and exactly one correct option.
func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidQuestion)
	}
	if q.Prompt == "" {
		return fmt.Errorf("%w %q: missing prompt", ErrInvalidQuestion, q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w %q: need at least two options", ErrInvalidQuestion, q.ID)
	}
	correct := 0
	for _, o := range q.Options {
		if o.Correct {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("%w %q: %d correct options, want 1", ErrInvalidQuestion, q.ID, correct)
	}
	return nil
}

// CorrectIndex returns the index of the correct option, or -1.
func (q Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o.Correct {
			return i
		}
	}
	return -1
}

// State holds the chosen option per question id and the running score.
type State struct {
	Answers map[string]int
	Score   int
}

func (s State) Answered(questionID string) (int, bool) {
	choice, ok := s.Answers[questionID]
	return choice, ok
}

type Feedback struct {
	Correct      bool
	Choice       int
	CorrectIndex int
	Explanation  string
}

// Answer records choice for q and returns the new state. The input state is
// left untouched. Each question can be answered once.
func Answer(s State, q Question, choice int) (State, Feedback, error) {
	if _, ok := s.Answers[q.ID]; ok {
		return s, Feedback{}, fmt.Errorf("%w: %s", ErrAlreadyAnswered, q.ID)
	}
	if choice < 0 || choice >= len(q.Options) {
		return s, Feedback{}, fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
	}

	next := State{Answers: make(map[string]int, len(s.Answers)+1), Score: s.Score}
	maps.Copy(next.Answers, s.Answers)
	next.Answers[q.ID] = choice

	fb := Feedback{
		Correct:      q.Options[choice].Correct,
		Choice:       choice,
		CorrectIndex: q.CorrectIndex(),
		Explanation:  q.Explanation,
	}
	if fb.Correct {
		next.Score++
	}
	return next, fb, nil
}

// Feedback recomputes the feedback for an already answered question.
func (s State) Feedback(q Question) (Feedback, bool) {
	choice, ok := s.Answers[q.ID]
	if !ok || choice < 0 || choice >= len(q.Options) {
		return Feedback{}, false
	}
	return Feedback{
		Correct:      q.Options[choice].Correct,
		Choice:       choice,
		CorrectIndex: q.CorrectIndex(),
		Explanation:  q.Explanation,
	}, true
}

func Summary(s State, total int) string {
	return fmt.Sprintf("Score: %d/%d", s.Score, total)
}
