package terminal

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jask/gitdeck/internal/gitsim"
)

// Kind tags a line in the output log so the renderer can style it.
type Kind int

const (
	KindInfo Kind = iota
	KindCommand
	KindResult
	KindError
	KindHint
)

type Line struct {
	Kind Kind
	Text string
}

// Resolver is the lookup facility a session delegates to.
type Resolver interface {
	Resolve(command string) gitsim.Result
	Lookup(command string) gitsim.Result
	Commands() []string
}

// Session is one simulated terminal: its output log and input history.
type Session struct {
	resolver    Resolver
	logger      *zap.Logger
	lines       []Line
	history     []string
	cursor      int
	maxLines    int
	maxDistance int
}

type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxLines caps the scrollback; older lines are dropped first.
func WithMaxLines(n int) Option {
	return func(s *Session) { s.maxLines = n }
}

// WithSuggestDistance sets the edit distance for "did you mean" hints.
// Zero disables hints.
func WithSuggestDistance(d int) Option {
	return func(s *Session) { s.maxDistance = d }
}

func NewSession(r Resolver, opts ...Option) *Session {
	s := &Session{
		resolver:    r,
		logger:      zap.NewNop(),
		maxLines:    500,
		maxDistance: 3,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lines = []Line{{Kind: KindInfo, Text: Welcome}}
	return s
}

// Execute runs one submitted input and returns the lines it appended.
// Blank input is ignored.
func (s *Session) Execute(input string) []Line {
	cmd := strings.TrimSpace(input)
	if cmd == "" {
		return nil
	}
	s.remember(cmd)

	switch cmd {
	case "clear":
		s.Clear()
		return s.Lines()
	case "help":
		return s.append(
			Line{Kind: KindCommand, Text: "$ " + cmd},
			Line{Kind: KindResult, Text: HelpText},
		)
	}

	res := s.resolver.Resolve(cmd)
	s.logger.Debug("command resolved",
		zap.String("input", cmd),
		zap.String("command", res.Command),
		zap.Bool("recognized", res.Recognized),
		zap.Stringer("source", res.Source),
		zap.String("rule", res.Rule))

	out := []Line{{Kind: KindCommand, Text: "$ " + cmd}}
	switch {
	case !res.Recognized:
		out = append(out, Line{Kind: KindError, Text: gitsim.NotRecognized})
		if hint, ok := Suggest(cmd, s.resolver.Commands(), s.maxDistance); ok {
			out = append(out, Line{Kind: KindHint, Text: `Did you mean "` + hint + `"?`})
		}
	case res.Output != "":
		out = append(out, Line{Kind: KindResult, Text: res.Output})
	}
	return s.append(out...)
}

// Reveal resolves a demo label through the static table only.
func (s *Session) Reveal(label string) gitsim.Result {
	res := s.resolver.Lookup(label)
	s.logger.Debug("demo revealed", zap.String("label", label), zap.Bool("recognized", res.Recognized))
	return res
}

// Clear wipes the log and reprints the welcome line.
func (s *Session) Clear() {
	s.lines = []Line{{Kind: KindInfo, Text: Welcome}}
}

func (s *Session) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Prev steps back through submitted inputs.
func (s *Session) Prev() (string, bool) {
	if len(s.history) == 0 {
		return "", false
	}
	if s.cursor > 0 {
		s.cursor--
	}
	return s.history[s.cursor], true
}

// Next steps forward; past the newest entry it returns an empty input.
func (s *Session) Next() (string, bool) {
	if len(s.history) == 0 {
		return "", false
	}
	if s.cursor < len(s.history)-1 {
		s.cursor++
		return s.history[s.cursor], true
	}
	s.cursor = len(s.history)
	return "", true
}

func (s *Session) remember(cmd string) {
	if n := len(s.history); n == 0 || s.history[n-1] != cmd {
		s.history = append(s.history, cmd)
	}
	s.cursor = len(s.history)
}

func (s *Session) append(lines ...Line) []Line {
	s.lines = append(s.lines, lines...)
	if s.maxLines > 0 && len(s.lines) > s.maxLines {
		s.lines = s.lines[len(s.lines)-s.maxLines:]
	}
	return lines
}
