package gitsim

import (
	"slices"
	"strings"
)

// NotRecognized is the text shown for commands nothing matched.
const NotRecognized = `Command not recognized. Type "help" for available commands.`

// Source records which lookup produced a Result.
type Source int

const (
	SourceNone Source = iota
	SourceRule
	SourceTable
)

func (s Source) String() string {
	switch s {
	case SourceRule:
		return "rule"
	case SourceTable:
		return "table"
	default:
		return "none"
	}
}

// Result is the outcome of resolving one command. A recognized result may
// carry an empty Output, which means the command succeeded silently.
type Result struct {
	Command    string
	Output     string
	Recognized bool
	Source     Source
	Rule       string
}

// Text returns the display text, substituting NotRecognized for misses.
func (r Result) Text() string {
	if !r.Recognized {
		return NotRecognized
	}
	return r.Output
}

// bareSubcommands may be typed without the leading "git ".
var bareSubcommands = []string{
	"init", "status", "add", "commit", "log", "branch", "checkout", "merge",
	"push", "pull", "clone", "diff", "stash", "tag", "remote",
}

// Resolver maps command lines to canned output. It is read-only after
// construction and safe for concurrent use as long as its TokenSource is.
type Resolver struct {
	rules  []Rule
	table  map[string]string
	tokens TokenSource
}

type Option func(*Resolver)

// WithTokens replaces the random token source.
func WithTokens(src TokenSource) Option {
	return func(r *Resolver) { r.tokens = src }
}

// WithRules replaces the dynamic rule list.
func WithRules(rules []Rule) Option {
	return func(r *Resolver) { r.rules = rules }
}

// WithTable replaces the static response table.
func WithTable(table map[string]string) Option {
	return func(r *Resolver) { r.table = table }
}

func New(opts ...Option) *Resolver {
	r := &Resolver{
		rules:  DefaultRules(),
		table:  staticTable,
		tokens: UUIDTokens,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Normalize trims the command and adds the "git " prefix to bare
// subcommands such as "status".
func Normalize(command string) string {
	command = strings.TrimSpace(command)
	if strings.HasPrefix(command, "git ") {
		return command
	}
	fields := strings.Fields(command)
	if len(fields) > 0 && slices.Contains(bareSubcommands, fields[0]) {
		return "git " + command
	}
	return command
}

// Resolve tries the dynamic rules in order, then the static table.
func (r *Resolver) Resolve(command string) Result {
	cmd := Normalize(command)
	for _, rule := range r.rules {
		if !rule.matches(cmd, r.table) {
			continue
		}
		arg := strings.TrimPrefix(cmd, rule.Prefix)
		return Result{
			Command:    cmd,
			Output:     rule.Render(arg, r.tokens),
			Recognized: true,
			Source:     SourceRule,
			Rule:       rule.Name,
		}
	}
	return r.Lookup(cmd)
}

// Lookup consults only the static table. Demo labels resolve this way.
func (r *Resolver) Lookup(command string) Result {
	cmd := strings.TrimSpace(command)
	out, ok := r.table[cmd]
	if !ok {
		return Result{Command: cmd}
	}
	return Result{Command: cmd, Output: out, Recognized: true, Source: SourceTable}
}

// Commands returns the static table keys in sorted order.
func (r *Resolver) Commands() []string {
	keys := make([]string, 0, len(r.table))
	for k := range r.table {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
