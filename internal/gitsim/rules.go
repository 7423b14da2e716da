package gitsim

import (
	"fmt"
	"strings"
)

// Rule is a prefix-matched template. Exclude lists whole command lines that
// share the prefix but must fall through to the static table. When
// DeferToTable is set the rule also yields to any exact table entry.
type Rule struct {
	Name         string
	Prefix       string
	Exclude      []string
	DeferToTable bool
	Render       func(arg string, token TokenSource) string
}

func (r Rule) matches(command string, table map[string]string) bool {
	if !strings.HasPrefix(command, r.Prefix) {
		return false
	}
	for _, ex := range r.Exclude {
		if command == ex {
			return false
		}
	}
	if r.DeferToTable {
		if _, ok := table[command]; ok {
			return false
		}
	}
	return true
}

// DefaultRules returns the dynamic rules in priority order: value-setting
// config commands first, then the mutation commands.
func DefaultRules() []Rule {
	return []Rule{
		configRule("config-global-name", "git config --global user.name ", "User name set to: %s"),
		configRule("config-global-email", "git config --global user.email ", "User email set to: %s"),
		configRule("config-global-editor", "git config --global core.editor ", "Default editor set to: %s"),
		configRule("config-name", "git config user.name ", "User name set to: %s"),
		configRule("config-email", "git config user.email ", "User email set to: %s"),
		{
			Name:    "add",
			Prefix:  "git add ",
			Exclude: []string{"git add .", "git add", "git add -A", "git add --all", "git add -p"},
			Render: func(arg string, _ TokenSource) string {
				return fmt.Sprintf("Added '%s' to staging area", arg)
			},
		},
		{
			Name:         "commit",
			Prefix:       "git commit -m ",
			DeferToTable: true,
			Render: func(arg string, token TokenSource) string {
				return fmt.Sprintf("[main %s] %s\n 1 file changed, 3 insertions(+)", token(), stripQuotes(arg))
			},
		},
		{
			Name:    "branch",
			Prefix:  "git branch ",
			Exclude: []string{"git branch", "git branch -a", "git branch -r", "git branch -l"},
			Render: func(arg string, token TokenSource) string {
				if strings.HasPrefix(arg, "-d ") || strings.HasPrefix(arg, "-D ") {
					return fmt.Sprintf("Deleted branch %s (was %s).", arg[3:], token())
				}
				return fmt.Sprintf("Created branch '%s'", arg)
			},
		},
		{
			Name:         "checkout",
			Prefix:       "git checkout ",
			DeferToTable: true,
			Render: func(arg string, _ TokenSource) string {
				if branch, ok := strings.CutPrefix(arg, "-b "); ok {
					return fmt.Sprintf("Switched to a new branch '%s'", branch)
				}
				return fmt.Sprintf("Switched to branch '%s'", arg)
			},
		},
		{
			Name:         "merge",
			Prefix:       "git merge ",
			DeferToTable: true,
			Render: func(_ string, token TokenSource) string {
				return fmt.Sprintf("Updating %s..%s\nFast-forward\n 1 file changed, 5 insertions(+)", token(), token())
			},
		},
		{
			Name:    "tag",
			Prefix:  "git tag ",
			Exclude: []string{"git tag", "git tag -l"},
			Render: func(arg string, _ TokenSource) string {
				name := ""
				if fields := strings.Fields(arg); len(fields) > 0 {
					name = fields[0]
				}
				return fmt.Sprintf("Created tag '%s'", name)
			},
		},
	}
}

func configRule(name, prefix, format string) Rule {
	return Rule{
		Name:   name,
		Prefix: prefix,
		Render: func(arg string, _ TokenSource) string {
			return fmt.Sprintf(format, stripQuotes(arg))
		},
	}
}

func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}
