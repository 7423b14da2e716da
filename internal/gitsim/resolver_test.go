package gitsim

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func fixedTokens(tokens ...string) TokenSource {
	i := 0
	return func() string {
		t := tokens[i%len(tokens)]
		i++
		return t
	}
}

func claimedByRule(cmd string) string {
	for _, rule := range DefaultRules() {
		if rule.matches(cmd, staticTable) {
			return rule.Name
		}
	}
	return ""
}

func TestResolveStaticTable(t *testing.T) {
	t.Parallel()
	r := New()

	for cmd, want := range staticTable {
		if claimedByRule(cmd) != "" {
			continue
		}
		got := r.Resolve(cmd)
		require.True(t, got.Recognized, cmd)
		require.Equal(t, SourceTable, got.Source, cmd)
		require.Equal(t, want, got.Output, cmd)
	}
}

func TestResolveSilentSuccessIsNotSentinel(t *testing.T) {
	t.Parallel()
	r := New()

	for _, cmd := range []string{"git add .", "git add", "git add -A", "git add --all", "git checkout -- index.html", "git reset --soft HEAD~1"} {
		got := r.Resolve(cmd)
		require.True(t, got.Recognized, cmd)
		require.Empty(t, got.Output, cmd)
		require.Empty(t, got.Text(), cmd)
	}
}

func TestResolveDynamicRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		rule string
	}{
		{`git config --global user.name "alice"`, "User name set to: alice", "config-global-name"},
		{`git config --global user.email "a@example.com"`, "User email set to: a@example.com", "config-global-email"},
		{`git config --global core.editor "code --wait"`, "Default editor set to: code --wait", "config-global-editor"},
		{`git config user.name "Bob Smith"`, "User name set to: Bob Smith", "config-name"},
		{`git config user.email bob@example.com`, "User email set to: bob@example.com", "config-email"},
		{"git add myfile.txt", "Added 'myfile.txt' to staging area", "add"},
		{"git add index.html", "Added 'index.html' to staging area", "add"},
		{`git commit -m "fix typo"`, "[main abc1234] fix typo\n 1 file changed, 3 insertions(+)", "commit"},
		{"git branch feature/x", "Created branch 'feature/x'", "branch"},
		{"git branch -D spike", "Deleted branch spike (was abc1234).", "branch"},
		{"git checkout develop", "Switched to branch 'develop'", "checkout"},
		{"git checkout -b topic", "Switched to a new branch 'topic'", "checkout"},
		{"git merge topic", "Updating abc1234..def5678\nFast-forward\n 1 file changed, 5 insertions(+)", "merge"},
		{"git tag v2.0.0 extra-arg", "Created tag 'v2.0.0'", "tag"},
	}
	for _, tc := range cases {
		r := New(WithTokens(fixedTokens("abc1234", "def5678")))
		got := r.Resolve(tc.in)
		require.True(t, got.Recognized, tc.in)
		require.Equal(t, SourceRule, got.Source, tc.in)
		require.Equal(t, tc.rule, got.Rule, tc.in)
		require.Equal(t, tc.want, got.Output, tc.in)
	}
}

func TestResolveBranchDeleteToken(t *testing.T) {
	t.Parallel()
	got := New().Resolve("git branch -d old-feature")
	require.Regexp(t, regexp.MustCompile(`^Deleted branch old-feature \(was [a-z0-9]{7}\)\.$`), got.Output)
}

func TestResolveDeferToTable(t *testing.T) {
	t.Parallel()
	r := New(WithTokens(fixedTokens("zzzzzzz")))

	for _, cmd := range []string{`git commit -m "Initial commit"`, "git checkout main", "git checkout HEAD~1", "git merge --no-ff feature/login"} {
		got := r.Resolve(cmd)
		require.Equal(t, SourceTable, got.Source, cmd)
		require.Equal(t, staticTable[cmd], got.Output, cmd)
	}
}

func TestResolveExclusionsFallThrough(t *testing.T) {
	t.Parallel()
	r := New()

	got := r.Resolve("git add -p")
	require.Equal(t, SourceTable, got.Source)
	require.Equal(t, staticTable["git add -p"], got.Output)

	got = r.Resolve("git tag -l")
	require.Equal(t, SourceTable, got.Source)

	got = r.Resolve("git branch -l")
	require.False(t, got.Recognized)
	require.Equal(t, SourceNone, got.Source)
}

func TestResolveTagRuleShadowsAnnotatedTag(t *testing.T) {
	t.Parallel()
	r := New()

	cmd := `git tag -a v1.0.0 -m "Version 1.0.0"`
	_, inTable := staticTable[cmd]
	require.True(t, inTable)

	got := r.Resolve(cmd)
	require.Equal(t, SourceRule, got.Source)
	require.Equal(t, "tag", got.Rule)
	require.Equal(t, "Created tag '-a'", got.Output)

	got = r.Lookup(cmd)
	require.True(t, got.Recognized)
	require.Empty(t, got.Output)
}

func TestResolveUnrecognized(t *testing.T) {
	t.Parallel()
	r := New()

	for _, cmd := range []string{"totally-bogus-command", "help", "clear", "GIT STATUS", ""} {
		got := r.Resolve(cmd)
		require.False(t, got.Recognized, cmd)
		require.Equal(t, NotRecognized, got.Text(), cmd)
	}
}

func TestResolveIdempotent(t *testing.T) {
	t.Parallel()
	r := New()

	require.Equal(t, r.Resolve("git log --oneline"), r.Resolve("git log --oneline"))
	require.Equal(t, r.Resolve("git add a.txt"), r.Resolve("git add a.txt"))

	shape := regexp.MustCompile(`^\[main [a-z0-9]{7}\] msg\n 1 file changed, 3 insertions\(\+\)$`)
	first := r.Resolve(`git commit -m "msg"`)
	second := r.Resolve(`git commit -m "msg"`)
	require.Regexp(t, shape, first.Output)
	require.Regexp(t, shape, second.Output)
	require.NotEqual(t, first.Output, second.Output, "each commit draws a fresh token")

	merge := regexp.MustCompile(`^Updating ([a-z0-9]{7})\.\.([a-z0-9]{7})\n`)
	m := merge.FindStringSubmatch(r.Resolve("git merge topic").Output)
	require.Len(t, m, 3)
	require.NotEqual(t, m[1], m[2])
}

func TestResolveBareSubcommand(t *testing.T) {
	t.Parallel()
	r := New(WithTokens(fixedTokens("1111111")))

	require.Equal(t, r.Resolve("git status"), r.Resolve("status"))
	require.Equal(t, r.Resolve("git add notes.md").Output, r.Resolve("add notes.md").Output)
	require.Equal(t, "Switched to a new branch 'x'", r.Resolve("  checkout -b x  ").Output)
	require.False(t, r.Resolve("fetch").Recognized, "fetch is not in the bare allow-list")
	require.Equal(t, staticTable["pwd"], r.Resolve("pwd").Output)
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	require.Equal(t, "git status", Normalize("  status "))
	require.Equal(t, "git status", Normalize("git status"))
	require.Equal(t, "git", Normalize("git"))
	require.Equal(t, "ls -la", Normalize("ls -la"))
	require.Equal(t, "", Normalize("   "))
}

func TestLookupSkipsRules(t *testing.T) {
	t.Parallel()
	r := New()

	got := r.Lookup(`git config --global user.name "alice"`)
	require.True(t, got.Recognized)
	require.Empty(t, got.Output)

	require.False(t, r.Lookup("git add myfile.txt").Recognized)
	require.False(t, r.Lookup("status").Recognized)
}

func TestCommandsSorted(t *testing.T) {
	t.Parallel()
	cmds := New().Commands()
	require.Len(t, cmds, len(staticTable))
	require.IsNonDecreasing(t, cmds)
	require.Contains(t, cmds, "whoami")
	require.NotContains(t, cmds, "help")
}

func TestUUIDTokens(t *testing.T) {
	t.Parallel()
	re := regexp.MustCompile(`^[0-9a-f]{7}$`)
	for range 20 {
		require.Regexp(t, re, UUIDTokens())
	}
}

func TestCustomTable(t *testing.T) {
	t.Parallel()
	r := New(WithRules(nil), WithTable(map[string]string{"git add x": "custom"}))
	require.Equal(t, "custom", r.Resolve("add x").Output)
}
