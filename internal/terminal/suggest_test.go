package terminal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	t.Parallel()
	known := []string{"git fetch", "git status", "git log", "git push", "pwd"}

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"git stats", "git status", true},
		{"stats", "git status", true},
		{"claer", "clear", true},
		{"hlep", "help", true},
		{"pwdd", "pwd", true},
		{"fetch", "git fetch", true},
		{"git status", "", false},
		{"completely different", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := Suggest(tc.in, known, 3)
		require.Equal(t, tc.ok, ok, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, ok := Suggest("git stats", known, 0)
	require.False(t, ok)
}
