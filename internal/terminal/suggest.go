package terminal

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/gitdeck/internal/gitsim"
)

var builtins = []string{"help", "clear"}

// Suggest returns the closest known command within maxDistance edits of
// input. Input without a "git " prefix is also compared as if it had one.
// An exact match of the input itself is not a suggestion.
func Suggest(input string, candidates []string, maxDistance int) (string, bool) {
	if maxDistance <= 0 {
		return "", false
	}
	cmd := gitsim.Normalize(input)
	if cmd == "" {
		return "", false
	}
	variants := []string{cmd}
	if !strings.HasPrefix(cmd, "git ") && cmd != "git" {
		variants = append(variants, "git "+cmd)
	}
	best, bestDist := "", maxDistance+1
	for _, v := range variants {
		for _, list := range [][]string{builtins, candidates} {
			for _, c := range list {
				d := levenshtein.ComputeDistance(v, c)
				if d == 0 && v == cmd {
					continue
				}
				if d < bestDist {
					best, bestDist = c, d
				}
			}
		}
	}
	return best, best != ""
}
