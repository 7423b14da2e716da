package gitsim

import (
	"strings"

	"github.com/google/uuid"
)

// TokenSource produces the short hash-like token spliced into commit, branch
// delete and merge output.
type TokenSource func() string

const tokenLen = 7

// UUIDTokens returns the first seven hex digits of a random UUID.
func UUIDTokens() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:tokenLen]
}
