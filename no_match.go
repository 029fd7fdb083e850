package cline

import (
	"fmt"
	"strings"
)

// NoMatch is returned when no registered command resolves from the given
// tokens: either the path names nothing at all, or only an intermediate,
// non-executable node.
func NoMatch(tokens []string) *Error {
	if len(tokens) == 0 {
		return &Error{
			Kind:    ErrNoMatch,
			Message: "no command given",
		}
	}
	return &Error{
		Kind:    ErrNoMatch,
		Message: fmt.Sprintf("'%s' is not a registered command", strings.Join(tokens, " ")),
	}
}
