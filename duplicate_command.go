package cline

import (
	"fmt"
	"strings"
)

// DuplicateCommand is returned in strict mode when a path is registered a
// second time. The earlier callback stays in place.
func DuplicateCommand(path []string) *Error {
	return &Error{
		Kind:    ErrDuplicateCommand,
		Message: fmt.Sprintf("'%s' is already registered", strings.Join(path, " ")),
	}
}
