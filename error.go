package cline

// ErrorKind classifies the errors the core can produce.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrNoMatch
	ErrInvalidRegistration
	ErrDuplicateCommand
)

// Error is a typed core error. Callback failures never take this form; they
// pass through Exec verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target carries the same kind, so callers can match with
// errors.Is against sentinel-style values like &Error{Kind: ErrNoMatch}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
