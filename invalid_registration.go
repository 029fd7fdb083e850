package cline

// InvalidRegistration is returned when Register is called with an empty path
// or an empty-string token. The tree is left unchanged.
func InvalidRegistration(reason string) *Error {
	return &Error{
		Kind:    ErrInvalidRegistration,
		Message: "invalid registration: " + reason,
	}
}
