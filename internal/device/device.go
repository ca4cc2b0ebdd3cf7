package device

import (
	"errors"
	"fmt"
)

// ErrorKind is the category of a canonical BLE failure
type ErrorKind string

const (
	PermissionDenied ErrorKind = "permission_denied"
	NotConnected     ErrorKind = "not_connected"
	NotSupported     ErrorKind = "not_supported"
	Other            ErrorKind = "other"
)

// Error is the single error type platform adapters hand back to callers.
// Msg carries the NotSupported reason or the Other diagnostic message.
// Err, when set, is the native failure that was re-labelled.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := string(e.Kind)
	if e.Msg != "" {
		s = fmt.Sprintf("%s: %s", s, e.Msg)
	}
	if e.Err != nil {
		s = fmt.Sprintf("%s: %v", s, e.Err)
	}
	return s
}

// Unwrap exposes the native cause
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is allows errors.Is to compare Error values by Kind
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Predefined sentinel errors, one per kind
var (
	ErrPermissionDenied = &Error{Kind: PermissionDenied}
	ErrNotConnected     = &Error{Kind: NotConnected}
	ErrNotSupported     = &Error{Kind: NotSupported}
	ErrOther            = &Error{Kind: Other}
)

// NewNotSupported returns a NotSupported error carrying a human-readable reason tag.
func NewNotSupported(reason string) *Error {
	return &Error{Kind: NotSupported, Msg: reason}
}

// NewOther returns the catch-all error carrying a diagnostic message.
func NewOther(msg string) *Error {
	return &Error{Kind: Other, Msg: msg}
}

// Wrap re-labels cause under kind. A nil cause yields a plain kind error.
func Wrap(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// KindOf returns the kind of the first canonical Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsKind reports whether err is a canonical Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
