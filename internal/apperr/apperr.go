// Package apperr defines the stable error kinds shared by the store, the
// API client and the server, so callers can branch on failure class instead
// of matching message strings.
package apperr

import "errors"

type Kind int

const (
	// NotFound means a referenced entity is absent from its collection.
	NotFound Kind = iota + 1
	// InvalidCredentials means a login attempt failed validation.
	InvalidCredentials
	// InvalidState means an operation was applied in an illegal state,
	// e.g. cancelling a scan that is not running.
	InvalidState
	// Unauthorized is propagated from the transport on a 401 response.
	Unauthorized
	// Internal covers transport and storage faults.
	Internal
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case InvalidCredentials:
		return "invalid credentials"
	case InvalidState:
		return "invalid state"
	case Unauthorized:
		return "unauthorized"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind carried by err, or 0 when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsNotFound(err error) bool     { return KindOf(err) == NotFound }
func IsInvalidState(err error) bool { return KindOf(err) == InvalidState }
func IsUnauthorized(err error) bool { return KindOf(err) == Unauthorized }
