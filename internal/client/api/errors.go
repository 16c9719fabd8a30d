package api

import (
	"errors"
	"fmt"
)

// Kind classifies a transport-level failure.
type Kind int

const (
	// KindTransport means no usable response was received (network, DNS).
	KindTransport Kind = iota + 1
	// KindAuth covers failures of /register, /token and missing tokens.
	KindAuth
	// KindSession covers failures of the /api/interview endpoints.
	KindSession
)

var (
	// ErrUnavailable marks network-level failures where the server never
	// produced a response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks requests rejected for credential reasons.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is the typed failure produced by the API client. Message holds the
// user-facing text (the server's detail/message field when present, else a
// per-operation fallback); Err carries the underlying cause for logs.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// FailureMessage extracts the user-facing message from err. For non-API
// errors the plain Error() text is returned.
func FailureMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
