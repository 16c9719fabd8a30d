package services

import "errors"

var (
	// ErrNotAuthenticated is returned when an operation requiring a bearer
	// token is attempted anonymously. No request is sent.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoSession is returned when a message or end call names a session
	// that was never started.
	ErrNoSession = errors.New("no such session")

	// ErrSessionEnded is returned for any operation against a session that
	// already ended. No request is sent.
	ErrSessionEnded = errors.New("session already ended")

	// ErrSessionActive is returned when start is called while an interview
	// is still in progress.
	ErrSessionActive = errors.New("interview already in progress")
)
