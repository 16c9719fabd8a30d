package cli

import (
	"errors"
	"regexp"
)

// Validation happens here, before any service call: a request that cannot
// pass these checks is never sent.

const (
	minUsernameLen = 3
	minPasswordLen = 6
	maxPasswordLen = 72
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@.]+$`)

var (
	errUsernameTooShort = errors.New("username must be at least 3 characters")
	errInvalidEmail     = errors.New("please enter a valid email address")
	errBadPasswordLen   = errors.New("password must be between 6 and 72 characters")
)

func ValidateUsername(username string) error {
	if len(username) < minUsernameLen {
		return errUsernameTooShort
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return errInvalidEmail
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return errBadPasswordLen
	}
	return nil
}
