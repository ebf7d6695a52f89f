package domain

import "errors"

// Every error below is terminal: each marks a client-correctable
// precondition failure and is returned to the caller immediately, never
// retried or swallowed.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrAccessDenied = errors.New("access denied")

	ErrShiftInProgress = errors.New("work shift already in progress")
	ErrShiftNotStarted = errors.New("work shift not started")
	ErrBreakInProgress = errors.New("break already in progress")
	ErrBreakNotStarted = errors.New("break not started")

	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStorageUnavailable marks persistence-layer I/O failures. It is
	// deliberately distinct from the domain preconditions above so callers
	// can tell "you asked for something impossible" apart from "the
	// database is down".
	ErrStorageUnavailable = errors.New("storage unavailable")
)
