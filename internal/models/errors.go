package models

import "errors"

// Sentinel errors for the conditions callers need to branch on. Handlers map
// these to HTTP statuses with errors.Is; services wrap them with context via
// fmt.Errorf("...: %w", Err...).
var (
	// ErrNotFound signals that a referenced job, candidate or assessment
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation signals a rejected input (empty note, unknown stage,
	// missing required fields).
	ErrValidation = errors.New("validation failed")

	// ErrNoStageChange signals a transition to the candidate's current
	// stage. It is a legitimate no-op, not a server fault, and gets its own
	// channel so callers stop confusing it with transient failures.
	ErrNoStageChange = errors.New("candidate already in requested stage")

	// ErrTransient is the injected chaos failure. Callers may retry.
	ErrTransient = errors.New("transient server error")
)
