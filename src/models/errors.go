package models

import "errors"

// Domain-level sentinel errors for business logic
// These errors should not contain HTTP-specific information

var (
	// ErrNoProject indicates that the session carries no project scope
	ErrNoProject = errors.New("no project associated with session")

	// ErrNotFound indicates that the upstream reports the resource absent
	ErrNotFound = errors.New("resource not found")
)
