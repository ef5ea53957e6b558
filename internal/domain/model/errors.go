package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound marks a resource that is absent or not owned by the caller.
// The two cases are deliberately indistinguishable: acting on someone
// else's record looks exactly like acting on a missing one.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials marks a failed username/password check
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrDuplicateKey marks a unique-constraint violation surfaced by the store
var ErrDuplicateKey = errors.New("duplicate key")

// ValidationErrors maps field names to human-readable messages. All checks
// on a request are collected into one value before it is returned, so a
// payload with several problems reports all of them at once.
type ValidationErrors map[string][]string

// Add appends a message for the given field
func (e ValidationErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// HasErrors reports whether any field failed validation
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Error implements the error interface
func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
