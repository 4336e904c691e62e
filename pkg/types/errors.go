package types

import (
	"errors"
	"fmt"
	"strings"
)

// Field validation errors. They are carried inside a *ValidationError so
// callers can match with errors.Is and still report the offending field.
var (
	ErrEmptyKey         = errors.New("key must not be empty")
	ErrInvalidKey       = errors.New("key contains a reserved character")
	ErrInvalidEnumValue = errors.New("value is not one of the allowed values")
	ErrInvalidNumber    = errors.New("value is not a valid number")
	ErrNegativeValue    = errors.New("value must not be negative")
)

// Record store errors.
var (
	ErrCapacityExceeded = errors.New("store is full")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrDuplicateKey     = errors.New("a record with that key already exists")
)

// Persistence and lookup errors. ErrNotFound is a normal empty state (no
// log file yet, no matching record) and is never escalated.
var (
	ErrWrite    = errors.New("write failed")
	ErrRead     = errors.New("read failed")
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a rejected user-supplied value.
type ValidationError struct {
	Field   string   // Field name as shown to the user.
	Value   string   // Raw input that was rejected.
	Allowed []string // Allowed set, for enumerated fields.
	Err     error    // One of the field validation sentinels.
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidEnumValue):
		return fmt.Sprintf("invalid %s %q. Allowed: %s only.", e.Field, e.Value, strings.Join(e.Allowed, ", "))
	case errors.Is(e.Err, ErrEmptyKey):
		return fmt.Sprintf("%s cannot be empty", e.Field)
	default:
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }
