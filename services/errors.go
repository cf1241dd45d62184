package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a read-only lookup targets a GoalSet or
// AchievementRecord that does not exist. Lazy-create paths never return it.
var ErrNotFound = errors.New("not found")

// ValidationError marks malformed caller input (negative target, bad date,
// inverted range). Controllers map it to 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError wraps a failed store read or write. The engine never retries
// and never swallows one; it propagates to the caller as-is.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
