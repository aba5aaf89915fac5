package store

import (
	"errors"
	"fmt"
)

var (
	// ErrStorage is matched by every failure to read, encode or write a
	// collection. Callers show a generic message and may retry.
	ErrStorage = errors.New("storage failure")

	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown store backend")
)

// Error wraps a storage failure with the operation and collection involved.
type Error struct {
	// Op is the operation that failed (e.g., "Save", "Read").
	Op string

	// Key is the collection key, if any.
	Key Key

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("store: %s %s failed: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("store: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes every store Error match ErrStorage.
func (e *Error) Is(target error) bool {
	return target == ErrStorage
}

func storageError(op string, key Key, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Key: key, Err: err}
}
