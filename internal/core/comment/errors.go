package comment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrKeyNotFound is returned by a Storage when the key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// FieldError describes why a single submitted field was rejected.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError is returned when a submission is rejected. The board is
// left untouched when it is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "invalid comment: " + strings.Join(parts, ", ")
}

// Has reports whether the named field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// StorageReadError wraps a failure to read or decode the persisted list.
type StorageReadError struct {
	Key string
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("read comments %q: %v", e.Key, e.Err)
}

func (e *StorageReadError) Unwrap() error { return e.Err }

// StorageWriteError wraps a failed persist. The in-memory list has already
// been updated when it is returned.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("comments not saved to %q: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// ExportError wraps a failure to build or save a backup document.
type ExportError struct {
	Op  string
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export comments: %s: %v", e.Op, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
