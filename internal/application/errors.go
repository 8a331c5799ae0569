package application

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidDate       = errors.New("invalid date")
	ErrNotesRootNotFound = errors.New("notes folder not found")
	ErrNoActivityData    = errors.New("no activity data generated yet")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NoteError records why a single note produced no records.
// A batch collects these and keeps going.
type NoteError struct {
	Path string
	Err  error
}

func (e *NoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *NoteError) Unwrap() error {
	return e.Err
}

// RootError reports every location that was tried for the notes folder
type RootError struct {
	Tried []string
}

func (e *RootError) Error() string {
	return fmt.Sprintf("notes folder not found (tried: %s)", strings.Join(e.Tried, ", "))
}

func (e *RootError) Is(target error) bool {
	return target == ErrNotesRootNotFound
}
