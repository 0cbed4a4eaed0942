package dictionary

import "errors"

var (
	// ErrNotFound indicates the word has no definition.
	ErrNotFound = errors.New("definition not found")
	// ErrInvalidName indicates a blank dictionary name.
	ErrInvalidName = errors.New("invalid dictionary name")
	// ErrInvalidPattern indicates a search pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid search pattern")
)
