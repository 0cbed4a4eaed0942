package repository

import "errors"

var (
	// ErrNotFound is returned when a requested file or entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrCorrupt is returned when a dictionary file is not a readable dictionary
	ErrCorrupt = errors.New("malformed dictionary file")
)
