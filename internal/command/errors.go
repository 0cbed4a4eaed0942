package command

import (
	"errors"
	"fmt"

	"github.com/rpggio/wordbook/internal/domain/dictionary"
	"github.com/rpggio/wordbook/internal/repository"
	"github.com/rpggio/wordbook/internal/stats"
)

var (
	ErrNoOpenDictionary    = errors.New("no dictionary is open")
	ErrNoPath              = errors.New("no path specified")
	ErrMalformedName       = errors.New("malformed dictionary name")
	ErrMalformedDefinition = errors.New("malformed definition argument")
	ErrMalformedDate       = errors.New("malformed date argument")
	ErrMalformedArgument   = errors.New("malformed argument")
	ErrInvalidCommand      = errors.New("invalid command")
	ErrInvalidVersion      = errors.New("invalid version argument")
	ErrNoJournal           = errors.New("journal unavailable")

	// ErrIO matches every FileError.
	ErrIO = errors.New("i/o failure")
)

// FileError reports a failed file operation on Path.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	return target == ErrIO
}

// NotFoundError reports a word with no definition.
type NotFoundError struct {
	Word string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no definition exists for %q", e.Word)
}

func (e *NotFoundError) Is(target error) bool {
	return target == dictionary.ErrNotFound
}

// MapError maps domain errors to "ERROR: " result strings.
func MapError(err error) string {
	if err == nil {
		return ""
	}

	var fileErr *FileError
	var notFound *NotFoundError
	switch {
	case errors.As(err, &fileErr) && errors.Is(err, repository.ErrCorrupt):
		return fmt.Sprintf("ERROR: \"%s\" is not a dictionary file", fileErr.Path)
	case errors.As(err, &fileErr):
		return fmt.Sprintf("ERROR: Problem %s at \"%s\"", fileErr.Op, fileErr.Path)
	case errors.As(err, &notFound):
		return fmt.Sprintf("ERROR: No definition exists for \"%s\"", notFound.Word)
	case errors.Is(err, ErrNoOpenDictionary):
		return "ERROR: No dictionary is open!"
	case errors.Is(err, ErrNoPath):
		return "ERROR: No path specified!"
	case errors.Is(err, ErrMalformedName), errors.Is(err, dictionary.ErrInvalidName):
		return "ERROR: Malformed dictionary name!"
	case errors.Is(err, ErrMalformedDefinition):
		return "ERROR: Malformed definition argument!"
	case errors.Is(err, ErrMalformedDate):
		return "ERROR: Malformed date argument!"
	case errors.Is(err, ErrMalformedArgument):
		return "ERROR: Malformed argument!"
	case errors.Is(err, ErrInvalidCommand):
		return "ERROR: Invalid command!"
	case errors.Is(err, ErrInvalidVersion):
		return "ERROR: Invalid version argument! Use \"new\" or \"current\""
	case errors.Is(err, dictionary.ErrInvalidPattern):
		return "ERROR: Invalid search pattern!"
	case errors.Is(err, stats.ErrNotEnoughEntries):
		return "ERROR: At least two definitions are needed for statistics!"
	case errors.Is(err, ErrNoJournal):
		return "ERROR: History is unavailable!"
	default:
		return "ERROR: " + err.Error()
	}
}
