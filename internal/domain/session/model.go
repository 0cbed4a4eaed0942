package session

import (
	"github.com/rpggio/wordbook/internal/domain/dictionary"
	"github.com/rpggio/wordbook/internal/stats"
)

// Session is the mutable context every command acts on.
type Session struct {
	ID           string
	Dictionary   *dictionary.Dictionary
	Path         string
	Printout     *string
	Statistics   *stats.Statistics
	DatesEnabled bool
}

// New creates a session with no open dictionary.
func New(id string, datesEnabled bool) *Session {
	return &Session{ID: id, DatesEnabled: datesEnabled}
}

// DictionaryName returns the open dictionary's name, or "" when none is open.
func (s *Session) DictionaryName() string {
	if s.Dictionary == nil {
		return ""
	}
	return s.Dictionary.Name()
}
