package activity

import "time"

// ActivityType represents the type of journal event
type ActivityType string

const (
	TypeDictionaryCreated ActivityType = "dictionary_created"
	TypeDictionaryOpened  ActivityType = "dictionary_opened"
	TypeDictionarySaved   ActivityType = "dictionary_saved"
	TypeDictionaryClosed  ActivityType = "dictionary_closed"
	TypeDefinitionAdded   ActivityType = "definition_added"
	TypeDefinitionUpdated ActivityType = "definition_updated"
	TypeDefinitionRemoved ActivityType = "definition_removed"
	TypeEntryDateChanged  ActivityType = "entry_date_changed"
	TypeStatisticsDumped  ActivityType = "statistics_dumped"
)

// ActivityEntry represents an event in the journal
type ActivityEntry struct {
	ID           int64        `json:"id"`
	SessionID    string       `json:"session_id"`
	Dictionary   string       `json:"dictionary"`
	Word         *string      `json:"word,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
