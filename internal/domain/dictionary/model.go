package dictionary

import "time"

// Definition is the text stored for a word along with its entry date and
// the number of times the text has been read.
type Definition struct {
	text      string
	entryDate time.Time
	accesses  int
}

// NewDefinition creates a definition with zero accesses.
func NewDefinition(text string, entryDate time.Time) *Definition {
	return &Definition{text: text, entryDate: entryDate}
}

// RestoreDefinition rebuilds a definition from persisted fields.
func RestoreDefinition(text string, entryDate time.Time, accesses int) *Definition {
	if accesses < 0 {
		accesses = 0
	}
	return &Definition{text: text, entryDate: entryDate, accesses: accesses}
}

// Read returns the definition text and counts one access.
func (d *Definition) Read() string {
	d.accesses++
	return d.text
}

// EntryDate returns the date the definition was entered.
func (d *Definition) EntryDate() time.Time {
	return d.entryDate
}

// Accesses returns how many times the text was read.
func (d *Definition) Accesses() int {
	return d.accesses
}

// ChangeDate replaces the entry date and returns the previous one.
func (d *Definition) ChangeDate(newDate time.Time) time.Time {
	old := d.entryDate
	d.entryDate = newDate
	return old
}

// Entry is a raw view of a stored definition used for persistence.
type Entry struct {
	Word      string
	Text      string
	EntryDate time.Time
	Accesses  int
}

// SearchResult is one rendered entry line and the number of pattern matches in it.
type SearchResult struct {
	Line  string
	Score int
}
