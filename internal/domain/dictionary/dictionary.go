package dictionary

import (
	"sort"
	"strings"
	"time"
)

// Dictionary maps words and phrases to definitions under a fixed name.
// Words are case sensitive.
type Dictionary struct {
	name        string
	definitions map[string]*Definition
}

// New creates an empty dictionary.
func New(name string) (*Dictionary, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	return &Dictionary{
		name:        name,
		definitions: make(map[string]*Definition),
	}, nil
}

// Name returns the dictionary name.
func (d *Dictionary) Name() string {
	return d.name
}

// Len returns the number of defined words.
func (d *Dictionary) Len() int {
	return len(d.definitions)
}

// WeakDefine adds a definition only when the word has none.
// It reports whether the definition was added.
func (d *Dictionary) WeakDefine(word string, def *Definition) bool {
	if _, ok := d.definitions[word]; ok {
		return false
	}
	d.definitions[word] = def
	return true
}

// StrongDefine adds or replaces a definition.
// It reports whether the word was already defined.
func (d *Dictionary) StrongDefine(word string, def *Definition) bool {
	_, existed := d.definitions[word]
	d.definitions[word] = def
	return existed
}

// Remove deletes a definition and reports whether one existed.
func (d *Dictionary) Remove(word string) bool {
	if _, ok := d.definitions[word]; !ok {
		return false
	}
	delete(d.definitions, word)
	return true
}

// Lookup returns the definition for an exact word. Reading the returned
// definition's text counts as the access.
func (d *Dictionary) Lookup(word string) (*Definition, bool) {
	def, ok := d.definitions[word]
	return def, ok
}

// ChangeEntryDate re-dates a definition and returns its previous entry date.
func (d *Dictionary) ChangeEntryDate(word string, newDate time.Time) (time.Time, error) {
	def, ok := d.definitions[word]
	if !ok {
		return time.Time{}, ErrNotFound
	}
	return def.ChangeDate(newDate), nil
}

// Words returns all words sorted case-insensitively.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.definitions))
	for word := range d.definitions {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		li, lj := strings.ToLower(words[i]), strings.ToLower(words[j])
		if li != lj {
			return li < lj
		}
		return words[i] < words[j]
	})
	return words
}

// WordsByEntryDate returns all words ordered by ascending entry date.
func (d *Dictionary) WordsByEntryDate() []string {
	words := make([]string, 0, len(d.definitions))
	for word := range d.definitions {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		di := d.definitions[words[i]].entryDate
		dj := d.definitions[words[j]].entryDate
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return words[i] < words[j]
	})
	return words
}

// Entries returns the raw stored data. It does not count accesses.
func (d *Dictionary) Entries() []Entry {
	entries := make([]Entry, 0, len(d.definitions))
	for _, word := range d.Words() {
		def := d.definitions[word]
		entries = append(entries, Entry{
			Word:      word,
			Text:      def.text,
			EntryDate: def.entryDate,
			Accesses:  def.accesses,
		})
	}
	return entries
}

// Render returns the name followed by every "word:\tdefinition" line in
// case-insensitive word order. Every rendered definition counts an access.
func (d *Dictionary) Render() string {
	var sb strings.Builder
	sb.WriteString(d.name)
	sb.WriteString("\n")
	for _, word := range d.Words() {
		sb.WriteString("\n")
		sb.WriteString(d.line(word))
	}
	return sb.String()
}

func (d *Dictionary) line(word string) string {
	return word + ":\t" + d.definitions[word].Read()
}
