package dictionary_test

import (
	"testing"
	"time"

	"github.com/rpggio/wordbook/internal/domain/dictionary"
	"github.com/stretchr/testify/require"
)

func newDictionary(t *testing.T, name string) *dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.New(name)
	require.NoError(t, err)
	return d
}

func TestNew_RejectsBlankName(t *testing.T) {
	_, err := dictionary.New("   ")
	require.ErrorIs(t, err, dictionary.ErrInvalidName)
}

func TestDefinition_ReadCountsAccesses(t *testing.T) {
	date := time.Date(2020, 1, 2, 3, 4, 0, 0, time.UTC)
	def := dictionary.NewDefinition("a small feline", date)
	require.Equal(t, 0, def.Accesses())

	require.Equal(t, "a small feline", def.Read())
	require.Equal(t, "a small feline", def.Read())
	require.Equal(t, 2, def.Accesses())
	require.True(t, date.Equal(def.EntryDate()))
}

func TestDefinition_ChangeDateReturnsPrevious(t *testing.T) {
	first := time.Date(2021, 5, 1, 10, 0, 0, 0, time.UTC)
	earlier := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	def := dictionary.NewDefinition("text", first)

	old := def.ChangeDate(earlier)
	require.True(t, first.Equal(old))
	require.True(t, earlier.Equal(def.EntryDate()))
}

func TestWeakDefine(t *testing.T) {
	d := newDictionary(t, "Test")
	now := time.Now()

	require.True(t, d.WeakDefine("cat", dictionary.NewDefinition("a small feline", now)))
	require.False(t, d.WeakDefine("cat", dictionary.NewDefinition("something else", now)))

	def, ok := d.Lookup("cat")
	require.True(t, ok)
	require.Equal(t, "a small feline", def.Read())
	require.Equal(t, 1, d.Len())
}

func TestStrongDefine(t *testing.T) {
	d := newDictionary(t, "Test")
	now := time.Now()

	require.False(t, d.StrongDefine("cat", dictionary.NewDefinition("a small feline", now)))
	require.True(t, d.StrongDefine("cat", dictionary.NewDefinition("a domesticated feline", now)))

	def, ok := d.Lookup("cat")
	require.True(t, ok)
	require.Equal(t, "a domesticated feline", def.Read())
}

func TestLookup_IsCaseSensitive(t *testing.T) {
	d := newDictionary(t, "Test")
	d.WeakDefine("Cat", dictionary.NewDefinition("proper noun", time.Now()))

	_, ok := d.Lookup("cat")
	require.False(t, ok)
	_, ok = d.Lookup("Cat")
	require.True(t, ok)
}

func TestRemove(t *testing.T) {
	d := newDictionary(t, "Test")
	d.WeakDefine("cat", dictionary.NewDefinition("a feline", time.Now()))

	require.True(t, d.Remove("cat"))
	_, ok := d.Lookup("cat")
	require.False(t, ok)
	require.False(t, d.Remove("cat"))
}

func TestChangeEntryDate(t *testing.T) {
	d := newDictionary(t, "Test")
	original := time.Date(2022, 3, 4, 5, 6, 0, 0, time.Local)
	d.WeakDefine("cat", dictionary.NewDefinition("a feline", original))

	newDate := time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)
	old, err := d.ChangeEntryDate("cat", newDate)
	require.NoError(t, err)
	require.True(t, original.Equal(old))

	def, _ := d.Lookup("cat")
	require.True(t, newDate.Equal(def.EntryDate()))

	_, err = d.ChangeEntryDate("dog", newDate)
	require.ErrorIs(t, err, dictionary.ErrNotFound)
}

func TestRender_SortsCaseInsensitively(t *testing.T) {
	d := newDictionary(t, "Animals")
	now := time.Now()
	d.WeakDefine("zebra", dictionary.NewDefinition("striped", now))
	d.WeakDefine("Bear", dictionary.NewDefinition("large", now))
	d.WeakDefine("ant", dictionary.NewDefinition("small", now))

	require.Equal(t, "Animals\n\nant:\tsmall\nBear:\tlarge\nzebra:\tstriped", d.Render())

	def, _ := d.Lookup("Bear")
	require.Equal(t, 1, def.Accesses())
}

func TestRender_Empty(t *testing.T) {
	d := newDictionary(t, "Empty")
	require.Equal(t, "Empty\n", d.Render())
}

func TestWordsByEntryDate(t *testing.T) {
	d := newDictionary(t, "Test")
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	d.WeakDefine("c", dictionary.NewDefinition("x", base.Add(2*time.Hour)))
	d.WeakDefine("a", dictionary.NewDefinition("x", base.Add(3*time.Hour)))
	d.WeakDefine("b", dictionary.NewDefinition("x", base))

	require.Equal(t, []string{"b", "c", "a"}, d.WordsByEntryDate())
}

func TestEntries_DoesNotCountAccesses(t *testing.T) {
	d := newDictionary(t, "Test")
	date := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	d.WeakDefine("cat", dictionary.RestoreDefinition("a feline", date, 4))

	entries := d.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, dictionary.Entry{Word: "cat", Text: "a feline", EntryDate: date, Accesses: 4}, entries[0])

	def, _ := d.Lookup("cat")
	require.Equal(t, 4, def.Accesses())
}
