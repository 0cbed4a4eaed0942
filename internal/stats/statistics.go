package stats

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rpggio/wordbook/internal/domain/dictionary"
)

// ErrNotEnoughEntries indicates a dictionary with fewer than two definitions.
var ErrNotEnoughEntries = errors.New("at least two definitions are needed for statistics")

// DateOutputLayout formats timestamps in summaries.
const DateOutputLayout = "01/02/2006 03:04:05 PM"

const (
	timeDifferencesTitle       = "====== Time Differences Distribution ======"
	timeDifferencesDescription = "Distribution of entry times between consecutive definitions. Time is measured in minutes"
)

// Statistics is an immutable snapshot of a dictionary at generation time.
type Statistics struct {
	Name            string
	Entries         int
	GeneratedAt     time.Time
	TimeDifferences *Distribution
}

// New computes statistics for a dictionary. Reading entry dates does not
// count as an access.
func New(dict *dictionary.Dictionary, now time.Time) (*Statistics, error) {
	if dict.Len() < 2 {
		return nil, ErrNotEnoughEntries
	}

	words := dict.WordsByEntryDate()
	diffs := make([]float64, len(words)-1)
	for i := range diffs {
		first, _ := dict.Lookup(words[i])
		second, _ := dict.Lookup(words[i+1])
		diffs[i] = float64(second.EntryDate().Sub(first.EntryDate()) / time.Minute)
	}

	dist, err := NewDistribution(timeDifferencesTitle, timeDifferencesDescription, diffs)
	if err != nil {
		return nil, fmt.Errorf("time differences: %w", err)
	}

	return &Statistics{
		Name:            dict.Name(),
		Entries:         dict.Len(),
		GeneratedAt:     now,
		TimeDifferences: dist,
	}, nil
}

// Summary renders the snapshot as multi-line text.
func (s *Statistics) Summary() string {
	var sb strings.Builder
	sb.WriteString("============ STATISTICS ============\n")
	fmt.Fprintf(&sb, "As of %s:\n", s.GeneratedAt.Format(DateOutputLayout))
	fmt.Fprintf(&sb, "There are %d definitions in %s\n\n", s.Entries, s.Name)
	sb.WriteString(s.TimeDifferences.String())
	return sb.String()
}
