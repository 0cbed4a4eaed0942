package dictionary

import (
	"fmt"
	"regexp"
	"sort"
)

// SearchAll scores every entry by the number of non-overlapping pattern
// matches in its rendered line. Entries that do not match score zero.
func (d *Dictionary) SearchAll(pattern string) ([]SearchResult, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	results := make([]SearchResult, 0, len(d.definitions))
	for word := range d.definitions {
		line := d.line(word)
		results = append(results, SearchResult{
			Line:  line,
			Score: len(re.FindAllStringIndex(line, -1)),
		})
	}
	return results, nil
}

// SortByRelevance orders results by ascending score, breaking ties by
// descending line.
func SortByRelevance(results []SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return results[i].Line > results[j].Line
	})
}

// Relevant returns the trailing run of positive scores after sorting by
// relevance, highest score first. It returns nil when nothing scored.
func Relevant(results []SearchResult) []SearchResult {
	sorted := make([]SearchResult, len(results))
	copy(sorted, results)
	SortByRelevance(sorted)

	var relevant []SearchResult
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Score <= 0 {
			break
		}
		relevant = append(relevant, sorted[i])
	}
	return relevant
}
