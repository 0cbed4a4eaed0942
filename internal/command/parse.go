package command

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const defaultHistoryLimit = 10

// DateArgumentLayout is the MM:dd:yyyy:HH:mm date argument format.
const DateArgumentLayout = "01:02:2006:15:04"

var (
	quotedWord = regexp.MustCompile(`"([^"]*)"\s`)
	quotedDate = regexp.MustCompile(`^\s*"([^"]*)"\s`)
)

type defineArgs struct {
	word string
	date time.Time
	text string
}

// parseDefine reads `"word" [ "date" ] text`. The date segment is only
// expected when datesEnabled is set.
func parseDefine(arg string, datesEnabled bool, now time.Time) (defineArgs, error) {
	loc := quotedWord.FindStringSubmatchIndex(arg)
	if loc == nil {
		return defineArgs{}, ErrMalformedDefinition
	}
	word := arg[loc[2]:loc[3]]
	if word == "" {
		return defineArgs{}, ErrMalformedDefinition
	}
	rest := arg[loc[1]:]

	date := now
	if datesEnabled {
		dloc := quotedDate.FindStringSubmatchIndex(rest)
		if dloc == nil {
			return defineArgs{}, ErrMalformedDate
		}
		parsed, err := parseDate(rest[dloc[2]:dloc[3]])
		if err != nil {
			return defineArgs{}, err
		}
		date = parsed
		rest = rest[dloc[1]:]
	}

	text := strings.TrimSpace(rest)
	if text == "" {
		return defineArgs{}, ErrMalformedDefinition
	}
	return defineArgs{word: word, date: date, text: text}, nil
}

// parseDate parses a date argument in local time.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateArgumentLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrMalformedDate, err)
	}
	return t, nil
}

// parseWord trims an exact-word argument and strips one pair of
// surrounding double quotes.
func parseWord(arg string) string {
	word := strings.TrimSpace(arg)
	if len(word) >= 2 && strings.HasPrefix(word, `"`) && strings.HasSuffix(word, `"`) {
		word = word[1 : len(word)-1]
	}
	return word
}

// parseHistory reads `[word] [n]`. A lone number is a limit; a trailing
// number after a word limits that word's entries.
func parseHistory(arg string) (string, int, error) {
	arg = strings.TrimSpace(arg)
	limit := defaultHistoryLimit

	if n, ok := parseLimit(arg); ok {
		if n <= 0 {
			return "", 0, ErrMalformedArgument
		}
		return "", n, nil
	}
	if i := strings.LastIndex(arg, " "); i >= 0 {
		if n, ok := parseLimit(arg[i+1:]); ok {
			if n <= 0 {
				return "", 0, ErrMalformedArgument
			}
			limit = n
			arg = arg[:i]
		}
	}
	return parseWord(arg), limit, nil
}

func parseLimit(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}
