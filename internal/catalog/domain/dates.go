package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// epochOffset is the number of seconds between 0001-01-01 and 1970-01-01.
// Release timestamps count from year one so that pre-1970 films stay
// non-negative.
const epochOffset int64 = 62135596800

var releaseLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2 Jan 2006",
	"02 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"01/02/2006",
	"2006/01/02",
	"January 2006",
	"2006",
}

var (
	countrySuffix = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	digitRun      = regexp.MustCompile(`\d+`)
)

// ParseReleaseDate parses a display date such as "14 Jan 2011 (India)".
func ParseReleaseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(countrySuffix.ReplaceAllString(s, ""))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range releaseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ReleaseTimestamp resolves the sortable release instant: the parsed date,
// else January 1 of year, else 0.
func ReleaseTimestamp(released string, year int) int64 {
	if t, ok := ParseReleaseDate(released); ok {
		return sinceYearOne(t)
	}
	if year > 0 {
		return sinceYearOne(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	}
	return 0
}

func sinceYearOne(t time.Time) int64 {
	return max(t.Unix()+epochOffset, 0)
}

// RuntimeMinutes extracts the first run of digits, e.g. 165 from "165 min".
func RuntimeMinutes(runtime string) int {
	m := digitRun.FindString(runtime)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
