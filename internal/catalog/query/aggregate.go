package query

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/narwhalmedia/cinedex/internal/catalog/domain"
)

// Credit is one row of the people directory.
type Credit struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Aggregate counts appearances per cast member or per director. Results are
// ordered by count descending, then by name using locale-aware collation.
func Aggregate(movies []domain.Movie, mode DirectoryMode) []Credit {
	counts := make(map[string]int)
	for _, m := range movies {
		if mode == ModeDirector {
			if m.HasKnownDirector() {
				if d := strings.TrimSpace(m.Director); d != "" {
					counts[d]++
				}
			}
			continue
		}
		for _, c := range m.Cast {
			if name := strings.TrimSpace(c); name != "" {
				counts[name]++
			}
		}
	}

	credits := make([]Credit, 0, len(counts))
	for name, n := range counts {
		credits = append(credits, Credit{Name: name, Count: n})
	}

	// Collators hold scratch buffers and must not be shared across goroutines.
	col := collate.New(language.Und)
	slices.SortFunc(credits, func(a, b Credit) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return credits
}

// FilterCredits keeps credits whose name contains term, case-insensitively.
func FilterCredits(credits []Credit, term string) []Credit {
	if term == "" {
		return credits
	}
	term = strings.ToLower(term)
	out := make([]Credit, 0, len(credits))
	for _, c := range credits {
		if strings.Contains(strings.ToLower(c.Name), term) {
			out = append(out, c)
		}
	}
	return out
}

// Years lists the distinct known years, newest first.
func Years(movies []domain.Movie) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, m := range movies {
		if !m.HasYear() {
			continue
		}
		if _, ok := seen[m.Year]; ok {
			continue
		}
		seen[m.Year] = struct{}{}
		years = append(years, m.Year)
	}
	slices.Sort(years)
	slices.Reverse(years)
	return years
}
