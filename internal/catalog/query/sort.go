package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/narwhalmedia/cinedex/internal/catalog/domain"
)

// Sort returns a stably sorted copy. Movies without a year (for year) or
// without a rating (for rating and popularity) go last in both directions.
func Sort(movies []domain.Movie, key SortKey, dir Direction) []domain.Movie {
	out := slices.Clone(movies)
	sortInPlace(out, key, dir)
	return out
}

func sortInPlace(movies []domain.Movie, key SortKey, dir Direction) {
	compare := comparator(key)
	slices.SortStableFunc(movies, func(a, b domain.Movie) int {
		if c, decided := absentLast(key, a, b); decided {
			return c
		}
		c := compare(a, b)
		if dir == Desc {
			return -c
		}
		return c
	})
}

func comparator(key SortKey) func(a, b domain.Movie) int {
	switch key {
	case SortRating, SortPopularity:
		return func(a, b domain.Movie) int { return cmp.Compare(a.Rating, b.Rating) }
	case SortTitle:
		return func(a, b domain.Movie) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case SortRuntime:
		return func(a, b domain.Movie) int { return cmp.Compare(a.RuntimeMinutes, b.RuntimeMinutes) }
	case SortReleased:
		return func(a, b domain.Movie) int { return cmp.Compare(a.ReleaseTimestamp, b.ReleaseTimestamp) }
	default:
		return func(a, b domain.Movie) int { return cmp.Compare(a.Year, b.Year) }
	}
}

// absentLast orders movies lacking the sort attribute after those that have
// it, independent of direction. decided is false when both or neither have it.
func absentLast(key SortKey, a, b domain.Movie) (c int, decided bool) {
	var hasA, hasB bool
	switch key {
	case SortRating, SortPopularity:
		hasA, hasB = a.HasRating(), b.HasRating()
	case SortTitle, SortRuntime, SortReleased:
		return 0, false
	default:
		hasA, hasB = a.HasYear(), b.HasYear()
	}

	switch {
	case hasA && !hasB:
		return -1, true
	case !hasA && hasB:
		return 1, true
	case !hasA && !hasB:
		return 0, true
	default:
		return 0, false
	}
}
