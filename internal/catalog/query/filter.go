package query

import (
	"fmt"

	"github.com/narwhalmedia/cinedex/internal/catalog/domain"
)

// FilterType names the attribute a results page filters on.
type FilterType string

const (
	FilterYear     FilterType = "year"
	FilterCast     FilterType = "cast"
	FilterDirector FilterType = "director"
	FilterGenre    FilterType = "genre"
)

// ParseFilterType reports false for anything but the four attribute types.
func ParseFilterType(s string) (FilterType, bool) {
	switch t := FilterType(s); t {
	case FilterYear, FilterCast, FilterDirector, FilterGenre:
		return t, true
	default:
		return FilterType(s), false
	}
}

// AttributeFilter is the (type, value) pair a results page is opened with.
type AttributeFilter struct {
	Type  FilterType `json:"type"`
	Value string     `json:"value"`
}

// Spec returns the predicate for the filter. Unknown types match nothing.
func (f AttributeFilter) Spec() Spec {
	switch f.Type {
	case FilterYear:
		return YearSpec{Value: f.Value}
	case FilterCast:
		return CastSpec{Name: f.Value}
	case FilterDirector:
		return DirectorSpec{Name: f.Value}
	case FilterGenre:
		return GenreSpec{Name: f.Value}
	default:
		return NoneSpec{}
	}
}

// Title is the results page heading, e.g. "Year: 2010".
func (f AttributeFilter) Title() string {
	switch f.Type {
	case FilterYear:
		return fmt.Sprintf("Year: %s", f.Value)
	case FilterCast:
		return fmt.Sprintf("Cast: %s", f.Value)
	case FilterDirector:
		return fmt.Sprintf("Director: %s", f.Value)
	case FilterGenre:
		return fmt.Sprintf("Genre: %s", f.Value)
	default:
		return "Results"
	}
}

// Home applies the free-text search, then the state's sort.
func Home(movies []domain.Movie, state State) []domain.Movie {
	results := Select(movies, SearchSpec{Term: state.Search})
	sortInPlace(results, state.Sort, state.Direction)
	return results
}

// Filtered applies the attribute filter and a title-only search, then orders
// by year, newest first, with undated movies last.
func Filtered(movies []domain.Movie, filter AttributeFilter, search string) []domain.Movie {
	results := Select(movies, And(filter.Spec(), TitleSearchSpec{Term: search}))
	sortInPlace(results, SortYear, Desc)
	return results
}

// FindByID returns the movie with the given id.
func FindByID(movies []domain.Movie, id string) (domain.Movie, bool) {
	for _, m := range movies {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Movie{}, false
}
