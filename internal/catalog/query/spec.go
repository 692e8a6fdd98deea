package query

import (
	"strconv"
	"strings"

	"github.com/narwhalmedia/cinedex/internal/catalog/domain"
)

// Spec is a predicate over movies.
type Spec interface {
	IsSatisfiedBy(m domain.Movie) bool
}

// And is satisfied when every spec is.
func And(specs ...Spec) Spec {
	return andSpec(specs)
}

// Or is satisfied when any spec is.
func Or(specs ...Spec) Spec {
	return orSpec(specs)
}

func Not(spec Spec) Spec {
	return notSpec{spec}
}

type andSpec []Spec

func (s andSpec) IsSatisfiedBy(m domain.Movie) bool {
	for _, spec := range s {
		if !spec.IsSatisfiedBy(m) {
			return false
		}
	}
	return true
}

type orSpec []Spec

func (s orSpec) IsSatisfiedBy(m domain.Movie) bool {
	for _, spec := range s {
		if spec.IsSatisfiedBy(m) {
			return true
		}
	}
	return false
}

type notSpec struct{ spec Spec }

func (s notSpec) IsSatisfiedBy(m domain.Movie) bool {
	return !s.spec.IsSatisfiedBy(m)
}

// SearchSpec matches the term, case-insensitively, as a substring of the
// title, any cast name, or the director. An empty term matches everything.
type SearchSpec struct {
	Term string
}

func (s SearchSpec) IsSatisfiedBy(m domain.Movie) bool {
	if s.Term == "" {
		return true
	}
	term := strings.ToLower(s.Term)
	if containsFold(m.Title, term) || containsFold(m.Director, term) {
		return true
	}
	for _, c := range m.Cast {
		if containsFold(c, term) {
			return true
		}
	}
	return false
}

// TitleSearchSpec is SearchSpec restricted to the title.
type TitleSearchSpec struct {
	Term string
}

func (s TitleSearchSpec) IsSatisfiedBy(m domain.Movie) bool {
	return s.Term == "" || containsFold(m.Title, strings.ToLower(s.Term))
}

// YearSpec compares the year's decimal text with Value, so "2010" matches
// 2010 and "2010.0" matches nothing.
type YearSpec struct {
	Value string
}

func (s YearSpec) IsSatisfiedBy(m domain.Movie) bool {
	return m.HasYear() && strconv.Itoa(m.Year) == s.Value
}

// CastSpec matches a whole cast name, case-insensitively.
type CastSpec struct {
	Name string
}

func (s CastSpec) IsSatisfiedBy(m domain.Movie) bool {
	for _, c := range m.Cast {
		if strings.EqualFold(c, s.Name) {
			return true
		}
	}
	return false
}

type DirectorSpec struct {
	Name string
}

func (s DirectorSpec) IsSatisfiedBy(m domain.Movie) bool {
	return strings.EqualFold(m.Director, s.Name)
}

type GenreSpec struct {
	Name string
}

func (s GenreSpec) IsSatisfiedBy(m domain.Movie) bool {
	for _, g := range m.Genre {
		if strings.EqualFold(g, s.Name) {
			return true
		}
	}
	return false
}

// NoneSpec matches nothing.
type NoneSpec struct{}

func (NoneSpec) IsSatisfiedBy(domain.Movie) bool { return false }

// Select returns the movies satisfying spec, in their original order.
func Select(movies []domain.Movie, spec Spec) []domain.Movie {
	out := make([]domain.Movie, 0, len(movies))
	for _, m := range movies {
		if spec.IsSatisfiedBy(m) {
			out = append(out, m)
		}
	}
	return out
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
