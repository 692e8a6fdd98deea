package query

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/cinedex/internal/catalog/domain"
)

func movie(id, title string, year int) domain.Movie {
	return domain.Movie{ID: id, Title: title, Year: year, Genre: []string{}, Cast: []string{}, Director: domain.DefaultDirector}
}

func ids(movies []domain.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func TestSort_YearAbsentLast(t *testing.T) {
	movies := []domain.Movie{movie("a", "A", 2010), movie("b", "B", 0), movie("c", "C", 1999)}

	assert.Equal(t, []string{"c", "a", "b"}, ids(Sort(movies, SortYear, Asc)))
	assert.Equal(t, []string{"a", "c", "b"}, ids(Sort(movies, SortYear, Desc)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(movies), "input must not be mutated")
}

func TestSort_RatingAbsentLast(t *testing.T) {
	a, b, c := movie("a", "A", 0), movie("b", "B", 0), movie("c", "C", 0)
	a.Rating, c.Rating = 6.1, 8.4
	movies := []domain.Movie{a, b, c}

	assert.Equal(t, []string{"a", "c", "b"}, ids(Sort(movies, SortRating, Asc)))
	assert.Equal(t, []string{"c", "a", "b"}, ids(Sort(movies, SortRating, Desc)))
	assert.Equal(t, []string{"c", "a", "b"}, ids(Sort(movies, SortPopularity, Desc)))
}

func TestSort_TitleCaseInsensitiveAndStable(t *testing.T) {
	movies := []domain.Movie{movie("1", "beta", 0), movie("2", "Alpha", 0), movie("3", "BETA", 0)}
	assert.Equal(t, []string{"2", "1", "3"}, ids(Sort(movies, SortTitle, Asc)))
	assert.Equal(t, []string{"1", "3", "2"}, ids(Sort(movies, SortTitle, Desc)))
}

func TestSort_RuntimeAndReleased(t *testing.T) {
	a, b := movie("a", "A", 0), movie("b", "B", 0)
	a.RuntimeMinutes, b.RuntimeMinutes = 150, 90
	a.ReleaseTimestamp, b.ReleaseTimestamp = 10, 20

	assert.Equal(t, []string{"b", "a"}, ids(Sort([]domain.Movie{a, b}, SortRuntime, Asc)))
	assert.Equal(t, []string{"b", "a"}, ids(Sort([]domain.Movie{a, b}, SortReleased, Desc)))
}

func TestHome_SearchTitleCastDirector(t *testing.T) {
	m1 := movie("1", "Rajapattai", 2011)
	m2 := movie("2", "Other", 2005)
	m2.Cast = []string{"Raja Kumar"}
	m3 := movie("3", "Unrelated", 2000)
	m4 := movie("4", "Film", 1990)
	m4.Director = "K. Raja"

	state := DefaultState()
	state.Search = "RAJA"
	got := Home([]domain.Movie{m1, m2, m3, m4}, state)
	assert.Equal(t, []string{"4", "2", "1"}, ids(got))
}

func TestHome_EmptySearchKeepsAll(t *testing.T) {
	movies := []domain.Movie{movie("1", "A", 2), movie("2", "B", 1)}
	assert.Len(t, Home(movies, DefaultState()), 2)
}

func TestFiltered(t *testing.T) {
	a := movie("a", "Baasha", 1995)
	a.Cast = []string{"Rajinikanth"}
	a.Genre = []string{"Action"}
	b := movie("b", "Enthiran", 2010)
	b.Cast = []string{"Rajinikanth", "Aishwarya Rai"}
	b.Director = "Shankar"
	c := movie("c", "Kabali", 0)
	c.Cast = []string{"rajinikanth"}
	movies := []domain.Movie{a, b, c}

	t.Run("cast exact case-insensitive, year desc, undated last", func(t *testing.T) {
		got := Filtered(movies, AttributeFilter{Type: FilterCast, Value: "RAJINIKANTH"}, "")
		assert.Equal(t, []string{"b", "a", "c"}, ids(got))
	})

	t.Run("cast substring does not match", func(t *testing.T) {
		assert.Empty(t, Filtered(movies, AttributeFilter{Type: FilterCast, Value: "Rajini"}, ""))
	})

	t.Run("year", func(t *testing.T) {
		assert.Equal(t, []string{"b"}, ids(Filtered(movies, AttributeFilter{Type: FilterYear, Value: "2010"}, "")))
		assert.Empty(t, Filtered(movies, AttributeFilter{Type: FilterYear, Value: "2010.0"}, ""))
	})

	t.Run("director and genre", func(t *testing.T) {
		assert.Equal(t, []string{"b"}, ids(Filtered(movies, AttributeFilter{Type: FilterDirector, Value: "shankar"}, "")))
		assert.Equal(t, []string{"a"}, ids(Filtered(movies, AttributeFilter{Type: FilterGenre, Value: "action"}, "")))
	})

	t.Run("title-only search narrows", func(t *testing.T) {
		got := Filtered(movies, AttributeFilter{Type: FilterCast, Value: "Rajinikanth"}, "kab")
		assert.Equal(t, []string{"c"}, ids(got))
		assert.Empty(t, Filtered(movies, AttributeFilter{Type: FilterCast, Value: "Rajinikanth"}, "aishwarya"))
	})

	t.Run("unknown type is empty", func(t *testing.T) {
		typ, ok := ParseFilterType("language")
		assert.False(t, ok)
		f := AttributeFilter{Type: typ, Value: "Tamil"}
		assert.Empty(t, Filtered(movies, f, ""))
		assert.Equal(t, "Results", f.Title())
	})
}

func TestAttributeFilterTitle(t *testing.T) {
	assert.Equal(t, "Year: 2010", AttributeFilter{Type: FilterYear, Value: "2010"}.Title())
	assert.Equal(t, "Cast: Vijay", AttributeFilter{Type: FilterCast, Value: "Vijay"}.Title())
	assert.Equal(t, "Director: Bala", AttributeFilter{Type: FilterDirector, Value: "Bala"}.Title())
	assert.Equal(t, "Genre: Drama", AttributeFilter{Type: FilterGenre, Value: "Drama"}.Title())
}

func TestSpecComposition(t *testing.T) {
	m := movie("1", "Mersal", 2017)
	m.Genre = []string{"Action"}

	assert.True(t, And(YearSpec{Value: "2017"}, GenreSpec{Name: "ACTION"}).IsSatisfiedBy(m))
	assert.False(t, And(YearSpec{Value: "2017"}, NoneSpec{}).IsSatisfiedBy(m))
	assert.True(t, Or(NoneSpec{}, TitleSearchSpec{Term: "mer"}).IsSatisfiedBy(m))
	assert.True(t, Not(NoneSpec{}).IsSatisfiedBy(m))
	assert.True(t, And().IsSatisfiedBy(m))
	assert.False(t, Or().IsSatisfiedBy(m))
}

func TestFindByID(t *testing.T) {
	movies := []domain.Movie{movie("x", "X", 0), movie("y", "Y", 0)}
	m, ok := FindByID(movies, "y")
	require.True(t, ok)
	assert.Equal(t, "Y", m.Title)

	_, ok = FindByID(movies, "z")
	assert.False(t, ok)
}

func TestAggregate(t *testing.T) {
	m1 := movie("1", "One", 0)
	m1.Cast = []string{"A", "B"}
	m2 := movie("2", "Two", 0)
	m2.Cast = []string{"B", "A", "C"}
	m3 := movie("3", "Three", 0)
	m3.Cast = []string{" "}
	movies := []domain.Movie{m1, m2, m3}

	want := []Credit{{"A", 2}, {"B", 2}, {"C", 1}}
	assert.Equal(t, want, Aggregate(movies, ModeCast))

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := append([]domain.Movie(nil), movies...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, want, Aggregate(shuffled, ModeCast))
	}
}

func TestAggregate_Directors(t *testing.T) {
	a := movie("1", "One", 0)
	a.Director = "Mani Ratnam"
	b := movie("2", "Two", 0)
	b.Director = "Mani Ratnam"
	c := movie("3", "Three", 0)
	d := movie("4", "Four", 0)
	d.Director = "bala"

	got := Aggregate([]domain.Movie{a, b, c, d}, ModeDirector)
	assert.Equal(t, []Credit{{"Mani Ratnam", 2}, {"bala", 1}}, got)
}

func TestAggregate_CollationIgnoresCase(t *testing.T) {
	a := movie("1", "One", 0)
	a.Cast = []string{"bharathi", "Arvind", "Élan"}
	got := Aggregate([]domain.Movie{a}, ModeCast)
	assert.Equal(t, []Credit{{"Arvind", 1}, {"bharathi", 1}, {"Élan", 1}}, got)
}

func TestFilterCredits(t *testing.T) {
	credits := []Credit{{"Kamal Haasan", 3}, {"Shruti Haasan", 1}, {"Vijay", 2}}
	assert.Equal(t, []Credit{{"Kamal Haasan", 3}, {"Shruti Haasan", 1}}, FilterCredits(credits, "haa"))
	assert.Equal(t, credits, FilterCredits(credits, ""))
	assert.Empty(t, FilterCredits(credits, "zzz"))
}

func TestYears(t *testing.T) {
	movies := []domain.Movie{movie("1", "", 2010), movie("2", "", 0), movie("3", "", 1999), movie("4", "", 2010)}
	assert.Equal(t, []int{2010, 1999}, Years(movies))
	assert.Empty(t, Years(nil))
}

func TestStateHelpers(t *testing.T) {
	assert.Equal(t, SortYear, ParseSortKey("budget"))
	assert.Equal(t, SortPopularity, ParseSortKey("popularity"))
	assert.Equal(t, Desc, Asc.Toggle())
	assert.Equal(t, Asc, Desc.Toggle())
	assert.Equal(t, Asc, ParseDirection(""))
	assert.Equal(t, ModeDirector, ParseDirectoryMode("director"))
	assert.Equal(t, ModeCast, ParseDirectoryMode("crew"))

	s := DefaultState()
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 36, s.PageSize)
	assert.Equal(t, SortYear, s.Sort)
	assert.Equal(t, Asc, s.Direction)
	assert.Equal(t, ModeCast, s.Tab)
	assert.Equal(t, 1, s.DirectoryPage)
}
