package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/cinedex/internal/catalog/domain"
	"github.com/narwhalmedia/cinedex/internal/catalog/query"
	"github.com/narwhalmedia/cinedex/pkg/config"
	"github.com/narwhalmedia/cinedex/pkg/errors"
	"github.com/narwhalmedia/cinedex/pkg/logger"
	"github.com/narwhalmedia/cinedex/test/testutil"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	svc *CatalogService
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.svc = NewCatalogService(testutil.TestMovies(), config.GetDefaults().Browse, logger.NewNoop())
}

func (s *CatalogServiceTestSuite) TestHome_DefaultOrder() {
	res := s.svc.Home(s.svc.DefaultState())
	s.Equal(4, res.Total)
	s.False(res.HasMore)
	s.Equal([]string{"m1", "m3", "m2", "m4"}, movieIDs(res.Movies))
}

func (s *CatalogServiceTestSuite) TestHome_LoadMore() {
	state := s.svc.DefaultState()
	state.PageSize = 3

	first := s.svc.Home(state)
	s.Len(first.Movies, 3)
	s.True(first.HasMore)

	state.Page = 2
	second := s.svc.Home(state)
	s.Len(second.Movies, 4)
	s.False(second.HasMore)
	s.Equal(first.Movies, second.Movies[:3])
}

func (s *CatalogServiceTestSuite) TestHome_SearchAndSort() {
	state := s.svc.DefaultState()
	state.Search = "shankar"
	state.Sort = query.SortRating
	state.Direction = query.Desc

	res := s.svc.Home(state)
	s.Equal([]string{"m2", "m3"}, movieIDs(res.Movies))
}

func (s *CatalogServiceTestSuite) TestDetail() {
	m, err := s.svc.Detail("m2")
	s.Require().NoError(err)
	s.Equal("Enthiran", m.Title)

	_, err = s.svc.Detail("missing")
	s.True(errors.IsNotFound(err))
}

func (s *CatalogServiceTestSuite) TestFiltered() {
	got := s.svc.Filtered(query.AttributeFilter{Type: query.FilterCast, Value: "vikram"}, "")
	s.Equal([]string{"m3", "m4"}, movieIDs(got))
}

func (s *CatalogServiceTestSuite) TestYears() {
	s.Equal([]int{2010, 2005, 1995}, s.svc.Years())
}

func (s *CatalogServiceTestSuite) TestDirectory() {
	state := s.svc.DefaultState()
	page := s.svc.Directory(state)
	s.Equal(1, page.Page)
	s.Equal(1, page.TotalPages)
	s.Equal(query.Credit{Name: "Rajinikanth", Count: 2}, page.Items[0])
	s.Equal(query.Credit{Name: "Vikram", Count: 2}, page.Items[1])

	state.Tab = query.ModeDirector
	page = s.svc.Directory(state)
	s.Equal([]query.Credit{{Name: "S. Shankar", Count: 2}, {Name: "Suresh Krissna", Count: 1}}, page.Items)

	state.DirectoryFilter = "sure"
	page = s.svc.Directory(state)
	s.Len(page.Items, 1)
}

func (s *CatalogServiceTestSuite) TestTrailerLinks() {
	m, err := s.svc.Detail("m1")
	s.Require().NoError(err)

	links := s.svc.TrailerLinks(m)
	s.Equal("https://www.youtube.com/results?search_query=Baasha+tamil+trailer+old", links.Trailer)
	s.Equal("https://www.youtube.com/results?search_query=Baasha+tamil+full+movie+old", links.FullMovie)

	m, err = s.svc.Detail("m3")
	s.Require().NoError(err)
	s.Equal("https://www.youtube.com/results?search_query=Anniyan+tamil+trailer", s.svc.TrailerLinks(m).Trailer)
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func TestDirectory_Paging(t *testing.T) {
	movies := make([]domain.Movie, 0, 85)
	for i := 0; i < 85; i++ {
		m := testutil.CreateTestMovie(fmt.Sprintf("m%d", i), "Film", 2000)
		m.Cast = []string{fmt.Sprintf("Actor %03d", i)}
		movies = append(movies, m)
	}
	svc := NewCatalogService(movies, config.GetDefaults().Browse, logger.NewNoop())

	state := svc.DefaultState()
	state.DirectoryPage = 3
	page := svc.Directory(state)
	require.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, "Actor 080", page.Items[0].Name)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)

	state.DirectoryPage = 9
	assert.Equal(t, 3, svc.Directory(state).Page)
}

func movieIDs(movies []domain.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}
