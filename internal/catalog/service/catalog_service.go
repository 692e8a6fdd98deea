package service

import (
	"fmt"
	"net/url"

	"github.com/narwhalmedia/cinedex/internal/catalog/domain"
	"github.com/narwhalmedia/cinedex/internal/catalog/query"
	"github.com/narwhalmedia/cinedex/pkg/cache"
	"github.com/narwhalmedia/cinedex/pkg/config"
	"github.com/narwhalmedia/cinedex/pkg/errors"
	"github.com/narwhalmedia/cinedex/pkg/interfaces"
	"github.com/narwhalmedia/cinedex/pkg/pagination"
)

const youtubeSearchURL = "https://www.youtube.com/results"

// CatalogService answers every page's query over the loaded collection. The
// collection is never mutated after construction, so the service is safe for
// concurrent use.
type CatalogService struct {
	movies  []domain.Movie
	browse  config.BrowseConfig
	credits interfaces.Cache[query.DirectoryMode, []query.Credit]
	logger  interfaces.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(movies []domain.Movie, browse config.BrowseConfig, logger interfaces.Logger) *CatalogService {
	if browse.PageSize <= 0 {
		browse.PageSize = query.DefaultPageSize
	}
	if browse.DirectoryPageSize <= 0 {
		browse.DirectoryPageSize = query.DefaultDirectoryPageSize
	}
	return &CatalogService{
		movies:  movies,
		browse:  browse,
		credits: cache.NewInMemoryCache[query.DirectoryMode, []query.Credit](0),
		logger:  logger,
	}
}

// HomeResult is the visible prefix of the home grid.
type HomeResult struct {
	Movies  []domain.Movie `json:"movies"`
	Total   int            `json:"total"`
	HasMore bool           `json:"hasMore"`
}

// TrailerLinks are the external search links on the detail page.
type TrailerLinks struct {
	Trailer   string `json:"trailer"`
	FullMovie string `json:"fullMovie"`
}

// Count is the collection size.
func (s *CatalogService) Count() int {
	return len(s.movies)
}

// DefaultState applies the configured defaults to a fresh query state.
func (s *CatalogService) DefaultState() query.State {
	state := query.DefaultState()
	state.PageSize = s.browse.PageSize
	state.Sort = query.ParseSortKey(s.browse.DefaultSort)
	state.Direction = query.ParseDirection(s.browse.DefaultDirection)
	return state
}

// Home searches, sorts and reveals the first state.Page pages.
func (s *CatalogService) Home(state query.State) HomeResult {
	results := query.Home(s.movies, state)
	size := state.PageSize
	if size <= 0 {
		size = s.browse.PageSize
	}

	return HomeResult{
		Movies:  pagination.Prefix(results, state.Page, size),
		Total:   len(results),
		HasMore: pagination.HasMore(len(results), state.Page, size),
	}
}

// Detail looks a movie up by id.
func (s *CatalogService) Detail(id string) (domain.Movie, error) {
	m, ok := query.FindByID(s.movies, id)
	if !ok {
		s.logger.Debug("Movie not found", interfaces.String("id", id))
		return domain.Movie{}, errors.NotFound(fmt.Sprintf("movie %q not found", id))
	}
	return m, nil
}

// Filtered returns the results page for an attribute filter.
func (s *CatalogService) Filtered(filter query.AttributeFilter, search string) []domain.Movie {
	return query.Filtered(s.movies, filter, search)
}

// Years lists the years directory.
func (s *CatalogService) Years() []int {
	return query.Years(s.movies)
}

// Directory returns one window of the cast or director directory.
// Aggregates are computed once per mode.
func (s *CatalogService) Directory(state query.State) pagination.Page[query.Credit] {
	mode := query.ParseDirectoryMode(string(state.Tab))
	credits := s.credits.GetOrCompute(mode, func() []query.Credit {
		credits := query.Aggregate(s.movies, mode)
		s.logger.Debug("Computed directory aggregate",
			interfaces.String("mode", string(mode)),
			interfaces.Int("names", len(credits)))
		return credits
	})

	filtered := query.FilterCredits(credits, state.DirectoryFilter)
	return pagination.Window(filtered, state.DirectoryPage, s.browse.DirectoryPageSize)
}

// DirectoryTotalPages is the page count for the directory as filtered by state.
func (s *CatalogService) DirectoryTotalPages(state query.State) int {
	return s.Directory(state).TotalPages
}

// TrailerLinks builds the YouTube search links for a movie. Films released
// before the configured year get " old" appended to sharpen the search.
func (s *CatalogService) TrailerLinks(m domain.Movie) TrailerLinks {
	lang := s.browse.TrailerLanguage
	if lang == "" {
		lang = config.DefaultTrailerLanguage
	}
	oldYear := s.browse.OldFilmYear
	if oldYear <= 0 {
		oldYear = config.DefaultOldFilmYear
	}

	suffix := ""
	if m.HasYear() && m.Year < oldYear {
		suffix = " old"
	}

	return TrailerLinks{
		Trailer:   youtubeSearch(fmt.Sprintf("%s %s trailer%s", m.Title, lang, suffix)),
		FullMovie: youtubeSearch(fmt.Sprintf("%s %s full movie%s", m.Title, lang, suffix)),
	}
}

func youtubeSearch(q string) string {
	return youtubeSearchURL + "?" + url.Values{"search_query": {q}}.Encode()
}
