package view

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/narwhalmedia/cinedex/internal/catalog/domain"
	"github.com/narwhalmedia/cinedex/internal/catalog/query"
	"github.com/narwhalmedia/cinedex/internal/catalog/service"
	"github.com/narwhalmedia/cinedex/internal/favorites"
	"github.com/narwhalmedia/cinedex/pkg/errors"
	"github.com/narwhalmedia/cinedex/pkg/interfaces"
	"github.com/narwhalmedia/cinedex/pkg/logger"
)

// Session is one open page. It owns the page's query state and turns user
// actions into state changes followed by a re-render.
type Session struct {
	page     Page
	catalog  *service.CatalogService
	favs     *favorites.Store
	prefs    *favorites.Preferences
	renderer Renderer
	search   *Debouncer
	filter   *Debouncer
	logger   interfaces.Logger

	mu    sync.Mutex
	state query.State
}

func newSession(ctx context.Context, page Page, deps *Browser, catalog *service.CatalogService) *Session {
	ctx = logger.WithSessionID(ctx, uuid.NewString())
	s := &Session{
		page:     page,
		catalog:  catalog,
		favs:     deps.favs,
		prefs:    deps.prefs,
		renderer: deps.renderer,
		search:   NewDebouncer(deps.browse.SearchDebounce),
		filter:   NewDebouncer(deps.browse.SearchDebounce),
		logger:   deps.logger.WithContext(ctx).WithFields(logger.String("page", string(page.Kind))),
		state:    catalog.DefaultState(),
	}
	s.logger.Debug("Session opened", logger.Int("movies", catalog.Count()))
	return s
}

func (s *Session) Page() Page {
	return s.page
}

// State returns a copy of the current query state.
func (s *Session) State() query.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) update(fn func(*query.State)) {
	s.mu.Lock()
	fn(&s.state)
	s.mu.Unlock()
}

// debounced applies fn and re-renders once typing in one input pauses.
func (s *Session) debounced(ctx context.Context, d *Debouncer, fn func(*query.State)) {
	ctx = context.WithoutCancel(ctx)
	d.Trigger(func() {
		s.update(fn)
		if err := s.Render(ctx); err != nil {
			s.logger.Error("Debounced render failed", logger.Error(err))
		}
	})
}

// SetSearch updates the search term and resets paging after the debounce window.
func (s *Session) SetSearch(ctx context.Context, term string) {
	s.debounced(ctx, s.search, func(st *query.State) {
		st.Search = term
		st.Page = 1
	})
}

// SetDirectoryFilter updates the directory name filter after the debounce window.
func (s *Session) SetDirectoryFilter(ctx context.Context, term string) {
	s.debounced(ctx, s.filter, func(st *query.State) {
		st.DirectoryFilter = term
		st.DirectoryPage = 1
	})
}

// Flush applies any pending debounced input immediately.
func (s *Session) Flush() {
	s.search.Flush()
	s.filter.Flush()
}

// Close drops pending input.
func (s *Session) Close() {
	s.search.Stop()
	s.filter.Stop()
}

// LoadMore reveals one more page of the grid when more results exist.
func (s *Session) LoadMore(ctx context.Context) error {
	v, err := s.View(ctx)
	if err != nil {
		return err
	}
	g := gridOf(v)
	if g == nil || !g.HasMore {
		return nil
	}
	s.update(func(st *query.State) { st.Page++ })
	return s.Render(ctx)
}

// SetSort changes the sort key; unknown keys sort by year.
func (s *Session) SetSort(ctx context.Context, key string) error {
	s.update(func(st *query.State) { st.Sort = query.ParseSortKey(key) })
	return s.Render(ctx)
}

func (s *Session) ToggleDirection(ctx context.Context) error {
	s.update(func(st *query.State) { st.Direction = st.Direction.Toggle() })
	return s.Render(ctx)
}

// SetDirectoryTab switches between cast and directors, clearing the filter.
func (s *Session) SetDirectoryTab(ctx context.Context, mode query.DirectoryMode) error {
	s.update(func(st *query.State) {
		st.Tab = mode
		st.DirectoryFilter = ""
		st.DirectoryPage = 1
	})
	return s.Render(ctx)
}

func (s *Session) PrevDirectoryPage(ctx context.Context) error {
	return s.moveDirectoryPage(ctx, -1)
}

func (s *Session) NextDirectoryPage(ctx context.Context) error {
	return s.moveDirectoryPage(ctx, 1)
}

func (s *Session) moveDirectoryPage(ctx context.Context, delta int) error {
	state := s.State()
	target := state.DirectoryPage + delta
	if target < 1 || target > s.catalog.DirectoryTotalPages(state) {
		return nil
	}
	s.update(func(st *query.State) { st.DirectoryPage = target })
	return s.Render(ctx)
}

// ToggleFavorite flips the favorite status of a catalog movie, or of a
// saved snapshot that is no longer in the catalog.
func (s *Session) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	m, err := s.catalog.Detail(id)
	if err != nil {
		saved, ok := s.savedMovie(id)
		if !ok {
			return false, err
		}
		m = saved
	}

	added, err := s.favs.Toggle(ctx, m)
	if err != nil {
		return added, err
	}
	return added, s.Render(ctx)
}

func (s *Session) savedMovie(id string) (domain.Movie, bool) {
	for _, e := range s.favs.List("") {
		if e.ID == id {
			return e.Movie, true
		}
	}
	return domain.Movie{}, false
}

// ToggleTheme flips and persists the theme, then re-renders.
func (s *Session) ToggleTheme(ctx context.Context) (favorites.Theme, error) {
	theme, err := s.prefs.ToggleTheme(ctx)
	if err != nil {
		return theme, err
	}
	return theme, s.Render(ctx)
}

// Render builds the current view and hands it to the renderer.
func (s *Session) Render(ctx context.Context) error {
	v, err := s.View(ctx)
	if err != nil {
		return err
	}
	return s.renderer.Render(ctx, v)
}

// View builds the view model for the session's page.
func (s *Session) View(ctx context.Context) (View, error) {
	state := s.State()
	frame := newFrame(s.page, s.theme(ctx))

	switch s.page.Kind {
	case PageHome:
		return s.homeView(frame, state), nil
	case PageDetails:
		return s.detailView(frame), nil
	case PageResults:
		return s.resultsView(frame, state), nil
	case PageFavorites:
		return s.favoritesView(frame, state), nil
	case PageYears:
		return s.yearsView(frame), nil
	case PageDirectory:
		return s.directoryView(frame, state), nil
	default:
		return nil, errors.BadRequest(fmt.Sprintf("unknown page kind %q", s.page.Kind))
	}
}

func (s *Session) theme(ctx context.Context) favorites.Theme {
	if s.prefs == nil {
		return favorites.ThemeDark
	}
	theme, err := s.prefs.Theme(ctx)
	if err != nil {
		s.logger.Warn("Falling back to default theme", logger.Error(err))
	}
	return theme
}

func (s *Session) homeView(frame Frame, state query.State) *HomeView {
	res := s.catalog.Home(state)
	g := Grid{
		Cards:   make([]Card, len(res.Movies)),
		Total:   res.Total,
		HasMore: res.HasMore,
	}
	for i, m := range res.Movies {
		g.Cards[i] = card(m)
	}
	if len(g.Cards) == 0 {
		g.Empty = EmptyMessage
	}
	return &HomeView{Frame: frame, State: state, Grid: g}
}

func (s *Session) detailView(frame Frame) View {
	m, err := s.catalog.Detail(s.page.ID)
	if err != nil {
		return &NotFoundView{Frame: frame, ID: s.page.ID, Message: NotFoundMessage}
	}

	v := &DetailView{
		Frame:      frame,
		Movie:      m,
		IsFavorite: s.favs.Contains(m.ID),
		Links:      s.catalog.TrailerLinks(m),
		Genres:     filterLinks(query.FilterGenre, m.Genre),
		Director:   filterLink(query.FilterDirector, m.Director),
		Cast:       filterLinks(query.FilterCast, m.Cast),
	}
	if m.HasYear() {
		year := filterLink(query.FilterYear, strconv.Itoa(m.Year))
		v.Year = &year
	}
	return v
}

func (s *Session) resultsView(frame Frame, state query.State) *ResultsView {
	movies := s.catalog.Filtered(s.page.Filter, state.Search)
	return &ResultsView{
		Frame:  frame,
		Title:  s.page.Filter.Title(),
		Filter: s.page.Filter,
		Search: state.Search,
		Grid:   grid(movies, state.Page, state.PageSize),
	}
}

func (s *Session) favoritesView(frame Frame, state query.State) *FavoritesView {
	entries := s.favs.List(state.Search)
	movies := make([]domain.Movie, len(entries))
	for i, e := range entries {
		movies[i] = e.Movie
	}
	return &FavoritesView{
		Frame:   frame,
		Search:  state.Search,
		Grid:    grid(movies, state.Page, state.PageSize),
		Entries: entries,
	}
}

func (s *Session) yearsView(frame Frame) *YearsView {
	years := s.catalog.Years()
	links := make([]Link, len(years))
	for i, y := range years {
		links[i] = filterLink(query.FilterYear, strconv.Itoa(y))
	}
	return &YearsView{Frame: frame, Years: links}
}

func (s *Session) directoryView(frame Frame, state query.State) *DirectoryView {
	page := s.catalog.Directory(state)
	filterType := query.FilterCast
	if state.Tab == query.ModeDirector {
		filterType = query.FilterDirector
	}

	links := make([]Link, len(page.Items))
	for i, c := range page.Items {
		links[i] = filterLink(filterType, c.Name)
	}
	return &DirectoryView{
		Frame:  frame,
		Tab:    query.ParseDirectoryMode(string(state.Tab)),
		Filter: state.DirectoryFilter,
		Page:   page,
		Links:  links,
	}
}

func gridOf(v View) *Grid {
	switch t := v.(type) {
	case *HomeView:
		return &t.Grid
	case *ResultsView:
		return &t.Grid
	case *FavoritesView:
		return &t.Grid
	default:
		return nil
	}
}
