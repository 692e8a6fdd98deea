package view

import (
	"context"
	"sync"

	"github.com/narwhalmedia/cinedex/internal/catalog/service"
	"github.com/narwhalmedia/cinedex/internal/catalog/source"
	"github.com/narwhalmedia/cinedex/internal/favorites"
	"github.com/narwhalmedia/cinedex/pkg/config"
	"github.com/narwhalmedia/cinedex/pkg/interfaces"
)

// Browser loads the catalog once and opens sessions on pages of it.
type Browser struct {
	src      source.Source
	browse   config.BrowseConfig
	favs     *favorites.Store
	prefs    *favorites.Preferences
	renderer Renderer
	logger   interfaces.Logger

	mu      sync.Mutex
	catalog *service.CatalogService
}

func NewBrowser(
	src source.Source,
	browse config.BrowseConfig,
	favs *favorites.Store,
	prefs *favorites.Preferences,
	renderer Renderer,
	logger interfaces.Logger,
) *Browser {
	return &Browser{
		src:      src,
		browse:   browse,
		favs:     favs,
		prefs:    prefs,
		renderer: renderer,
		logger:   logger,
	}
}

// Open renders the page and returns a session for further interaction. When
// the catalog cannot be loaded an ErrorView is rendered and the load error is
// returned; a later Open retries the load.
func (b *Browser) Open(ctx context.Context, page Page) (*Session, error) {
	catalog, err := b.load(ctx)
	if err != nil {
		ev := &ErrorView{Frame: newFrame(page, b.theme(ctx)), Message: LoadErrorMessage}
		if rerr := b.renderer.Render(ctx, ev); rerr != nil {
			b.logger.Error("Failed to render error view", interfaces.Error(rerr))
		}
		return nil, err
	}

	s := newSession(ctx, page, b, catalog)
	if err := s.Render(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (b *Browser) load(ctx context.Context) (*service.CatalogService, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.catalog != nil {
		return b.catalog, nil
	}

	movies, err := source.Load(ctx, b.src, b.logger)
	if err != nil {
		return nil, err
	}
	if err := b.favs.Load(ctx); err != nil {
		b.logger.Warn("Starting with no favorites", interfaces.Error(err))
	}

	b.catalog = service.NewCatalogService(movies, b.browse, b.logger)
	return b.catalog, nil
}

func (b *Browser) theme(ctx context.Context) favorites.Theme {
	if b.prefs == nil {
		return favorites.ThemeDark
	}
	theme, err := b.prefs.Theme(ctx)
	if err != nil {
		b.logger.Warn("Falling back to default theme", interfaces.Error(err))
	}
	return theme
}
