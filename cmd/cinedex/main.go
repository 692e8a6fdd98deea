package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/narwhalmedia/cinedex/internal/catalog/query"
	"github.com/narwhalmedia/cinedex/internal/catalog/source"
	"github.com/narwhalmedia/cinedex/internal/favorites"
	"github.com/narwhalmedia/cinedex/internal/favorites/repository"
	"github.com/narwhalmedia/cinedex/internal/view"
	"github.com/narwhalmedia/cinedex/pkg/config"
	"github.com/narwhalmedia/cinedex/pkg/database"
	"github.com/narwhalmedia/cinedex/pkg/errors"
	"github.com/narwhalmedia/cinedex/pkg/events"
	"github.com/narwhalmedia/cinedex/pkg/interfaces"
)

type options struct {
	location      string
	search        string
	sort          string
	toggleDir     bool
	tab           string
	filter        string
	pages         int
	favorite      string
	toggleTheme   bool
	migrateStatus bool
}

func main() {
	var opts options
	flag.StringVar(&opts.location, "location", "index.html", "Page to open, e.g. results.html?type=year&value=2010")
	flag.StringVar(&opts.search, "search", "", "Search term")
	flag.StringVar(&opts.sort, "sort", "", "Sort key: year, rating, title, runtime, released, popularity")
	flag.BoolVar(&opts.toggleDir, "toggle-direction", false, "Flip the sort direction")
	flag.StringVar(&opts.tab, "tab", "", "Directory tab: cast or director")
	flag.StringVar(&opts.filter, "filter", "", "Directory name filter")
	flag.IntVar(&opts.pages, "more", 0, "Load more this many times (directory pages forward)")
	flag.StringVar(&opts.favorite, "toggle-favorite", "", "Movie ID to add to or remove from favorites")
	flag.BoolVar(&opts.toggleTheme, "toggle-theme", false, "Switch between dark and light theme")
	flag.BoolVar(&opts.migrateStatus, "migrate-status", false, "Show pending storage migrations and exit")
	flag.Parse()

	os.Exit(run(opts))
}

func run(opts options) int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}

	zl, err := cfg.Logger.ToLoggerConfig().Build()
	if err != nil {
		log.Printf("Failed to create logger: %v", err)
		return 1
	}
	defer zl.Sync()
	logger := zl.WithFields(
		interfaces.String("service", cfg.Service.Name),
		interfaces.String("version", config.GetServiceVersion(&cfg.Service)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.migrateStatus {
		if err := migrationStatus(os.Stdout, cfg.Storage, logger); err != nil {
			logger.Error("Failed to read migration status", interfaces.Error(err))
			return 1
		}
		return 0
	}

	repo, closeRepo, err := openRepository(cfg.Storage, logger)
	if err != nil {
		logger.Error("Failed to open storage", interfaces.Error(err))
		return 1
	}
	defer closeRepo()

	bus := events.NewInMemoryEventBus(logger)
	defer bus.Stop()
	if cfg.Events.NATSURL != "" {
		nc, drain, err := events.Connect(cfg.Events.NATSURL, cfg.Service.Name, logger)
		if err != nil {
			// favorites still work without the feed
			logger.Warn("Event publishing disabled", interfaces.Error(err))
		} else {
			defer drain()
			bridge := events.NewNATSBridge(nc, cfg.Events.SubjectPrefix, logger)
			if err := bridge.Attach(bus, events.FavoriteAdded, events.FavoriteRemoved, events.ThemeChanged); err != nil {
				logger.Warn("Failed to attach NATS bridge", interfaces.Error(err))
			}
		}
	}

	src, err := source.New(ctx, cfg.Source)
	if err != nil {
		logger.Error("Failed to create catalog source", interfaces.Error(err))
		return 1
	}

	favs := favorites.NewStore(repo, cfg.Storage.FavoritesKey, logger, favorites.WithEventBus(bus))
	prefs := favorites.NewPreferences(repo, cfg.Storage.ThemeKey, bus, logger)
	browser := view.NewBrowser(src, cfg.Browse, favs, prefs, view.NewJSONRenderer(os.Stdout), logger)

	sess, err := browser.Open(ctx, view.ParseLocation(opts.location))
	if err != nil {
		logger.Error("Failed to open page", interfaces.Error(err))
		return 1
	}
	defer sess.Close()

	if err := apply(ctx, sess, opts); err != nil {
		logger.Error("Action failed", interfaces.Error(err))
		if errors.IsBadRequest(err) {
			return 2
		}
		return 1
	}
	return 0
}

// apply replays the requested user actions against the session in the order
// the page would receive them.
func apply(ctx context.Context, sess *view.Session, opts options) error {
	if opts.tab != "" {
		mode := query.ParseDirectoryMode(opts.tab)
		if string(mode) != opts.tab {
			return errors.BadRequest(fmt.Sprintf("unknown directory tab %q", opts.tab))
		}
		if err := sess.SetDirectoryTab(ctx, mode); err != nil {
			return err
		}
	}
	if opts.search != "" {
		sess.SetSearch(ctx, opts.search)
	}
	if opts.filter != "" {
		sess.SetDirectoryFilter(ctx, opts.filter)
	}
	sess.Flush()

	if opts.sort != "" {
		if err := sess.SetSort(ctx, opts.sort); err != nil {
			return err
		}
	}
	if opts.toggleDir {
		if err := sess.ToggleDirection(ctx); err != nil {
			return err
		}
	}

	for i := 0; i < opts.pages; i++ {
		var err error
		if sess.Page().Kind == view.PageDirectory {
			err = sess.NextDirectoryPage(ctx)
		} else {
			err = sess.LoadMore(ctx)
		}
		if err != nil {
			return err
		}
	}

	if opts.favorite != "" {
		if _, err := sess.ToggleFavorite(ctx, opts.favorite); err != nil {
			return err
		}
	}
	if opts.toggleTheme {
		if _, err := sess.ToggleTheme(ctx); err != nil {
			return err
		}
	}
	return nil
}

func openRepository(cfg config.StorageConfig, logger interfaces.Logger) (favorites.Repository, func(), error) {
	if cfg.Driver == "memory" {
		return repository.NewMemoryRepository(), func() {}, nil
	}

	db, cleanup, err := database.Open(cfg.ToDatabaseConfig(), logger)
	if err != nil {
		return nil, nil, err
	}

	migrator := database.NewMigrator(db, logger, repository.Migrations()...)
	if err := migrator.Migrate(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return repository.NewGormRepository(db), cleanup, nil
}

// migrationStatus writes the pending storage migrations to w.
func migrationStatus(w io.Writer, cfg config.StorageConfig, logger interfaces.Logger) error {
	if cfg.Driver == "memory" {
		_, err := fmt.Fprintln(w, "No migrations for memory storage.")
		return err
	}

	db, cleanup, err := database.Open(cfg.ToDatabaseConfig(), logger)
	if err != nil {
		return err
	}
	defer cleanup()

	pending, err := database.NewMigrator(db, logger, repository.Migrations()...).GetPendingMigrations()
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		_, err := fmt.Fprintln(w, "All migrations are up to date!")
		return err
	}
	for _, m := range pending {
		if _, err := fmt.Fprintf(w, "pending | %s | %s\n", m.Version, m.Name); err != nil {
			return err
		}
	}
	return nil
}
