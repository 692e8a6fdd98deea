package favorites

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/narwhalmedia/cinedex/internal/catalog/domain"
	"github.com/narwhalmedia/cinedex/internal/catalog/query"
	"github.com/narwhalmedia/cinedex/pkg/errors"
	"github.com/narwhalmedia/cinedex/pkg/events"
	"github.com/narwhalmedia/cinedex/pkg/interfaces"
)

// Store is the persisted, ordered set of favorite movies. The whole
// collection is rewritten under one key after every change.
type Store struct {
	repo   Repository
	key    string
	bus    interfaces.EventBus
	logger interfaces.Logger
	now    func() time.Time

	mu      sync.RWMutex
	entries []Entry
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the savedAt clock.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithEventBus publishes favorite.added / favorite.removed to bus.
func WithEventBus(bus interfaces.EventBus) Option {
	return func(s *Store) { s.bus = bus }
}

// NewStore creates a store over repo. Call Load before use.
func NewStore(repo Repository, key string, logger interfaces.Logger, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		key:    key,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted collection. A missing key yields an empty set; so
// does a value that is not a JSON array. Individual entries that do not decode
// are logged and skipped.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.repo.Get(ctx, s.key)
	if err != nil {
		if errors.IsNotFound(err) {
			s.replace(nil)
			return nil
		}
		return errors.Internal("failed to read favorites", err)
	}

	entries, skipped, err := decodeEntries(data)
	if err != nil {
		s.logger.Warn("Discarding unreadable favorites",
			interfaces.String("key", s.key),
			interfaces.Error(err))
		entries = nil
	}
	if skipped > 0 {
		s.logger.Warn("Skipped unreadable favorite entries",
			interfaces.String("key", s.key),
			interfaces.Int("skipped", skipped))
	}
	s.replace(entries)
	return nil
}

func (s *Store) replace(entries []Entry) {
	if entries == nil {
		entries = []Entry{}
	}
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
}

// Toggle removes the movie if it is a favorite, otherwise appends a snapshot.
// It reports whether the movie is a favorite afterwards. When persisting
// fails the in-memory set is left unchanged.
func (s *Store) Toggle(ctx context.Context, m domain.Movie) (bool, error) {
	s.mu.Lock()
	prev := s.entries
	idx := slices.IndexFunc(prev, func(e Entry) bool { return e.ID == m.ID })

	var next []Entry
	added := idx < 0
	if added {
		next = append(slices.Clone(prev), Entry{Movie: snapshot(m), SavedAt: s.now().UTC()})
	} else {
		next = slices.Delete(slices.Clone(prev), idx, idx+1)
	}

	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		return !added, err
	}
	s.entries = next
	s.mu.Unlock()

	eventType := events.FavoriteRemoved
	if added {
		eventType = events.FavoriteAdded
	}
	s.publish(ctx, eventType, m)

	s.logger.Info("Favorite toggled",
		interfaces.String("movie_id", m.ID),
		interfaces.Bool("added", added))
	return added, nil
}

func (s *Store) persist(ctx context.Context, entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return errors.Internal("failed to encode favorites", err)
	}
	if err := s.repo.Put(ctx, s.key, data); err != nil {
		return errors.Internal("failed to save favorites", err)
	}
	return nil
}

func (s *Store) publish(ctx context.Context, eventType string, m domain.Movie) {
	if s.bus == nil {
		return
	}
	event := events.NewAggregateEvent(eventType, m.ID, map[string]any{"title": m.Title})
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish favorite event",
			interfaces.String("event_type", eventType),
			interfaces.Error(err))
	}
}

// snapshot detaches the entry from slices shared with the live catalog.
func snapshot(m domain.Movie) domain.Movie {
	m.Genre = slices.Clone(m.Genre)
	m.Cast = slices.Clone(m.Cast)
	return m
}

// Contains reports whether the movie id is a favorite.
func (s *Store) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.ContainsFunc(s.entries, func(e Entry) bool { return e.ID == id })
}

// List returns favorites in insertion order, filtered by a title-only search.
func (s *Store) List(search string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spec := query.TitleSearchSpec{Term: search}
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if spec.IsSatisfiedBy(e.Movie) {
			out = append(out, e)
		}
	}
	return out
}

// Len is the number of favorites.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
