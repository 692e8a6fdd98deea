package favorites_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/cinedex/internal/favorites"
	"github.com/narwhalmedia/cinedex/internal/favorites/repository"
	"github.com/narwhalmedia/cinedex/pkg/events"
	"github.com/narwhalmedia/cinedex/pkg/interfaces"
	"github.com/narwhalmedia/cinedex/pkg/logger"
)

func TestPreferences(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	bus := events.NewInMemoryEventBus(logger.NewNoop())

	var changes []string
	require.NoError(t, bus.Subscribe(events.ThemeChanged, &events.HandlerFunc{Type: "t", Fn: func(_ context.Context, e interfaces.Event) error {
		changes = append(changes, e.(*events.BaseEvent).Data["theme"].(string))
		return nil
	}}))

	prefs := favorites.NewPreferences(repo, "imdbTheme", bus, logger.NewNoop())

	theme, err := prefs.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, favorites.ThemeDark, theme)

	theme, err = prefs.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, favorites.ThemeLight, theme)

	raw, err := repo.Get(ctx, "imdbTheme")
	require.NoError(t, err)
	assert.Equal(t, "light", string(raw))

	theme, err = prefs.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, favorites.ThemeDark, theme)
	assert.Equal(t, []string{"light", "dark"}, changes)
}

func TestPreferences_UnknownStoredValue(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	require.NoError(t, repo.Put(ctx, "imdbTheme", []byte("sepia")))

	theme, err := favorites.NewPreferences(repo, "imdbTheme", nil, logger.NewNoop()).Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, favorites.ThemeDark, theme)
}
