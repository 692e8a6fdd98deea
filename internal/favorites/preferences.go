package favorites

import (
	"context"
	"strings"

	"github.com/narwhalmedia/cinedex/pkg/errors"
	"github.com/narwhalmedia/cinedex/pkg/events"
	"github.com/narwhalmedia/cinedex/pkg/interfaces"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps anything but "light" to dark.
func ParseTheme(s string) Theme {
	if Theme(strings.TrimSpace(s)) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Preferences persists the display theme as a bare string under its own key.
type Preferences struct {
	repo   Repository
	key    string
	bus    interfaces.EventBus
	logger interfaces.Logger
}

func NewPreferences(repo Repository, key string, bus interfaces.EventBus, logger interfaces.Logger) *Preferences {
	return &Preferences{repo: repo, key: key, bus: bus, logger: logger}
}

// Theme returns the stored theme, dark when unset.
func (p *Preferences) Theme(ctx context.Context) (Theme, error) {
	data, err := p.repo.Get(ctx, p.key)
	if err != nil {
		if errors.IsNotFound(err) {
			return ThemeDark, nil
		}
		return ThemeDark, errors.Internal("failed to read theme", err)
	}
	return ParseTheme(string(data)), nil
}

func (p *Preferences) SetTheme(ctx context.Context, t Theme) error {
	if err := p.repo.Put(ctx, p.key, []byte(t)); err != nil {
		return errors.Internal("failed to save theme", err)
	}

	if p.bus != nil {
		event := events.NewAggregateEvent(events.ThemeChanged, p.key, map[string]any{"theme": string(t)})
		if err := p.bus.Publish(ctx, event); err != nil {
			p.logger.Warn("Failed to publish theme event", interfaces.Error(err))
		}
	}
	return nil
}

// ToggleTheme flips and persists the theme, returning the new value.
func (p *Preferences) ToggleTheme(ctx context.Context) (Theme, error) {
	current, err := p.Theme(ctx)
	if err != nil {
		return current, err
	}
	next := current.Toggle()
	if err := p.SetTheme(ctx, next); err != nil {
		return current, err
	}
	return next, nil
}
