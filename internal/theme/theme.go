// Package theme implements the light/dark theme controller.
package theme

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/textstat/internal/model"
)

// PreferenceKey is the key the theme is persisted under.
const PreferenceKey = "theme"

// PreferenceStore persists string preferences.
type PreferenceStore interface {
	GetPreference(ctx context.Context, key string) (string, bool, error)
	SetPreference(ctx context.Context, key, value string) error
}

// Assets are the image resources swapped per theme.
type Assets struct {
	Logo  string
	Icon  string
	Glyph string
}

// Palette holds the terminal colors of a theme.
type Palette struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	Bar        lipgloss.Color
	BarTrack   lipgloss.Color
	Warning    lipgloss.Color
}

var assetsByTheme = map[model.Theme]Assets{
	model.ThemeLight: {
		Logo:  "./assets/images/logo-light-theme.svg",
		Icon:  "./assets/images/icon-moon.svg",
		Glyph: "☾",
	},
	model.ThemeDark: {
		Logo:  "./assets/images/logo-dark-theme.svg",
		Icon:  "./assets/images/icon-sun.svg",
		Glyph: "☀",
	},
}

var palettes = map[model.Theme]Palette{
	model.ThemeLight: {
		Foreground: lipgloss.Color("#12131A"),
		Muted:      lipgloss.Color("#404254"),
		Accent:     lipgloss.Color("#C27CF8"),
		Border:     lipgloss.Color("#E4E4EF"),
		Card:       lipgloss.Color("#D3A0FA"),
		Bar:        lipgloss.Color("#D3A0FA"),
		BarTrack:   lipgloss.Color("#F2F2F7"),
		Warning:    lipgloss.Color("#FE8159"),
	},
	model.ThemeDark: {
		Foreground: lipgloss.Color("#F2F2F7"),
		Muted:      lipgloss.Color("#E4E4EF"),
		Accent:     lipgloss.Color("#D3A0FA"),
		Border:     lipgloss.Color("#404254"),
		Card:       lipgloss.Color("#C27CF8"),
		Bar:        lipgloss.Color("#D3A0FA"),
		BarTrack:   lipgloss.Color("#21222C"),
		Warning:    lipgloss.Color("#DA3701"),
	},
}

// AssetsFor returns the image resources of a theme.
func AssetsFor(t model.Theme) Assets {
	if a, ok := assetsByTheme[t]; ok {
		return a
	}
	return assetsByTheme[model.ThemeLight]
}

// PaletteFor returns the colors of a theme.
func PaletteFor(t model.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[model.ThemeLight]
}

// Controller owns the applied theme and its persisted preference.
type Controller struct {
	prefs   PreferenceStore
	logger  *slog.Logger
	current model.Theme
}

// NewController creates a controller showing the default light theme.
func NewController(prefs PreferenceStore, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		prefs:   prefs,
		logger:  logger,
		current: model.ThemeLight,
	}
}

// LoadSaved applies the persisted theme. A missing, unknown or unreadable
// preference leaves the light theme in place.
func (c *Controller) LoadSaved(ctx context.Context) model.Theme {
	if c.prefs == nil {
		return c.current
	}
	value, ok, err := c.prefs.GetPreference(ctx, PreferenceKey)
	if err != nil {
		c.logger.Warn("failed to read theme preference", "error", err)
		return c.current
	}
	if !ok {
		return c.current
	}
	if t, valid := model.ParseTheme(value); valid && t == model.ThemeDark {
		c.current = model.ThemeDark
	} else if !valid {
		c.logger.Debug("ignoring unknown theme preference", "value", value)
	}
	return c.current
}

// Toggle switches to the other theme and persists the choice. The visual
// switch happens even when persisting fails.
func (c *Controller) Toggle(ctx context.Context) model.Theme {
	return c.Set(ctx, c.current.Other())
}

// Set applies t and persists it.
func (c *Controller) Set(ctx context.Context, t model.Theme) model.Theme {
	if t != model.ThemeDark {
		t = model.ThemeLight
	}
	c.current = t
	if c.prefs == nil {
		return c.current
	}
	if err := c.prefs.SetPreference(ctx, PreferenceKey, string(t)); err != nil {
		c.logger.Warn("failed to persist theme preference", "theme", t, "error", err)
	}
	return c.current
}

// Current returns the applied theme.
func (c *Controller) Current() model.Theme {
	return c.current
}

// Assets returns the image resources of the applied theme.
func (c *Controller) Assets() Assets {
	return AssetsFor(c.current)
}

// Palette returns the colors of the applied theme.
func (c *Controller) Palette() Palette {
	return PaletteFor(c.current)
}
