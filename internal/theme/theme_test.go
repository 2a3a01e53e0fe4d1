package theme

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/textstat/internal/model"
	"github.com/verte-zerg/textstat/internal/store"
)

type memPrefs struct {
	values  map[string]string
	getErr  error
	setErr  error
	setKeys []string
}

func newMemPrefs() *memPrefs {
	return &memPrefs{values: map[string]string{}}
}

func (m *memPrefs) GetPreference(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memPrefs) SetPreference(_ context.Context, key, value string) error {
	m.setKeys = append(m.setKeys, key)
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadSaved(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		getErr error
		want   model.Theme
	}{
		{name: "missing", want: model.ThemeLight},
		{name: "dark", stored: ptr("dark"), want: model.ThemeDark},
		{name: "light", stored: ptr("light"), want: model.ThemeLight},
		{name: "unknown", stored: ptr("solarized"), want: model.ThemeLight},
		{name: "read failure", getErr: errors.New("boom"), want: model.ThemeLight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := newMemPrefs()
			prefs.getErr = tt.getErr
			if tt.stored != nil {
				prefs.values[PreferenceKey] = *tt.stored
			}
			c := NewController(prefs, quietLogger())
			if got := c.LoadSaved(context.Background()); got != tt.want {
				t.Fatalf("LoadSaved() = %q, want %q", got, tt.want)
			}
			if len(prefs.setKeys) != 0 {
				t.Fatalf("LoadSaved must not write preferences")
			}
		})
	}
}

func TestToggleSwapsAssetsAndPersists(t *testing.T) {
	prefs := newMemPrefs()
	c := NewController(prefs, quietLogger())
	ctx := context.Background()

	startAssets := c.Assets()
	if startAssets.Logo != "./assets/images/logo-light-theme.svg" || startAssets.Icon != "./assets/images/icon-moon.svg" {
		t.Fatalf("unexpected light assets: %+v", startAssets)
	}

	if got := c.Toggle(ctx); got != model.ThemeDark {
		t.Fatalf("expected dark after toggle, got %q", got)
	}
	if prefs.values[PreferenceKey] != "dark" {
		t.Fatalf("expected dark persisted, got %q", prefs.values[PreferenceKey])
	}
	dark := c.Assets()
	if dark.Logo != "./assets/images/logo-dark-theme.svg" || dark.Icon != "./assets/images/icon-sun.svg" {
		t.Fatalf("unexpected dark assets: %+v", dark)
	}
	if c.Palette() != PaletteFor(model.ThemeDark) {
		t.Fatalf("expected dark palette")
	}

	if got := c.Toggle(ctx); got != model.ThemeLight {
		t.Fatalf("expected light after second toggle, got %q", got)
	}
	if prefs.values[PreferenceKey] != "light" {
		t.Fatalf("expected light persisted, got %q", prefs.values[PreferenceKey])
	}
	if c.Assets() != startAssets {
		t.Fatalf("expected original assets after two toggles")
	}
}

func TestToggleStillSwitchesWhenPersistFails(t *testing.T) {
	prefs := newMemPrefs()
	prefs.setErr = errors.New("read-only")
	c := NewController(prefs, quietLogger())
	if got := c.Toggle(context.Background()); got != model.ThemeDark {
		t.Fatalf("expected dark despite persist failure, got %q", got)
	}
}

func TestControllerWithSQLiteStore(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "textstat.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	ctx := context.Background()

	first := NewController(st, quietLogger())
	first.LoadSaved(ctx)
	first.Toggle(ctx)

	second := NewController(st, quietLogger())
	if got := second.LoadSaved(ctx); got != model.ThemeDark {
		t.Fatalf("expected dark restored from store, got %q", got)
	}
}

func ptr(s string) *string {
	return &s
}
