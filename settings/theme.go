// Package settings persists user preferences next to the portfolio.
package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/etnz/finpulse/store"
	"github.com/rs/zerolog"
)

// ThemeKey is the store key of the theme preference.
const ThemeKey = "theme"

// Mode is a display theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == Light || m == Dark }

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Palette holds the colors of a theme, as hex strings.
type Palette struct {
	Background    string
	Surface       string
	Card          string
	Text          string
	TextSecondary string
	Primary       string
	PrimaryLight  string
	Success       string
	Warning       string
	Error         string
	Border        string
	Shadow        string
}

var palettes = map[Mode]Palette{
	Light: {
		Background:    "#ffffff",
		Surface:       "#f8fafc",
		Card:          "#ffffff",
		Text:          "#1e293b",
		TextSecondary: "#64748b",
		Primary:       "#6366f1",
		PrimaryLight:  "#a5b4fc",
		Success:       "#10b981",
		Warning:       "#f59e0b",
		Error:         "#ef4444",
		Border:        "#e2e8f0",
		Shadow:        "#00000010",
	},
	Dark: {
		Background:    "#0f172a",
		Surface:       "#1e293b",
		Card:          "#334155",
		Text:          "#f1f5f9",
		TextSecondary: "#94a3b8",
		Primary:       "#818cf8",
		PrimaryLight:  "#c7d2fe",
		Success:       "#34d399",
		Warning:       "#fbbf24",
		Error:         "#f87171",
		Border:        "#475569",
		Shadow:        "#00000030",
	},
}

// Theme is the persisted theme preference. It starts as Light.
type Theme struct {
	store store.Store
	log   zerolog.Logger

	mu   sync.Mutex
	mode Mode
}

// NewTheme creates a Theme backed by 'st'.
func NewTheme(st store.Store, log zerolog.Logger) *Theme {
	return &Theme{
		store: st,
		log:   log.With().Str("component", "settings").Logger(),
		mode:  Light,
	}
}

// Load reads the saved mode. A missing or unknown value keeps the current
// mode, only a read failure is an error.
func (t *Theme) Load(ctx context.Context) (Mode, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	value, ok, err := t.store.Get(ctx, ThemeKey)
	if err != nil {
		return t.mode, fmt.Errorf("loading theme: %w", err)
	}
	if !ok {
		return t.mode, nil
	}
	if m := Mode(value); m.Valid() {
		t.mode = m
	} else {
		t.log.Warn().Str("value", value).Msg("ignoring unknown theme")
	}
	return t.mode, nil
}

// Toggle switches to the other mode and saves it. If saving fails the mode is
// unchanged and the error is returned.
func (t *Theme) Toggle(ctx context.Context) (Mode, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.mode.Opposite()
	if err := t.store.Set(ctx, ThemeKey, string(next)); err != nil {
		t.log.Error().Err(err).Str("mode", string(next)).Msg("saving theme")
		return t.mode, fmt.Errorf("saving theme: %w", err)
	}
	t.mode = next
	t.log.Debug().Str("mode", string(t.mode)).Msg("theme saved")
	return t.mode, nil
}

// Mode returns the current mode.
func (t *Theme) Mode() Mode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

// Palette returns the colors of the current mode.
func (t *Theme) Palette() Palette {
	return PaletteOf(t.Mode())
}

// PaletteOf returns the colors of a mode. Unknown modes get the light palette.
func PaletteOf(m Mode) Palette {
	if p, ok := palettes[m]; ok {
		return p
	}
	return palettes[Light]
}
