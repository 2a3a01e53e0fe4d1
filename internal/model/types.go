// Package model defines shared data structures.
package model

import (
	"strings"
	"time"
)

// Theme is the persisted visual theme preference.
type Theme string

const (
	// ThemeLight is the default theme.
	ThemeLight Theme = "light"
	// ThemeDark is the alternate theme.
	ThemeDark Theme = "dark"
)

// ParseTheme maps a stored or user-entered value to a Theme.
func ParseTheme(value string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}

// Other returns the theme a toggle switches to.
func (t Theme) Other() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// AnalyzerConfig holds the settings that, together with the text, determine a report.
type AnalyzerConfig struct {
	ExcludeSpaces  bool
	LimitEnabled   bool
	LimitInput     string
	ShowAllLetters bool
}

// Report is the full set of derived statistics for one update cycle.
type Report struct {
	Chars          int           `json:"chars" yaml:"chars"`
	Words          int           `json:"words" yaml:"words"`
	Sentences      int           `json:"sentences" yaml:"sentences"`
	ReadingMinutes int           `json:"reading_minutes" yaml:"reading_minutes"`
	ReadingTime    string        `json:"reading_time" yaml:"reading_time"`
	Density        Density       `json:"density" yaml:"density"`
	Limit          LimitStatus   `json:"limit" yaml:"limit"`
	Config         ReportOptions `json:"config" yaml:"config"`
}

// ReportOptions echoes the configuration a report was computed with.
type ReportOptions struct {
	ExcludeSpaces bool `json:"exclude_spaces" yaml:"exclude_spaces"`
	ShowAll       bool `json:"show_all_letters" yaml:"show_all_letters"`
}

// Density is the A-Z letter frequency distribution.
type Density struct {
	Total    int           `json:"total" yaml:"total"`
	Letters  []LetterCount `json:"letters" yaml:"letters"`
	Visible  []LetterCount `json:"-" yaml:"-"`
	HasMore  bool          `json:"-" yaml:"-"`
	Expanded bool          `json:"-" yaml:"-"`
}

// LetterCount is one histogram bucket.
type LetterCount struct {
	Letter  string  `json:"letter" yaml:"letter"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// LimitStatus describes the character limit state.
type LimitStatus struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Cap     int    `json:"cap" yaml:"cap"`
	Length  int    `json:"length" yaml:"length"`
	Reached bool   `json:"reached" yaml:"reached"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Preference is a persisted key/value pair.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
