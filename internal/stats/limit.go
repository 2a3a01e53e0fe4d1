package stats

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/textstat/internal/model"
)

const (
	// DefaultLimit applies when the limit field is blank or not a positive number.
	DefaultLimit = 300
	// MaxChars is the absolute input cap.
	MaxChars = 5000
)

// ParseLimit coerces a user-entered limit. Leading digits are used, anything
// else falls back to DefaultLimit, and the result never exceeds MaxChars.
func ParseLimit(input string) int {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "+")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return DefaultLimit
	}
	n := 0
	for _, c := range s[:end] {
		n = n*10 + int(c-'0')
		if n > MaxChars {
			return MaxChars
		}
	}
	if n <= 0 {
		return DefaultLimit
	}
	return n
}

// EffectiveCap returns the enforced maximum input length.
func EffectiveCap(cfg model.AnalyzerConfig) int {
	if !cfg.LimitEnabled {
		return MaxChars
	}
	return ParseLimit(cfg.LimitInput)
}

// CheckLimit reports whether text has reached the configured limit.
func CheckLimit(text string, cfg model.AnalyzerConfig) model.LimitStatus {
	status := model.LimitStatus{
		Enabled: cfg.LimitEnabled,
		Cap:     EffectiveCap(cfg),
		Length:  utf8.RuneCountInString(text),
	}
	if !cfg.LimitEnabled {
		return status
	}
	if status.Length >= status.Cap {
		status.Reached = true
		status.Message = LimitMessage(status.Cap)
	}
	return status
}

// LimitMessage is the warning shown once the limit is reached.
func LimitMessage(limit int) string {
	return fmt.Sprintf("Limit reached! Your text exceeds %d characters.", limit)
}
