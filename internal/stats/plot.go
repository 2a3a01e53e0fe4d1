package stats

import (
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	barFull             = '█'
	barEmpty            = '░'
	minBarWidth         = 10
	maxBarWidth         = 60
	terminalWidthBackup = 80
	colorReset          = "\x1b[0m"
	colorBar            = "\x1b[36m"
	colorWarning        = "\x1b[38;2;254;129;89m"
)

// Bar renders a proportional bar of the given width for a percentage.
func Bar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := BarFill(percent, width)
	return strings.Repeat(string(barFull), filled) + strings.Repeat(string(barEmpty), width-filled)
}

// BarFill returns how many of width cells a percentage fills.
func BarFill(percent float64, width int) int {
	if width <= 0 || math.IsNaN(percent) || percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return width
	}
	return int(math.Round(percent / 100 * float64(width)))
}

// BarWidthFor computes a bar width that leaves room for the label and caption
// columns within the total available width.
func BarWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		totalWidth = terminalWidthBackup
	}
	// letter column, caption column ("9999 (100.00%)") and separators
	width := totalWidth - 1 - 15 - 2
	if width < minBarWidth {
		width = minBarWidth
	}
	if width > maxBarWidth {
		width = maxBarWidth
	}
	return width
}

// TerminalWidth returns the stdout terminal width or a fallback.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func colorize(s, code string, useColor bool) string {
	if !useColor || s == "" {
		return s
	}
	return code + s + colorReset
}
