package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/textstat/internal/theme"
)

type styles struct {
	title      lipgloss.Style
	muted      lipgloss.Style
	text       lipgloss.Style
	warning    lipgloss.Style
	editor     lipgloss.Style
	editorWarn lipgloss.Style
	card       lipgloss.Style
	cardValue  lipgloss.Style
	cardLabel  lipgloss.Style
	barFill    lipgloss.Style
	barTrack   lipgloss.Style
	footer     lipgloss.Style
	link       lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	editor := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(p.Border).
		Padding(0, 1)
	return styles{
		title:      lipgloss.NewStyle().Foreground(p.Foreground).Bold(true),
		muted:      lipgloss.NewStyle().Foreground(p.Muted),
		text:       lipgloss.NewStyle().Foreground(p.Foreground),
		warning:    lipgloss.NewStyle().Foreground(p.Warning),
		editor:     editor,
		editorWarn: editor.BorderForeground(p.Warning),
		card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.Card),
		cardValue: lipgloss.NewStyle().Foreground(p.Foreground).Bold(true),
		cardLabel: lipgloss.NewStyle().Foreground(p.Muted),
		barFill:   lipgloss.NewStyle().Foreground(p.Bar),
		barTrack:  lipgloss.NewStyle().Foreground(p.BarTrack),
		footer:    lipgloss.NewStyle().Foreground(p.Muted),
		link:      lipgloss.NewStyle().Foreground(p.Accent).Underline(true),
	}
}

func textareaStyles(p theme.Palette) (focused, blurred textarea.Style) {
	focused, blurred = textarea.DefaultStyles()
	focused.Text = lipgloss.NewStyle().Foreground(p.Foreground)
	focused.CursorLine = lipgloss.NewStyle().Foreground(p.Foreground)
	focused.Placeholder = lipgloss.NewStyle().Foreground(p.Muted)
	blurred.Text = lipgloss.NewStyle().Foreground(p.Muted)
	blurred.Placeholder = lipgloss.NewStyle().Foreground(p.Muted)
	return focused, blurred
}
