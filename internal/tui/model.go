// Package tui provides the Bubble Tea text statistics interface.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/textstat/internal/debounce"
	"github.com/verte-zerg/textstat/internal/model"
	"github.com/verte-zerg/textstat/internal/stats"
	"github.com/verte-zerg/textstat/internal/theme"
)

const (
	defaultWidth   = 80
	maxEditorWidth = 100
	editorHeight   = 8
	captionWidth   = 14
	tabSpaces      = "    "
)

type focusArea int

const (
	focusText focusArea = iota
	focusLimit
)

// analyzeMsg completes a debounced update. Only the latest generation counts.
type analyzeMsg struct {
	gen uint64
}

// Options configures a new Model.
type Options struct {
	Config      model.AnalyzerConfig
	Debounce    time.Duration
	InitialText string
}

// Model implements the Bubble Tea text statistics UI.
type Model struct {
	cfg       model.AnalyzerConfig
	theme     *theme.Controller
	logger    *slog.Logger
	debouncer *debounce.Debouncer

	textarea   textarea.Model
	limitInput textinput.Model
	help       help.Model
	keys       KeyMap
	styles     styles

	focus  focusArea
	report model.Report

	// pendingGen is the generation of the scheduled update, 0 when none is pending.
	pendingGen uint64

	width  int
	height int
}

// NewModel constructs the TUI model and runs the startup update.
func NewModel(opts Options, themeCtl *theme.Controller, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	if themeCtl == nil {
		themeCtl = theme.NewController(nil, logger)
	}
	m := &Model{
		cfg:       opts.Config,
		theme:     themeCtl,
		logger:    logger,
		debouncer: debounce.New(opts.Debounce),
		help:      help.New(),
		keys:      DefaultKeyMap(),
		width:     defaultWidth,
	}

	ta := textarea.New()
	ta.Placeholder = "Start typing here… (or paste your text)"
	ta.ShowLineNumbers = false
	// The cap is enforced in runes by limitInsert, not by the textarea's cell count.
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetValue(opts.InitialText)
	ta.Focus()
	m.textarea = ta

	li := textinput.New()
	li.Prompt = ""
	li.Placeholder = strconv.Itoa(stats.DefaultLimit)
	li.CharLimit = 6
	li.Width = 6
	li.SetValue(opts.Config.LimitInput)
	m.limitInput = li
	if m.cfg.LimitEnabled && strings.TrimSpace(li.Value()) == "" {
		m.limitInput.SetValue(strconv.Itoa(stats.DefaultLimit))
	}

	m.applyTheme()
	m.resize()
	m.update()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case analyzeMsg:
		if m.debouncer.Current(msg.gen) {
			m.pendingGen = 0
			m.update()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.debouncer.Stop()
		m.pendingGen = 0
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.ToggleTheme):
		current := m.theme.Toggle(context.Background())
		m.applyTheme()
		m.logger.Debug("theme toggled", "theme", current)
		return m, nil
	case key.Matches(msg, m.keys.ExcludeSpaces):
		m.cfg.ExcludeSpaces = !m.cfg.ExcludeSpaces
		m.update()
		return m, nil
	case key.Matches(msg, m.keys.ToggleLimit):
		m.setLimitEnabled(!m.cfg.LimitEnabled)
		m.update()
		return m, nil
	case key.Matches(msg, m.keys.Expand):
		if !m.report.Density.HasMore {
			return m, nil
		}
		m.cfg.ShowAllLetters = !m.cfg.ShowAllLetters
		m.update()
		return m, nil
	case key.Matches(msg, m.keys.SwitchFocus):
		if m.focus == focusText && m.cfg.LimitEnabled {
			return m, m.focusLimitField()
		}
		return m, m.focusTextArea()
	}

	if m.focus == focusLimit {
		return m.updateLimitInput(msg)
	}

	before := m.textarea.Value()
	msg, ok := m.limitInsert(msg, before)
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if m.textarea.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.scheduleUpdate())
}

// limitInsert trims inserted runes so the text never exceeds the input cap,
// counted in runes like the limit check. It reports false when the key would
// only insert into a full text area.
func (m *Model) limitInsert(msg tea.KeyMsg, value string) (tea.KeyMsg, bool) {
	remaining := m.report.Limit.Cap - utf8.RuneCountInString(value)
	switch {
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		if remaining <= 0 {
			return msg, false
		}
		// the textarea expands tabs to spaces on insert
		msg.Runes = []rune(strings.ReplaceAll(string(msg.Runes), "\t", tabSpaces))
		if len(msg.Runes) > remaining {
			msg.Runes = msg.Runes[:remaining]
		}
	case key.Matches(msg, m.textarea.KeyMap.InsertNewline):
		if remaining <= 0 {
			return msg, false
		}
	}
	return msg, true
}

func (m *Model) updateLimitInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.limitInput.Value()
	var cmd tea.Cmd
	m.limitInput, cmd = m.limitInput.Update(msg)
	value := m.limitInput.Value()
	if digits := keepDigits(value); digits != value {
		m.limitInput.SetValue(digits)
		value = digits
	}
	if value != before {
		m.update()
	}
	return m, cmd
}

// scheduleUpdate supersedes any pending update and schedules a new one after
// the debounce delay.
func (m *Model) scheduleUpdate() tea.Cmd {
	gen := m.debouncer.Next()
	m.pendingGen = gen
	delay := m.debouncer.Delay()
	if delay <= 0 {
		m.pendingGen = 0
		m.update()
		return nil
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return analyzeMsg{gen: gen}
	})
}

// update recomputes every derived view from the current text and settings.
func (m *Model) update() {
	m.cfg.LimitInput = m.limitInput.Value()
	m.report = stats.Analyze(m.textarea.Value(), m.cfg)
}

func (m *Model) setLimitEnabled(enabled bool) {
	m.cfg.LimitEnabled = enabled
	if enabled {
		if strings.TrimSpace(m.limitInput.Value()) == "" {
			m.limitInput.SetValue(strconv.Itoa(stats.DefaultLimit))
		}
		return
	}
	if m.focus == focusLimit {
		m.focusTextArea()
	}
}

func (m *Model) focusLimitField() tea.Cmd {
	m.focus = focusLimit
	m.textarea.Blur()
	return m.limitInput.Focus()
}

func (m *Model) focusTextArea() tea.Cmd {
	m.focus = focusText
	m.limitInput.Blur()
	return m.textarea.Focus()
}

func (m *Model) applyTheme() {
	palette := m.theme.Palette()
	m.styles = newStyles(palette)
	m.textarea.FocusedStyle, m.textarea.BlurredStyle = textareaStyles(palette)
}

func (m *Model) contentWidth() int {
	width := m.width - 4
	if width > maxEditorWidth {
		width = maxEditorWidth
	}
	if width < 20 {
		width = 20
	}
	return width
}

func (m *Model) resize() {
	// border and padding of the editor frame
	m.textarea.SetWidth(m.contentWidth() - 4)
	m.textarea.SetHeight(editorHeight)
	m.help.Width = m.contentWidth()
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderEditor(),
	}
	if m.report.Limit.Reached {
		sections = append(sections, m.styles.warning.Render(m.report.Limit.Message))
	}
	sections = append(sections,
		m.renderOptions(),
		m.renderCards(),
		m.renderDensity(),
		m.renderFooter(),
		m.help.View(m.keys),
	)
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, body)
}

func (m *Model) renderHeader() string {
	assets := m.theme.Assets()
	title := m.styles.title.Render("Character Counter")
	toggle := m.styles.muted.Render(assets.Glyph)
	gap := m.contentWidth() - lipgloss.Width(title) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + toggle
}

func (m *Model) renderEditor() string {
	frame := m.styles.editor
	if m.report.Limit.Reached {
		frame = m.styles.editorWarn
	}
	return frame.Render(m.textarea.View())
}

func (m *Model) renderOptions() string {
	exclude := checkbox(m.cfg.ExcludeSpaces) + " Exclude Spaces"
	limit := checkbox(m.cfg.LimitEnabled) + " Set Character Limit"
	if m.cfg.LimitEnabled {
		limit += " " + m.limitInput.View()
	}
	left := m.styles.text.Render(exclude + "   " + limit)
	right := m.styles.muted.Render("Approx. reading time: " + m.report.ReadingTime)
	gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderCards() string {
	charLabel := "Total Characters"
	if m.cfg.ExcludeSpaces {
		charLabel = "Total Characters (no spaces)"
	}
	cardWidth := (m.contentWidth() - 6) / 3
	card := m.styles.card.Width(cardWidth)
	render := func(value int, label string) string {
		return card.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.cardValue.Render(stats.PadCount(value)),
			m.styles.cardLabel.Render(label),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		render(m.report.Chars, charLabel),
		render(m.report.Words, "Word Count"),
		render(m.report.Sentences, "Sentence Count"),
	)
}

func (m *Model) renderDensity() string {
	lines := []string{"", m.styles.title.Render("Letter Density")}
	density := m.report.Density
	if density.Total == 0 {
		lines = append(lines, m.styles.muted.Render(stats.NoLettersMessage))
		return strings.Join(lines, "\n")
	}
	barWidth := m.contentWidth() - 2 - captionWidth - 2
	if barWidth < 1 {
		barWidth = 1
	}
	for _, lc := range density.Visible {
		filled := stats.BarFill(lc.Percent, barWidth)
		bar := m.styles.barFill.Render(strings.Repeat("█", filled)) +
			m.styles.barTrack.Render(strings.Repeat("█", barWidth-filled))
		caption := runewidth.FillLeft(stats.DensityCaption(lc), captionWidth)
		lines = append(lines, fmt.Sprintf("%s %s %s", m.styles.text.Render(lc.Letter), bar, m.styles.text.Render(caption)))
	}
	if density.HasMore {
		arrow := "▾"
		if density.Expanded {
			arrow = "▴"
		}
		lines = append(lines, m.styles.link.Render(stats.ExpandLabel(density.Expanded)+" "+arrow))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	segments := []string{
		fmt.Sprintf("Theme %s", m.theme.Current()),
		fmt.Sprintf("Limit %d", m.report.Limit.Cap),
		fmt.Sprintf("Length %d", m.report.Limit.Length),
	}
	if m.focus == focusLimit {
		segments = append(segments, "Editing limit")
	}
	if m.pendingGen != 0 {
		segments = append(segments, "Updating…")
	}
	return "\n" + m.styles.footer.Render(strings.Join(segments, "  "))
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func keepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
