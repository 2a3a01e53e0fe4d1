package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/textstat/internal/model"
)

// NoLettersMessage is shown instead of the histogram when text has no A-Z letters.
const NoLettersMessage = "No characters found. Start typing to see letter density."

// Supported export formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// RenderOptions controls plain-text report rendering.
type RenderOptions struct {
	Title      string
	Width      int
	ForceColor bool
}

// RenderReport prints a report as plain text.
func RenderReport(w io.Writer, report model.Report, opts RenderOptions) error {
	useColor := shouldUseColor(w, opts.ForceColor)
	var b strings.Builder
	if opts.Title != "" {
		fmt.Fprintln(&b, opts.Title)
		fmt.Fprintln(&b, strings.Repeat("─", displayWidth(opts.Title)))
	}

	charLabel := "Total characters"
	if report.Config.ExcludeSpaces {
		charLabel = "Total characters (no spaces)"
	}
	counters := formatTable(nil, [][]string{
		{charLabel, PadCount(report.Chars)},
		{"Word count", PadCount(report.Words)},
		{"Sentence count", PadCount(report.Sentences)},
	}, map[int]bool{1: true})
	for _, line := range counters {
		fmt.Fprintln(&b, line)
	}
	fmt.Fprintf(&b, "Approx. reading time: %s\n", report.ReadingTime)
	if report.Limit.Reached {
		fmt.Fprintln(&b, colorize(report.Limit.Message, colorWarning, useColor))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Letter Density")
	density := report.Density
	if density.Total == 0 {
		fmt.Fprintln(&b, NoLettersMessage)
	} else {
		barWidth := BarWidthFor(opts.Width)
		rows := make([][]string, 0, len(density.Visible))
		for _, lc := range density.Visible {
			rows = append(rows, []string{
				lc.Letter,
				colorize(Bar(lc.Percent, barWidth), colorBar, useColor),
				DensityCaption(lc),
			})
		}
		for _, line := range formatTable(nil, rows, map[int]bool{2: true}) {
			fmt.Fprintln(&b, line)
		}
		if density.HasMore && !density.Expanded {
			fmt.Fprintf(&b, "(+%d more letters, use --all-letters to %s)\n", len(density.Letters)-len(density.Visible), ExpandLabel(false))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ExportReport writes a report in a machine-readable format.
func ExportReport(w io.Writer, report model.Report, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (expected %s, %s or %s)", format, FormatText, FormatJSON, FormatYAML)
	}
}
