package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/textstat/internal/model"
	"github.com/verte-zerg/textstat/internal/stats"
	"github.com/verte-zerg/textstat/internal/watch"
)

var (
	analyzeFormat string
	analyzeFollow bool
	analyzeColor  bool
)

func newAnalyzeCmd() *cobra.Command {
	flags := &analyzerFlags{}
	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Print statistics for a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyzeCmd(cmd, args, flags)
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVarP(&analyzeFormat, "format", "f", stats.FormatText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&analyzeFollow, "follow", false, "re-analyze whenever the file changes")
	cmd.Flags().BoolVar(&analyzeColor, "color", false, "force colored bars")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string, flags *analyzerFlags) error {
	format := strings.ToLower(strings.TrimSpace(analyzeFormat))
	switch format {
	case stats.FormatText, stats.FormatJSON, stats.FormatYAML:
	default:
		return fmt.Errorf("invalid --format %q (expected text, json or yaml)", analyzeFormat)
	}

	cfg, delay, err := flags.resolve(cmd)
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 && args[0] != "-" {
		path = args[0]
	}
	if analyzeFollow && path == "" {
		return fmt.Errorf("--follow requires a file argument")
	}

	data, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := printAnalysis(out, path, data, cfg, format); err != nil {
		return err
	}
	if !analyzeFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return followFile(ctx, out, path, cfg, format, delay)
}

// followFile re-prints the analysis on every settled change until ctx ends.
func followFile(ctx context.Context, out io.Writer, path string, cfg model.AnalyzerConfig, format string, delay time.Duration) error {
	var mu sync.Mutex
	watcher, err := watch.NewFileWatcher(path, delay, func(text string) {
		mu.Lock()
		defer mu.Unlock()
		if err := printAnalysis(out, path, text, cfg, format); err != nil {
			logger.Warn("failed to print analysis", "path", path, "error", err)
		}
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Start(); err != nil {
		if cerr := watcher.Stop(); cerr != nil {
			// Best-effort close on start failure.
			_ = cerr
		}
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	logErrln("Watching", path, "(Ctrl+C to stop)")

	<-ctx.Done()
	if err := watcher.Stop(); err != nil {
		return fmt.Errorf("failed to stop file watcher: %w", err)
	}
	return nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func printAnalysis(w io.Writer, path, text string, cfg model.AnalyzerConfig, format string) error {
	report := stats.Analyze(text, cfg)
	if format != stats.FormatText {
		return stats.ExportReport(w, report, format)
	}
	return stats.RenderReport(w, report, stats.RenderOptions{
		Title:      reportTitle(path, len(text)),
		Width:      stats.TerminalWidth(),
		ForceColor: analyzeColor,
	})
}

func reportTitle(path string, size int) string {
	name := "stdin"
	if path != "" {
		name = filepath.Base(path)
	}
	return fmt.Sprintf("%s (%s)", name, humanize.Bytes(uint64(size)))
}
