// Package main provides the CLI entrypoint for textstat.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/textstat/internal/config"
	"github.com/verte-zerg/textstat/internal/debounce"
	"github.com/verte-zerg/textstat/internal/model"
	"github.com/verte-zerg/textstat/internal/stats"
	"github.com/verte-zerg/textstat/internal/store"
	"github.com/verte-zerg/textstat/internal/theme"
	"github.com/verte-zerg/textstat/internal/tui"
)

var (
	verbose bool
	logger  = slog.Default()
)

// analyzerFlags holds the flags shared by the TUI and analyze commands.
type analyzerFlags struct {
	excludeSpaces bool
	limitEnabled  bool
	limit         int
	debounceMs    int
	allLetters    bool
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &analyzerFlags{}
	rootCmd := &cobra.Command{
		Use:           "textstat [file]",
		Short:         "Character counter and text statistics",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.MaximumNArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger = setupLogger(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditorCmd(cmd, args, flags)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.bind(rootCmd)

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func (f *analyzerFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.excludeSpaces, "exclude-spaces", false, "do not count whitespace characters")
	cmd.Flags().BoolVar(&f.limitEnabled, "limit-enabled", false, "enable the character limit")
	cmd.Flags().IntVar(&f.limit, "limit", stats.DefaultLimit, fmt.Sprintf("character limit (max %d)", stats.MaxChars))
	cmd.Flags().IntVar(&f.debounceMs, "debounce-ms", int(debounce.DefaultDelay/time.Millisecond), "delay before statistics refresh while typing (0 = immediate)")
	cmd.Flags().BoolVar(&f.allLetters, "all-letters", false, "show every letter in the density histogram")
}

// resolve merges the config file into flags the user did not set and returns
// the analyzer settings plus the debounce delay.
func (f *analyzerFlags) resolve(cmd *cobra.Command) (model.AnalyzerConfig, time.Duration, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.AnalyzerConfig{}, 0, fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "exclude-spaces", &f.excludeSpaces, fileCfg.Analyzer.ExcludeSpaces)
	applyBoolConfig(cmd, "limit-enabled", &f.limitEnabled, fileCfg.Analyzer.LimitEnabled)
	applyIntConfig(cmd, "limit", &f.limit, fileCfg.Analyzer.Limit)
	applyIntConfig(cmd, "debounce-ms", &f.debounceMs, fileCfg.Analyzer.DebounceMs)
	applyBoolConfig(cmd, "all-letters", &f.allLetters, fileCfg.Analyzer.ShowAllLetters)

	if f.debounceMs < 0 {
		return model.AnalyzerConfig{}, 0, fmt.Errorf("--debounce-ms must be >= 0")
	}

	cfg := model.AnalyzerConfig{
		ExcludeSpaces:  f.excludeSpaces,
		LimitEnabled:   f.limitEnabled,
		ShowAllLetters: f.allLetters,
	}
	if cmd.Flags().Changed("limit") || fileCfg.Analyzer.Limit != nil {
		cfg.LimitInput = strconv.Itoa(f.limit)
	}
	logger.Debug("analyzer settings resolved",
		"exclude_spaces", cfg.ExcludeSpaces,
		"limit_enabled", cfg.LimitEnabled,
		"limit", stats.EffectiveCap(cfg),
		"debounce_ms", f.debounceMs,
	)
	return cfg, time.Duration(f.debounceMs) * time.Millisecond, nil
}

func runEditorCmd(cmd *cobra.Command, args []string, flags *analyzerFlags) error {
	cfg, delay, err := flags.resolve(cmd)
	if err != nil {
		return err
	}

	var initial string
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		initial = string(data)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	themeCtl := theme.NewController(st, logger)
	themeCtl.LoadSaved(cmd.Context())

	m := tui.NewModel(tui.Options{
		Config:      cfg,
		Debounce:    delay,
		InitialText: initial,
	}, themeCtl, logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeDefaultConfig creates the config file from the template unless it exists.
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# textstat configuration
# Uncomment a value to enable it. CLI flags override config values.

[analyzer]
# exclude-spaces = false     # Do not count whitespace characters
# limit-enabled = false      # Enable the character limit
# limit = %d                # Character limit (max %d)
# debounce-ms = %d          # Delay before statistics refresh while typing
# show-all-letters = false   # Show every letter in the density histogram
`,
		stats.DefaultLimit,
		stats.MaxChars,
		int(debounce.DefaultDelay/time.Millisecond),
	)
}

func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	return l
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
