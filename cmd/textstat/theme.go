package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/textstat/internal/config"
	"github.com/verte-zerg/textstat/internal/model"
	"github.com/verte-zerg/textstat/internal/store"
	"github.com/verte-zerg/textstat/internal/theme"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [show|toggle|light|dark]",
		Short:     "Show or change the saved theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"show", "toggle", "light", "dark"},
		RunE:      runThemeCmd,
	}
}

func runThemeCmd(cmd *cobra.Command, args []string) error {
	action := "show"
	if len(args) == 1 {
		action = args[0]
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

	ctx := cmd.Context()
	ctl := theme.NewController(st, logger)
	ctl.LoadSaved(ctx)

	switch action {
	case "toggle":
		ctl.Toggle(ctx)
	case "light", "dark":
		t, _ := model.ParseTheme(action)
		ctl.Set(ctx, t)
	}

	prefs, err := st.ListPreferences(ctx)
	if err != nil {
		return fmt.Errorf("failed to list preferences: %w", err)
	}
	var saved *model.Preference
	for i := range prefs {
		if prefs[i].Key == theme.PreferenceKey {
			saved = &prefs[i]
		}
	}
	return printTheme(cmd.OutOrStdout(), ctl, saved)
}

func printTheme(w io.Writer, ctl *theme.Controller, saved *model.Preference) error {
	assets := ctl.Assets()
	var b strings.Builder
	fmt.Fprintf(&b, "theme: %s %s\n", ctl.Current(), assets.Glyph)
	fmt.Fprintf(&b, "logo:  %s\n", assets.Logo)
	fmt.Fprintf(&b, "icon:  %s\n", assets.Icon)
	if saved != nil {
		fmt.Fprintf(&b, "saved: %s\n", humanize.Time(saved.UpdatedAt))
	} else {
		fmt.Fprintln(&b, "saved: never (default)")
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
