package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/logging"
	"github.com/theirongolddev/growthsim/internal/tui"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func logFilePath() string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return filepath.Join(config.CacheDir(), "growthsim.log")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cur, err := currentCurrency(cmd)
	if err != nil {
		return err
	}
	in := currentInputs(cmd)

	// Bubble Tea owns the terminal, so logs go to a file.
	closer, err := logging.SetupFile(logFilePath(), logLevel())
	if err != nil {
		logging.Discard()
	} else {
		defer func() { _ = closer.Close() }()
	}

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	log.Info().Str("currency", cur.Code).Str("theme", theme.Active.Name).Msg("starting dashboard")

	app := tui.NewApp(in, cur)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
