package cmd

import (
	"fmt"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/currency"
	"github.com/theirongolddev/growthsim/internal/tui"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose display currency and theme",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	c, err := config.LoadFile()
	if err != nil {
		log.Warn().Err(err).Msg("config unreadable, starting from defaults")
		c = config.DefaultConfig()
	}

	code := currency.ByCode(c.Display.Currency).Code
	themeName := c.Appearance.Theme

	if err := tui.NewSetupForm(&code, &themeName).Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	c.Display.Currency = code
	c.Appearance.Theme = themeName
	if err := config.Save(c); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `growthsim setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
