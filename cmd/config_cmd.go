package cmd

import (
	"fmt"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/projection"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:    %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency: %s\n", cfg.Currency().Label())
	fmt.Println()

	fmt.Println("  [Defaults]")
	start := cfg.StartingInputs()
	for _, f := range projection.Fields {
		fmt.Printf("    %-22s %v\n", f.Label+":", start.Value(f.Key))
	}
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Printf("    File:  %s\n", logFilePath())
	fmt.Println()

	fmt.Printf("  Environment overrides: %s, %s, %s\n", config.EnvTheme, config.EnvCurrency, config.EnvLogLevel)
	fmt.Println("  Run `growthsim setup` to reconfigure.")
	return nil
}
