// Package cmd implements the growthsim CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/currency"
	"github.com/theirongolddev/growthsim/internal/logging"
	"github.com/theirongolddev/growthsim/internal/projection"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagPrincipal    float64
	flagRate         float64
	flagYears        float64
	flagContribution float64
	flagCurrency     string
	flagVerbose      bool

	// cfg is loaded once per invocation by loadSettings.
	cfg = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "growthsim",
	Short: "Compound growth projection calculator",
	Long: "Project how an investment grows with monthly compounding and monthly contributions.\n" +
		"Runs an interactive dashboard by default; subcommands print or export the projection.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64VarP(&flagPrincipal, projection.KeyPrincipal, "p", fieldDefault(projection.KeyPrincipal), "Initial principal")
	pf.Float64VarP(&flagRate, projection.KeyRate, "r", fieldDefault(projection.KeyRate), "Annual interest rate in percent")
	pf.Float64VarP(&flagYears, projection.KeyYears, "y", fieldDefault(projection.KeyYears), "Investment horizon in years")
	pf.Float64VarP(&flagContribution, projection.KeyContribution, "m", fieldDefault(projection.KeyContribution), "Monthly contribution")
	pf.StringVarP(&flagCurrency, "currency", "c", currency.Default.Code, "Display currency (USD, EUR, GBP, JPY, INR)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

func fieldDefault(key string) float64 {
	f, _ := projection.FieldByKey(key)
	return f.Default
}

// loadSettings reads .env and the config file and sets up console logging.
// The TUI replaces the console logger with a file logger.
func loadSettings(_ *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	c, err := config.Load()
	if err != nil {
		return err
	}
	cfg = c

	logging.SetupConsole(os.Stderr, logLevel())
	log.Debug().Str("config", config.Path()).Msg("settings loaded")
	return nil
}

func logLevel() zerolog.Level {
	if flagVerbose {
		return zerolog.DebugLevel
	}
	return logging.ParseLevel(cfg.Log.Level)
}

// currentInputs merges config defaults with any inputs given as flags.
func currentInputs(cmd *cobra.Command) projection.Inputs {
	in := cfg.StartingInputs()
	flags := cmd.Flags()
	for key, v := range map[string]float64{
		projection.KeyPrincipal:    flagPrincipal,
		projection.KeyRate:         flagRate,
		projection.KeyYears:        flagYears,
		projection.KeyContribution: flagContribution,
	} {
		if flags.Changed(key) {
			in = in.With(key, v)
		}
	}
	return in.Normalize()
}

// currentCurrency returns the --currency flag if given, else the configured one.
func currentCurrency(cmd *cobra.Command) (currency.Currency, error) {
	code := cfg.Display.Currency
	if cmd.Flags().Changed("currency") {
		code = flagCurrency
	}
	if err := currency.Validate(code); err != nil {
		return currency.Currency{}, fmt.Errorf("--currency: %w", err)
	}
	return currency.ByCode(code), nil
}
