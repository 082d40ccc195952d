package tui

import (
	"fmt"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/currency"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
)

// setupValues holds the answers of the first-run form.
type setupValues struct {
	currency string
	theme    string
}

// NewSetupForm builds the currency and theme form used on first run and by
// the setup command. Answers are written into currencyCode and themeName.
func NewSetupForm(currencyCode, themeName *string) *huh.Form {
	curOpts := make([]huh.Option[string], len(currency.All))
	for i, c := range currency.All {
		curOpts[i] = huh.NewOption(c.Label(), c.Code)
	}

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, th := range theme.All {
		themeOpts[i] = huh.NewOption(th.Name, th.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to GrowthSim").
				Description("Pick how amounts are shown and a color theme.\nRun `growthsim setup` anytime to change them."),
			huh.NewSelect[string]().
				Title("Currency").
				Description("Only the symbol changes; amounts are not converted.").
				Options(curOpts...).
				Value(currencyCode),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(themeName),
		),
	).WithShowHelp(true)
}

func newSetupForm(vals *setupValues) *huh.Form {
	return NewSetupForm(&vals.currency, &vals.theme)
}

// saveSetupConfig applies the form answers and writes them to the config file.
func (a *App) saveSetupConfig() error {
	cfg, err := config.LoadFile()
	if err != nil {
		log.Warn().Err(err).Msg("config unreadable, starting from defaults")
		cfg = config.DefaultConfig()
	}

	if c, ok := currency.Lookup(a.setupVals.currency); ok {
		cfg.Display.Currency = c.Code
		a.currency = c
	}
	if a.setupVals.theme != "" {
		cfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(cfg.Appearance.Theme)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	log.Info().Str("path", config.Path()).Msg("saved first-run settings")
	return nil
}
