package tui

import (
	"os"
	"strings"
	"testing"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/tui/theme"
)

func TestSaveSetupConfigKeepsEnvOut(t *testing.T) {
	prev := theme.Active
	defer func() { theme.Active = prev }()

	t.Setenv(config.EnvDir, t.TempDir())
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvTheme, "terminal")
	t.Setenv(config.EnvCurrency, "")

	a := newTestApp()
	a.setupVals = &setupValues{currency: "EUR", theme: "slate-light"}
	if err := a.saveSetupConfig(); err != nil {
		t.Fatalf("saveSetupConfig: %v", err)
	}
	if a.currency.Code != "EUR" {
		t.Errorf("currency = %s, want EUR", a.currency.Code)
	}

	raw, err := os.ReadFile(config.Path())
	if err != nil {
		t.Fatal(err)
	}
	got := string(raw)
	if strings.Contains(got, "debug") || strings.Contains(got, "terminal") {
		t.Errorf("environment overrides written to config:\n%s", got)
	}
	if !strings.Contains(got, `currency = "EUR"`) || !strings.Contains(got, `theme = "slate-light"`) {
		t.Errorf("setup answers missing from config:\n%s", got)
	}
}
