package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/growthsim/internal/projection"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(EnvDir, t.TempDir())
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvCurrency, "")
	t.Setenv(EnvLogLevel, "")
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	isolate(t)

	assert.False(t, Exists())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, projection.DefaultInputs(), cfg.StartingInputs())
	assert.Equal(t, "USD", cfg.Currency().Code)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolate(t)

	years := 30.0
	cfg := DefaultConfig()
	cfg.Appearance.Theme = "slate-light"
	cfg.Display.Currency = "EUR"
	cfg.Defaults.Years = &years

	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "slate-light", got.Appearance.Theme)
	assert.Equal(t, "EUR", got.Currency().Code)

	in := got.StartingInputs()
	assert.Equal(t, 30.0, in.Years)
	assert.Equal(t, 15000.0, in.Principal)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	require.NoError(t, Save(DefaultConfig()))

	t.Setenv(EnvTheme, "flexoki-dark")
	t.Setenv(EnvCurrency, "JPY")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
	assert.Equal(t, "JPY", cfg.Display.Currency)
}

func TestLoadFile_EnvNotPersisted(t *testing.T) {
	isolate(t)
	require.NoError(t, Save(DefaultConfig()))

	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvCurrency, "JPY")

	cfg, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "USD", cfg.Display.Currency)

	cfg.Appearance.Theme = "flexoki-light"
	require.NoError(t, Save(cfg))

	raw, err := os.ReadFile(Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `theme = "flexoki-light"`)
	assert.Contains(t, string(raw), `level = "info"`)
	assert.NotContains(t, string(raw), "debug")
	assert.NotContains(t, string(raw), "JPY")

	merged, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", merged.Log.Level)
	assert.Equal(t, "flexoki-light", merged.Appearance.Theme)
}

func TestLoad_ParseError(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(Dir(), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[appearance\ntheme = "), 0o600))

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestStartingInputs_ClampsNegative(t *testing.T) {
	neg := -10.0
	cfg := DefaultConfig()
	cfg.Defaults.Principal = &neg
	assert.Equal(t, 0.0, cfg.StartingInputs().Principal)
}
