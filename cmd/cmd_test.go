package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/store"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvDir, filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv(config.EnvCurrency, "")
	t.Setenv(config.EnvTheme, "")
	t.Setenv(config.EnvLogLevel, "")
	return dir
}

func TestExportJSONUsesFlags(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "p.json")

	rootCmd.SetArgs([]string{"export", "--format", "json", "--out", out, "--years", "10", "-c", "EUR"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var got struct {
		Currency string `json:"currency"`
		Inputs   struct {
			Years     float64 `json:"years"`
			Principal float64 `json:"principal"`
		} `json:"inputs"`
		Schedule []json.RawMessage `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, 10.0, got.Inputs.Years)
	assert.Equal(t, 15000.0, got.Inputs.Principal)
	assert.Len(t, got.Schedule, 10)
}

func TestExportSQLite(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "runs.db")

	rootCmd.SetArgs([]string{"export", "-f", "sqlite", "-o", out})
	require.NoError(t, rootCmd.Execute())

	db, err := store.Open(out)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	n, err := db.RunCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRejectsUnknownCurrency(t *testing.T) {
	isolate(t)
	rootCmd.SetArgs([]string{"summary", "--currency", "XYZ"})
	assert.Error(t, rootCmd.Execute())
}

func TestEmptyScheduleReason(t *testing.T) {
	assert.Contains(t, emptyScheduleReason(0), "0 years")
	assert.Contains(t, emptyScheduleReason(1e19), "over 1,000 years")
}

func TestSVGOptionsFollowBackground(t *testing.T) {
	cfg = config.DefaultConfig()
	assert.Equal(t, "#1e293b", svgOptions(false, 0).Stroke)
	assert.Equal(t, "#ffffff", svgOptions(true, 200).Stroke)
	assert.Equal(t, 200, svgOptions(true, 200).Size)
}
