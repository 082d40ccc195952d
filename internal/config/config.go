// Package config loads and saves growthsim preferences.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/theirongolddev/growthsim/internal/currency"
	"github.com/theirongolddev/growthsim/internal/projection"
)

// Environment variables that override the config file.
const (
	EnvTheme    = "GROWTHSIM_THEME"
	EnvCurrency = "GROWTHSIM_CURRENCY"
	EnvLogLevel = "GROWTHSIM_LOG_LEVEL"
	EnvDir      = "GROWTHSIM_CONFIG_DIR"
)

// Config holds all growthsim configuration.
type Config struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Display    DisplayConfig    `toml:"display"`
	Defaults   DefaultsConfig   `toml:"defaults"`
	Log        LogConfig        `toml:"log"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DisplayConfig holds presentation preferences.
type DisplayConfig struct {
	Currency string `toml:"currency"`
}

// DefaultsConfig holds the starting values of the calculator.
// Unset fields fall back to the built-in field defaults.
type DefaultsConfig struct {
	Principal    *float64 `toml:"principal,omitempty"`
	Rate         *float64 `toml:"rate,omitempty"`
	Years        *float64 `toml:"years,omitempty"`
	Contribution *float64 `toml:"contribution,omitempty"`
}

// LogConfig controls the zerolog setup.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "slate-dark",
		},
		Display: DisplayConfig{
			Currency: currency.Default.Code,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "growthsim")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "growthsim")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// CacheDir returns the directory for logs and other generated files.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "growthsim")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "growthsim")
}

// LoadEnv reads a .env file from the working directory if one exists.
func LoadEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading .env: %w", err)
	}
	return nil
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	cfg, err := LoadFile()
	return applyEnv(cfg), err
}

// LoadFile reads the config file without environment overrides. Use it for
// read-modify-write so overrides never get persisted.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
		}
	}
	return cfg, nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Display.Currency = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// StartingInputs returns the calculator's initial values.
func (c Config) StartingInputs() projection.Inputs {
	in := projection.DefaultInputs()
	set := func(key string, v *float64) {
		if v != nil {
			in = in.With(key, *v)
		}
	}
	set(projection.KeyPrincipal, c.Defaults.Principal)
	set(projection.KeyRate, c.Defaults.Rate)
	set(projection.KeyYears, c.Defaults.Years)
	set(projection.KeyContribution, c.Defaults.Contribution)
	return in
}

// Currency returns the configured display currency.
func (c Config) Currency() currency.Currency {
	return currency.ByCode(c.Display.Currency)
}
