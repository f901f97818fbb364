package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SourceConfig holds the configuration for a single notification
// source integration.
type SourceConfig struct {
	// ID is the unique identifier for this source instance.
	ID string `mapstructure:"id" yaml:"id"`

	// Type identifies the source kind (e.g., "feed", "email").
	Type string `mapstructure:"type" yaml:"type"`

	// Name is the user-defined label for this source instance.
	Name string `mapstructure:"name" yaml:"name"`

	// BaseURL is the root URL or host of the source service.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Enabled controls whether this source is actively polled.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// PollIntervalSec is how often (in seconds) to fetch updates.
	PollIntervalSec int `mapstructure:"poll_interval_sec" yaml:"poll_interval_sec"`

	// Config holds source-specific key-value settings
	// (e.g., mailbox name, feed path, username).
	Config map[string]string `mapstructure:"config" yaml:"config"`
}

// SearchConfig holds settings for the search widget.
type SearchConfig struct {
	// EngineURL is the search engine URL template; %s is replaced with
	// the URL-escaped query.
	EngineURL string `mapstructure:"engine_url" yaml:"engine_url"`
}

// WeatherConfig holds settings for the weather widget.
type WeatherConfig struct {
	// Endpoint is the JSON endpoint queried for current conditions.
	// Empty disables fetching; the widget shows a placeholder.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// Location is the place name passed to the endpoint and shown in
	// the widget header.
	Location string `mapstructure:"location" yaml:"location"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// QuoteRotationSec is how often the quote widget rotates.
	QuoteRotationSec int `mapstructure:"quote_rotation_sec" yaml:"quote_rotation_sec"`

	// AlertsEnabled controls whether terminal notifications are raised
	// for incoming notification records.
	AlertsEnabled bool `mapstructure:"alerts_enabled" yaml:"alerts_enabled"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	// DataDir is where the state database and log file live.
	// Defaults to ~/.local/share/dashy.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	Sources []SourceConfig `mapstructure:"sources" yaml:"sources"`
	Search  SearchConfig   `mapstructure:"search" yaml:"search"`
	Weather WeatherConfig  `mapstructure:"weather" yaml:"weather"`
	Display DisplayConfig  `mapstructure:"display" yaml:"display"`
}

// DefaultConfigPath returns the default path for the configuration
// file, located at ~/.config/dashy/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "dashy", "config.yaml")
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "dashy")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		DataDir: DefaultDataDir(),
		Sources: []SourceConfig{},
		Search: SearchConfig{
			EngineURL: "https://duckduckgo.com/?q=%s",
		},
		Weather: WeatherConfig{
			Location: "",
		},
		Display: DisplayConfig{
			QuoteRotationSec: 30,
			AlertsEnabled:    true,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using
// Viper. If the file does not exist, it returns a default
// configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("search.engine_url", "https://duckduckgo.com/?q=%s")
	v.SetDefault("display.quote_rotation_sec", 30)
	v.SetDefault("display.alerts_enabled", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Apply defaults for each source entry.
	for i := range cfg.Sources {
		if cfg.Sources[i].PollIntervalSec == 0 {
			cfg.Sources[i].PollIntervalSec = 120
		}
		if !cfg.Sources[i].Enabled {
			// Viper unmarshals missing bools as false; treat unset as true.
			key := fmt.Sprintf("sources.%d.enabled", i)
			if !v.IsSet(key) {
				cfg.Sources[i].Enabled = true
			}
		}
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("data_dir", cfg.DataDir)
	v.Set("sources", cfg.Sources)
	v.Set("search", cfg.Search)
	v.Set("weather", cfg.Weather)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
