// Package config loads and saves the application configuration from
// ~/.stride/config.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Strava  StravaConfig  `json:"strava"`
	Display DisplayConfig `json:"display"`
	Records RecordsConfig `json:"records"`
}

// StravaConfig holds API credentials
type StravaConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	// Units is "metric" or "imperial"
	Units string `json:"units"`
}

// RecordsConfig holds preferences for record extraction and ranking
type RecordsConfig struct {
	// RankingLimit caps the ranked records shown per distance;
	// 0 means unlimited.
	RankingLimit int `json:"ranking_limit"`
	// DefaultWindow is "all", "year", or a month count like "6m"
	DefaultWindow string `json:"default_window"`
	// ValidationPolicy is "reject" (a malformed sample invalidates
	// the activity) or "drop" (malformed samples are skipped)
	ValidationPolicy string `json:"validation_policy"`
	// CustomDistances are extra target distances to extract records
	// for, alongside the built-in ones.
	CustomDistances []CustomDistance `json:"custom_distances,omitempty"`
}

// CustomDistance is a user-defined target distance
type CustomDistance struct {
	Label  string  `json:"label"`
	Meters float64 `json:"meters"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Units: "metric",
		},
		Records: RecordsConfig{
			RankingLimit:     10,
			DefaultWindow:    "all",
			ValidationPolicy: "reject",
		},
	}
}

// Load reads the configuration from ~/.stride/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills in defaults for missing values
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Display.Units == "" {
		c.Display.Units = defaults.Display.Units
	}
	if c.Records.RankingLimit < 0 {
		c.Records.RankingLimit = defaults.Records.RankingLimit
	}
	if c.Records.DefaultWindow == "" {
		c.Records.DefaultWindow = defaults.Records.DefaultWindow
	}
	if c.Records.ValidationPolicy == "" {
		c.Records.ValidationPolicy = defaults.Records.ValidationPolicy
	}
}

// Save writes the configuration to ~/.stride/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil // config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Strava = StravaConfig{
		ClientID:     "YOUR_CLIENT_ID",
		ClientSecret: "YOUR_CLIENT_SECRET",
	}

	return Save(&example)
}

// Validate checks if the config has required fields
func (c *Config) Validate() error {
	if c.Strava.ClientID == "" || c.Strava.ClientID == "YOUR_CLIENT_ID" {
		return errors.New("strava.client_id is required - get it from https://www.strava.com/settings/api")
	}
	if c.Strava.ClientSecret == "" || c.Strava.ClientSecret == "YOUR_CLIENT_SECRET" {
		return errors.New("strava.client_secret is required - get it from https://www.strava.com/settings/api")
	}

	if c.Display.Units != "" && c.Display.Units != "metric" && c.Display.Units != "imperial" {
		return fmt.Errorf("display.units must be \"metric\" or \"imperial\", got %q", c.Display.Units)
	}

	if p := c.Records.ValidationPolicy; p != "" && p != "reject" && p != "drop" {
		return fmt.Errorf("records.validation_policy must be \"reject\" or \"drop\", got %q", p)
	}

	if c.Records.RankingLimit < 0 {
		return fmt.Errorf("records.ranking_limit must be >= 0, got %d", c.Records.RankingLimit)
	}

	for _, d := range c.Records.CustomDistances {
		if d.Label == "" {
			return errors.New("records.custom_distances entries need a label")
		}
		if d.Meters <= 0 {
			return fmt.Errorf("records.custom_distances %q needs meters > 0, got %g", d.Label, d.Meters)
		}
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".stride", "config.json"), nil
}

// Dir returns the path to the config directory
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".stride"), nil
}
