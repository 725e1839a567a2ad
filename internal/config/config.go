package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/coursekit/internal/outline"
)

// ThemeFileEnv names a YAML file whose theme section overrides the config
const ThemeFileEnv = "COURSEKIT_THEME_FILE"

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings     `yaml:"key_mappings"`
	ColorScheme ColorScheme     `yaml:"theme"`
	Outline     OutlineSettings `yaml:"outline"`
}

// OutlineSettings tunes the outline panel and scrolling. Zero values take
// the defaults.
type OutlineSettings struct {
	ActiveMargin int   `yaml:"active_margin"`
	SmoothScroll *bool `yaml:"smooth_scroll"`
	ScrollStep   int   `yaml:"scroll_step"`
}

// DefaultOutlineSettings returns the default outline settings
func DefaultOutlineSettings() OutlineSettings {
	d := outline.DefaultConfig()
	smooth := d.SmoothScroll
	return OutlineSettings{
		ActiveMargin: d.ActiveMargin,
		SmoothScroll: &smooth,
		ScrollStep:   d.ScrollStep,
	}
}

// OutlineConfig converts the settings for the outline navigator
func (o OutlineSettings) OutlineConfig() outline.Config {
	o.applyDefaults()
	return outline.Config{
		ActiveMargin: o.ActiveMargin,
		SmoothScroll: *o.SmoothScroll,
		ScrollStep:   o.ScrollStep,
	}
}

func (o *OutlineSettings) applyDefaults() {
	defaults := DefaultOutlineSettings()
	if o.ActiveMargin <= 0 {
		o.ActiveMargin = defaults.ActiveMargin
	}
	if o.SmoothScroll == nil {
		o.SmoothScroll = defaults.SmoothScroll
	}
	if o.ScrollStep <= 0 {
		o.ScrollStep = defaults.ScrollStep
	}
}

// Default returns a config with every field at its default
func Default() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
		Outline:     DefaultOutlineSettings(),
	}
}

// loadThemeFile loads and merges theme from the COURSEKIT_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	return LoadFile(configPath)
}

// LoadFile loads config from path, falling back to defaults when it is missing
func LoadFile(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Load theme from COURSEKIT_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "coursekit", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "coursekit", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	c.Outline.applyDefaults()
}
