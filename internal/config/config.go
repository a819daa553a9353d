package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Top     int    `mapstructure:"top"`
	Verbose bool   `mapstructure:"verbose"`

	// Default values for the analyze command
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// DefaultsConfig holds default filter values
type DefaultsConfig struct {
	ErrorsOnly  bool   `mapstructure:"errors_only"`
	Search      string `mapstructure:"search"`
	ShowEntries bool   `mapstructure:"show_entries"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "text",
		Top:     5,
		Verbose: false,
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.loglyzer.yaml or ./.loglyzer.yml
// 2. ~/.loglyzer.yaml or ~/.loglyzer.yml
// 3. $XDG_CONFIG_HOME/loglyzer/config.yaml (or ~/.config/loglyzer/config.yaml)
// 4. /etc/loglyzer/config.yaml
func Load() (*Config, error) {
	configFile := findConfigFile()
	if configFile == "" {
		cfg := Default()
		applyEnvOverrides(cfg)
		return cfg, nil
	}
	cfg, err := LoadFromFile(configFile)
	if err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".loglyzer.yaml", ".loglyzer.yml", "loglyzer.yaml", "loglyzer.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	// Search locations in order of precedence (highest first)
	var searchPaths []string

	cwd, err := os.Getwd()
	if err == nil {
		searchPaths = append(searchPaths, cwd)
	}
	if homeErr == nil {
		searchPaths = append(searchPaths, home)
	}
	if configDirErr == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "loglyzer"))
	}
	searchPaths = append(searchPaths, "/etc/loglyzer")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOGLYZER_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOGLYZER_TOP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Top = n
		}
	}
	if v := os.Getenv("LOGLYZER_VERBOSE"); v == "1" || v == "true" {
		cfg.Verbose = true
	}
}
