package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Default values for commands
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// DefaultsConfig holds default values for various commands
type DefaultsConfig struct {
	// Paths of the two metadata files, relative to the working directory
	// unless absolute.
	Manifest string `mapstructure:"manifest"`
	Versions string `mapstructure:"versions"`

	// RecordEveryRelease mirrors the sync flag of the same name.
	RecordEveryRelease bool `mapstructure:"record_every_release"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "text",
		Quiet:   false,
		Verbose: false,
		Defaults: DefaultsConfig{
			Manifest: "manifest.json",
			Versions: "versions.json",
		},
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.relmeta.yaml or ./relmeta.yaml
// 2. ~/.relmeta.yaml
// 3. $XDG_CONFIG_HOME/relmeta/config.yaml (or ~/.config/relmeta/config.yaml)
// 4. /etc/relmeta/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	configFile := findConfigFile()
	if configFile != "" {
		v := viper.New()
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}

		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	applyEnvOverrides(cfg)

	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".relmeta.yaml", ".relmeta.yml", "relmeta.yaml", "relmeta.yml"}

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
		searchPaths = append(searchPaths, filepath.Join(configDir, "relmeta"))
	}
	searchPaths = append(searchPaths, "/etc/relmeta")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		// Also check for config.yaml in subdirs
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RELMETA_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("RELMETA_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("RELMETA_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("RELMETA_MANIFEST"); v != "" {
		cfg.Defaults.Manifest = v
	}
	if v := os.Getenv("RELMETA_VERSIONS"); v != "" {
		cfg.Defaults.Versions = v
	}
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}
