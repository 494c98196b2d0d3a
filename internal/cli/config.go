package cli

import (
	"encoding/json"
	"fmt"

	"github.com/relmeta/relmeta/internal/config"
)

// ConfigCmd shows or manages configuration
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"withargs" help:"Show current configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show configuration file path"`
	Generate ConfigGenerateCmd `cmd:"" help:"Generate sample configuration file"`
}

// ConfigShowCmd shows current configuration
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if globals.Format == "ndjson" {
		out := map[string]interface{}{
			"type":     "config",
			"format":   cfg.Format,
			"quiet":    cfg.Quiet,
			"verbose":  cfg.Verbose,
			"defaults": cfg.Defaults,
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(out)
	}

	// Text output
	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintf(globals.Stdout, "  format:  %s\n", cfg.Format)
	fmt.Fprintf(globals.Stdout, "  quiet:   %v\n", cfg.Quiet)
	fmt.Fprintf(globals.Stdout, "  verbose: %v\n", cfg.Verbose)
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintln(globals.Stdout, "Defaults:")
	fmt.Fprintf(globals.Stdout, "  manifest: %s\n", cfg.Defaults.Manifest)
	fmt.Fprintf(globals.Stdout, "  versions: %s\n", cfg.Defaults.Versions)
	fmt.Fprintf(globals.Stdout, "  record_every_release: %v\n", cfg.Defaults.RecordEveryRelease)

	if path := config.ConfigFile(); path != "" {
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintf(globals.Stdout, "Loaded from: %s\n", path)
	}

	return nil
}

// ConfigPathCmd shows config file path
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if globals.Format == "ndjson" {
		out := map[string]interface{}{
			"type": "config_path",
			"path": path,
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(out)
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Create one at:")
		fmt.Fprintln(globals.Stdout, "  ~/.relmeta.yaml")
		fmt.Fprintln(globals.Stdout, "  ./relmeta.yaml")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}

	return nil
}

// ConfigGenerateCmd generates a sample configuration file
type ConfigGenerateCmd struct{}

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	sampleConfig := `# relmeta configuration file
# Place this file at ~/.relmeta.yaml or ./relmeta.yaml

# Output format: "text" (default) or "ndjson"
format: text

# Suppress non-essential output
quiet: false

# Enable verbose/debug output
verbose: false

# Default values for commands
defaults:
  # Path to the plugin manifest
  manifest: manifest.json

  # Path to the version history
  versions: versions.json

  # Record an entry for every release instead of only when
  # minAppVersion changed compared with the highest recorded version
  record_every_release: false
`

	fmt.Fprint(globals.Stdout, sampleConfig)
	return nil
}
