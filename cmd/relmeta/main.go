package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/relmeta/relmeta/internal/cli"
	"github.com/relmeta/relmeta/internal/config"
)

const quickStart = `relmeta - plugin release metadata maintenance

START HERE (this is the command you want):
  relmeta sync --version 1.2.3

Flags:
  --version          The plugin release version being published
  --min-app-version  Optional minimum host version override

Other useful commands:
  relmeta history                       List the recorded version history
  relmeta latest                        Show the latest recorded version
  relmeta check                         Validate both files without writing
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Apply config defaults before parsing
	// These will be overridden by CLI flags if specified
	vars := kong.Vars{
		"config_format":               cfg.Format,
		"config_manifest":             cfg.Defaults.Manifest,
		"config_versions":             cfg.Defaults.Versions,
		"config_record_every_release": strconv.FormatBool(cfg.Defaults.RecordEveryRelease),
	}

	ctx := kong.Parse(&c,
		kong.Name("relmeta"),
		kong.Description("relmeta: keep manifest.json and versions.json in sync for plugin releases\n\nSTART HERE: relmeta sync --version <x.y.z>"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg, newLogger(c.Verbose || cfg.Verbose))
	err = ctx.Run(globals)
	if err != nil {
		os.Exit(1)
	}
}

// newLogger builds a stderr debug logger when verbose is enabled and a nop
// logger otherwise. Command output stays on stdout either way.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
