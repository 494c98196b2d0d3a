package cli

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/relmeta/relmeta/internal/config"
)

// CLI is the root command structure for relmeta
type CLI struct {
	// Global flags
	Format  string `short:"f" default:"${config_format}" enum:"ndjson,text" help:"Output format"`
	Quiet   bool   `short:"q" help:"Suppress non-essential output"`
	Verbose bool   `short:"v" help:"Show debug output (load/decision/write steps)"`

	// Commands
	Sync       SyncCmd       `cmd:"" default:"withargs" help:"Apply a release to manifest.json and versions.json"`
	History    HistoryCmd    `cmd:"" help:"List the recorded version history"`
	Latest     LatestCmd     `cmd:"" help:"Show the latest recorded version"`
	Check      CheckCmd      `cmd:"" help:"Validate both metadata files without writing"`
	Schema     SchemaCmd     `cmd:"" help:"Output JSON Schema for relmeta documents and output types"`
	Config     ConfigCmd     `cmd:"" help:"Show or manage configuration"`
	UI         UICmd         `cmd:"" help:"Interactive version history browser"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completions"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *zap.Logger
}

// NewGlobals creates a new Globals instance from CLI flags
func NewGlobals(cli *CLI) *Globals {
	return &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  config.Default(),
		Logger:  zap.NewNop(),
	}
}

// NewGlobalsWithConfig creates a new Globals instance with config fallbacks
func NewGlobalsWithConfig(cli *CLI, cfg *config.Config, logger *zap.Logger) *Globals {
	g := &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Logger:  logger,
	}

	// Apply config values if CLI flags weren't explicitly set
	if cfg != nil {
		if !cli.Quiet && cfg.Quiet {
			g.Quiet = cfg.Quiet
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = cfg.Verbose
		}
	}
	if g.Logger == nil {
		g.Logger = zap.NewNop()
	}

	return g
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "ndjson" {
		io.WriteString(globals.Stdout, `{"type":"version","version":"`+Version+`","commit":"`+Commit+`"}`+"\n")
	} else {
		io.WriteString(globals.Stdout, "relmeta version "+Version+" ("+Commit+")\n")
	}
	return nil
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
