package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/relmeta/relmeta/internal/metadata"
	"github.com/relmeta/relmeta/internal/tui"
)

// UICmd launches an interactive browser over the version history
type UICmd struct {
	Versions string `help:"Path to versions.json" default:"${config_versions}" type:"path"`
}

// Run executes the ui command
func (c *UICmd) Run(globals *Globals) error {
	if f, ok := globals.Stdout.(*os.File); ok {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return fmt.Errorf("ui requires an interactive terminal; use 'relmeta history' for scripted output")
		}
	}

	history, err := metadata.LoadHistory(c.Versions)
	if err != nil {
		return emitFailure(globals, err)
	}

	model := tui.New(c.Versions, history.Entries())
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
