package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/relmeta/relmeta/internal/metadata"
	"github.com/relmeta/relmeta/internal/output"
)

// HistoryCmd lists the recorded version history, sorted ascending by
// version sort key
type HistoryCmd struct {
	Versions string `help:"Path to versions.json" default:"${config_versions}" type:"path"`
	Table    bool   `short:"t" help:"Render as an ASCII table"`
}

// Run executes the history command
func (c *HistoryCmd) Run(globals *Globals) error {
	history, err := metadata.LoadHistory(c.Versions)
	if err != nil {
		return emitFailure(globals, err)
	}

	entries := history.Entries()
	latest, hasLatest := history.Latest()
	globals.Logger.Debug("loaded history", zap.Int("count", len(entries)))

	if globals.Format == "ndjson" {
		writer := output.NewNDJSONWriter(globals.Stdout)
		for _, entry := range entries {
			isLatest := hasLatest && entry.Version == latest.Version
			if err := writer.WriteEntry(entry, isLatest); err != nil {
				return err
			}
		}
		return writer.WriteRaw(map[string]interface{}{
			"type":          "history_summary",
			"schemaVersion": output.SchemaVersion,
			"count":         len(entries),
			"path":          c.Versions,
		})
	}

	if len(entries) == 0 {
		if !globals.Quiet {
			fmt.Fprintf(globals.Stdout, "No versions recorded in %s\n", c.Versions)
		}
		return nil
	}

	if c.Table {
		table := tablewriter.NewWriter(globals.Stdout)
		table.Header("Version", "Min App Version")
		for _, entry := range entries {
			table.Append([]string{entry.Version, entry.MinAppVersion})
		}
		return table.Render()
	}

	writer := output.NewTextWriter(globals.Stdout)
	for _, entry := range entries {
		isLatest := hasLatest && entry.Version == latest.Version
		if err := writer.WriteEntry(entry, isLatest); err != nil {
			return err
		}
	}
	return nil
}
