package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tidwall/gjson"

	"github.com/relmeta/relmeta/internal/metadata"
	"github.com/relmeta/relmeta/internal/output"
	"github.com/relmeta/relmeta/internal/semver"
)

// LatestCmd shows the latest recorded version and its minimum host version
type LatestCmd struct {
	Versions string `help:"Path to versions.json" default:"${config_versions}" type:"path"`
}

// Run executes the latest command
func (c *LatestCmd) Run(globals *Globals) error {
	// Read-only fast path: no mutation happens, so the document never
	// round-trips through the ordered codec.
	data, err := os.ReadFile(c.Versions)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return emitFailure(globals, &metadata.NotFoundError{Path: c.Versions})
		}
		return emitFailure(globals, err)
	}
	if !gjson.ValidBytes(data) {
		return emitFailure(globals, &metadata.ParseError{Path: c.Versions, Err: errors.New("invalid JSON syntax")})
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return emitFailure(globals, &metadata.FormatError{Path: c.Versions})
	}

	versions := make([]string, 0)
	values := make(map[string]string)
	parsed.ForEach(func(key, value gjson.Result) bool {
		versions = append(versions, key.String())
		values[key.String()] = value.String()
		return true
	})

	latest, ok := semver.Latest(versions)
	if !ok {
		if globals.Format == "ndjson" {
			return output.NewNDJSONWriter(globals.Stdout).WriteWarning("no versions recorded in " + c.Versions)
		}
		if !globals.Quiet {
			fmt.Fprintf(globals.Stdout, "No versions recorded in %s\n", c.Versions)
		}
		return nil
	}

	entry := metadata.Entry{Version: latest, MinAppVersion: values[latest]}
	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).WriteEntry(entry, true)
	}
	return output.NewTextWriter(globals.Stdout).WriteEntry(entry, true)
}
