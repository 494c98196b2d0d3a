package cli

import (
	"github.com/relmeta/relmeta/internal/output"
	"github.com/relmeta/relmeta/internal/reconcile"
)

// SyncCmd applies a plugin release to both metadata files
type SyncCmd struct {
	Manifest string `help:"Path to manifest.json" default:"${config_manifest}" type:"path"`
	Versions string `help:"Path to versions.json" default:"${config_versions}" type:"path"`
	Version  string `required:"" help:"Plugin release version (x.y.z)"`

	MinAppVersion      string `name:"min-app-version" help:"Optional minAppVersion override. If omitted, keep manifest value."`
	RecordEveryRelease bool   `name:"record-every-release" default:"${config_record_every_release}" help:"Always add an entry for --version in versions.json. By default, an entry is added only if minAppVersion changed compared with the highest recorded version."`
	DryRun             bool   `help:"Run the full algorithm and report without writing either file"`
}

// Run executes the sync command
func (c *SyncCmd) Run(globals *Globals) error {
	result, err := reconcile.Run(reconcile.Options{
		ManifestPath:       c.Manifest,
		VersionsPath:       c.Versions,
		Version:            c.Version,
		MinAppVersion:      c.MinAppVersion,
		RecordEveryRelease: c.RecordEveryRelease,
		DryRun:             c.DryRun,
		Logger:             globals.Logger,
	})
	if err != nil {
		return emitFailure(globals, err)
	}

	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).WriteSync(result)
	}
	return output.NewTextWriter(globals.Stdout).WriteSync(result, c.Versions)
}
