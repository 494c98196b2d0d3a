// Package reconcile applies a plugin release to the manifest and version
// history documents: the manifest version is always overwritten, the
// minimum host version only when an override is supplied, and a history
// entry is recorded only when it would change what a host resolves.
package reconcile

import (
	"go.uber.org/zap"

	"github.com/relmeta/relmeta/internal/metadata"
)

// Options configures a single reconciliation run. A fresh Options value is
// built per invocation; nothing persists across runs beyond the two files.
type Options struct {
	ManifestPath string
	VersionsPath string

	// Version is the plugin release version being published.
	Version string

	// MinAppVersion, when non-empty, overwrites the manifest's
	// minAppVersion. It is deliberately not validated against a version
	// pattern; any non-empty override is authoritative.
	MinAppVersion string

	// RecordEveryRelease forces a history entry for every release instead
	// of only when the effective minimum changed.
	RecordEveryRelease bool

	// DryRun runs the full algorithm and report without writing either file.
	DryRun bool

	Logger *zap.Logger
}

// SkipReason is the report note for a suppressed history entry.
const SkipReason = "skipped (minAppVersion unchanged from latest recorded version)"

// RecordedNote is the report note for an added or updated history entry.
const RecordedNote = "added/updated"

// Result reports the outcome of a reconciliation run.
type Result struct {
	Version       string
	MinAppVersion string
	Recorded      bool
	Reason        string

	// PreviousLatest is the highest recorded entry before this run, when
	// one existed.
	PreviousLatest *metadata.Entry

	DryRun bool
}

// Run executes the reconciliation. On any error no file has been written,
// so the two documents are never left half-updated.
func Run(opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	manifest, err := metadata.LoadManifest(opts.ManifestPath)
	if err != nil {
		return nil, err
	}
	history, err := metadata.LoadHistory(opts.VersionsPath)
	if err != nil {
		return nil, err
	}
	if err := manifest.RequireFields(); err != nil {
		return nil, err
	}
	logger.Debug("loaded documents",
		zap.String("manifest", opts.ManifestPath),
		zap.String("versions", opts.VersionsPath),
		zap.Int("recorded_versions", len(history.Versions())))

	manifest.SetVersion(opts.Version)
	if opts.MinAppVersion != "" {
		manifest.SetMinAppVersion(opts.MinAppVersion)
	}
	effectiveMin := manifest.MinAppVersion()

	previous, hasPrevious := history.Latest()

	record := opts.RecordEveryRelease ||
		history.Has(opts.Version) ||
		!hasPrevious ||
		previous.MinAppVersion != effectiveMin

	result := &Result{
		Version:       opts.Version,
		MinAppVersion: effectiveMin,
		Recorded:      record,
		Reason:        SkipReason,
		DryRun:        opts.DryRun,
	}
	if hasPrevious {
		prev := previous
		result.PreviousLatest = &prev
	}

	if record {
		history.Set(opts.Version, effectiveMin)
		result.Reason = RecordedNote
		logger.Debug("recording history entry",
			zap.String("version", opts.Version),
			zap.String("minAppVersion", effectiveMin))
	} else {
		logger.Debug("skipping history entry",
			zap.String("version", opts.Version),
			zap.String("latest_recorded", previous.Version))
	}

	if opts.DryRun {
		return result, nil
	}

	if err := manifest.Write(); err != nil {
		return nil, err
	}
	if err := history.Write(); err != nil {
		return nil, err
	}
	logger.Debug("wrote documents",
		zap.String("manifest", opts.ManifestPath),
		zap.String("versions", opts.VersionsPath))
	return result, nil
}
