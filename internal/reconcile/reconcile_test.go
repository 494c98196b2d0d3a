package reconcile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relmeta/relmeta/internal/metadata"
)

type fixture struct {
	dir      string
	manifest string
	versions string
}

func newFixture(t *testing.T, manifest, versions string) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:      dir,
		manifest: filepath.Join(dir, "manifest.json"),
		versions: filepath.Join(dir, "versions.json"),
	}
	if manifest != "" {
		require.NoError(t, os.WriteFile(f.manifest, []byte(manifest), 0o644))
	}
	if versions != "" {
		require.NoError(t, os.WriteFile(f.versions, []byte(versions), 0o644))
	}
	return f
}

func (f fixture) read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func (f fixture) options(version string) Options {
	return Options{
		ManifestPath: f.manifest,
		VersionsPath: f.versions,
		Version:      version,
	}
}

const defaultManifest = `{"id":"sample","version":"1.0.0","minAppVersion":"0.15.0"}`

func TestRun(t *testing.T) {
	t.Run("records when minAppVersion changed", func(t *testing.T) {
		f := newFixture(t, `{"id":"sample","version":"1.0.0","minAppVersion":"0.16.0"}`, `{"1.0.0":"0.15.0"}`)

		result, err := Run(f.options("1.1.0"))
		require.NoError(t, err)
		assert.True(t, result.Recorded)
		assert.Equal(t, RecordedNote, result.Reason)
		assert.Equal(t, "0.16.0", result.MinAppVersion)

		assert.Equal(t,
			"{\n  \"1.0.0\": \"0.15.0\",\n  \"1.1.0\": \"0.16.0\"\n}\n",
			f.read(t, f.versions))
	})

	t.Run("skips when minAppVersion unchanged", func(t *testing.T) {
		f := newFixture(t, defaultManifest, `{"1.0.0":"0.15.0"}`)

		result, err := Run(f.options("1.1.0"))
		require.NoError(t, err)
		assert.False(t, result.Recorded)
		assert.Equal(t, SkipReason, result.Reason)
		require.NotNil(t, result.PreviousLatest)
		assert.Equal(t, "1.0.0", result.PreviousLatest.Version)

		// History content unchanged aside from re-serialization.
		assert.Equal(t, "{\n  \"1.0.0\": \"0.15.0\"\n}\n", f.read(t, f.versions))
		// Manifest version is still always overwritten.
		assert.Contains(t, f.read(t, f.manifest), `"version": "1.1.0"`)
	})

	t.Run("record-every-release forces an entry", func(t *testing.T) {
		f := newFixture(t, defaultManifest, `{"1.0.0":"0.15.0"}`)

		opts := f.options("1.1.0")
		opts.RecordEveryRelease = true
		result, err := Run(opts)
		require.NoError(t, err)
		assert.True(t, result.Recorded)
		assert.Equal(t,
			"{\n  \"1.0.0\": \"0.15.0\",\n  \"1.1.0\": \"0.15.0\"\n}\n",
			f.read(t, f.versions))
	})

	t.Run("updates in place when the version is already recorded", func(t *testing.T) {
		f := newFixture(t, defaultManifest, `{"1.0.0":"0.15.0"}`)

		opts := f.options("1.0.0")
		opts.MinAppVersion = "0.16.0"
		result, err := Run(opts)
		require.NoError(t, err)
		assert.True(t, result.Recorded)
		assert.Equal(t, "{\n  \"1.0.0\": \"0.16.0\"\n}\n", f.read(t, f.versions))
	})

	t.Run("records the first entry into an empty history", func(t *testing.T) {
		f := newFixture(t, defaultManifest, `{}`)

		result, err := Run(f.options("1.0.0"))
		require.NoError(t, err)
		assert.True(t, result.Recorded)
		assert.Nil(t, result.PreviousLatest)
		assert.Equal(t, "{\n  \"1.0.0\": \"0.15.0\"\n}\n", f.read(t, f.versions))
	})

	t.Run("override rewrites manifest minAppVersion", func(t *testing.T) {
		f := newFixture(t, defaultManifest, `{}`)

		opts := f.options("2.0.0")
		opts.MinAppVersion = "1.0.0"
		result, err := Run(opts)
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", result.MinAppVersion)
		assert.Contains(t, f.read(t, f.manifest), `"minAppVersion": "1.0.0"`)
	})

	t.Run("empty override keeps the manifest value", func(t *testing.T) {
		f := newFixture(t, defaultManifest, `{}`)

		opts := f.options("2.0.0")
		opts.MinAppVersion = ""
		result, err := Run(opts)
		require.NoError(t, err)
		assert.Equal(t, "0.15.0", result.MinAppVersion)
	})

	t.Run("rerun with identical inputs is idempotent", func(t *testing.T) {
		f := newFixture(t, defaultManifest, `{"1.0.0":"0.15.0"}`)

		first, err := Run(f.options("1.1.0"))
		require.NoError(t, err)
		assert.False(t, first.Recorded)
		manifestAfterFirst := f.read(t, f.manifest)
		versionsAfterFirst := f.read(t, f.versions)

		second, err := Run(f.options("1.1.0"))
		require.NoError(t, err)
		assert.False(t, second.Recorded)
		assert.Equal(t, manifestAfterFirst, f.read(t, f.manifest))
		assert.Equal(t, versionsAfterFirst, f.read(t, f.versions))
	})

	t.Run("history is written sorted even when loaded unsorted", func(t *testing.T) {
		f := newFixture(t, defaultManifest, `{"1.10.0":"0.15.0","1.2.0":"0.14.0","0.9.0":"0.14.0"}`)

		opts := f.options("1.3.0")
		opts.RecordEveryRelease = true
		_, err := Run(opts)
		require.NoError(t, err)

		assert.Equal(t,
			"{\n  \"0.9.0\": \"0.14.0\",\n  \"1.2.0\": \"0.14.0\",\n  \"1.3.0\": \"0.15.0\",\n  \"1.10.0\": \"0.15.0\"\n}\n",
			f.read(t, f.versions))
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		f := newFixture(t, defaultManifest, `{}`)
		manifestBefore := f.read(t, f.manifest)
		versionsBefore := f.read(t, f.versions)

		opts := f.options("1.1.0")
		opts.DryRun = true
		result, err := Run(opts)
		require.NoError(t, err)
		assert.True(t, result.Recorded)
		assert.True(t, result.DryRun)
		assert.Equal(t, manifestBefore, f.read(t, f.manifest))
		assert.Equal(t, versionsBefore, f.read(t, f.versions))
	})
}

func TestRunFailures(t *testing.T) {
	t.Run("missing manifest field fails before any write", func(t *testing.T) {
		f := newFixture(t, `{"version":"1.0.0"}`, `{"1.0.0":"0.15.0"}`)
		manifestBefore := f.read(t, f.manifest)
		versionsBefore := f.read(t, f.versions)

		_, err := Run(f.options("1.1.0"))
		var schema *metadata.SchemaError
		require.ErrorAs(t, err, &schema)
		assert.Equal(t, "minAppVersion", schema.Field)

		assert.Equal(t, manifestBefore, f.read(t, f.manifest))
		assert.Equal(t, versionsBefore, f.read(t, f.versions))
	})

	t.Run("missing versions file leaves the manifest untouched", func(t *testing.T) {
		f := newFixture(t, defaultManifest, "")
		manifestBefore := f.read(t, f.manifest)

		_, err := Run(f.options("1.1.0"))
		var notFound *metadata.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, f.versions, notFound.Path)

		assert.Equal(t, manifestBefore, f.read(t, f.manifest))
	})

	t.Run("missing manifest file fails with NotFoundError", func(t *testing.T) {
		f := newFixture(t, "", `{}`)

		_, err := Run(f.options("1.1.0"))
		var notFound *metadata.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, f.manifest, notFound.Path)
	})

	t.Run("non-object versions root fails with FormatError", func(t *testing.T) {
		f := newFixture(t, defaultManifest, `[1,2,3]`)
		manifestBefore := f.read(t, f.manifest)

		_, err := Run(f.options("1.1.0"))
		var format *metadata.FormatError
		require.ErrorAs(t, err, &format)
		assert.Equal(t, manifestBefore, f.read(t, f.manifest))
	})
}
