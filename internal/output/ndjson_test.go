package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relmeta/relmeta/internal/metadata"
	"github.com/relmeta/relmeta/internal/reconcile"
)

func TestNDJSONWriter(t *testing.T) {
	t.Run("WriteSync includes the previous latest entry", func(t *testing.T) {
		var buf bytes.Buffer
		writer := NewNDJSONWriter(&buf)

		require.NoError(t, writer.WriteSync(&reconcile.Result{
			Version:        "1.1.0",
			MinAppVersion:  "0.16.0",
			Recorded:       true,
			Reason:         reconcile.RecordedNote,
			PreviousLatest: &metadata.Entry{Version: "1.0.0", MinAppVersion: "0.15.0"},
		}))

		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, "sync", out["type"])
		assert.Equal(t, float64(SchemaVersion), out["schemaVersion"])
		assert.Equal(t, "1.0.0", out["previous_latest"])
		assert.Equal(t, "0.15.0", out["previous_min"])
	})

	t.Run("WriteSync omits previous fields when history was empty", func(t *testing.T) {
		var buf bytes.Buffer
		writer := NewNDJSONWriter(&buf)

		require.NoError(t, writer.WriteSync(&reconcile.Result{
			Version:       "1.0.0",
			MinAppVersion: "0.15.0",
			Recorded:      true,
			Reason:        reconcile.RecordedNote,
		}))

		assert.NotContains(t, buf.String(), "previous_latest")
	})

	t.Run("WriteError emits the code", func(t *testing.T) {
		var buf bytes.Buffer
		writer := NewNDJSONWriter(&buf)

		require.NoError(t, writer.WriteError("FILE_NOT_FOUND", "file not found: versions.json"))

		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, "error", out["type"])
		assert.Equal(t, "FILE_NOT_FOUND", out["code"])
	})

	t.Run("entries are one object per line", func(t *testing.T) {
		var buf bytes.Buffer
		writer := NewNDJSONWriter(&buf)

		require.NoError(t, writer.WriteEntry(metadata.Entry{Version: "1.0.0", MinAppVersion: "0.15.0"}, false))
		require.NoError(t, writer.WriteEntry(metadata.Entry{Version: "1.1.0", MinAppVersion: "0.16.0"}, true))

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		assert.Len(t, lines, 2)
	})
}

func TestTextWriter(t *testing.T) {
	t.Run("WriteSync prints the three report lines", func(t *testing.T) {
		var buf bytes.Buffer
		writer := NewTextWriter(&buf)

		require.NoError(t, writer.WriteSync(&reconcile.Result{
			Version:       "1.1.0",
			MinAppVersion: "0.15.0",
			Recorded:      false,
			Reason:        reconcile.SkipReason,
		}, "versions.json"))

		out := buf.String()
		assert.Contains(t, out, "manifest.version -> 1.1.0")
		assert.Contains(t, out, "manifest.minAppVersion -> 0.15.0")
		assert.Contains(t, out, "versions.json entry for 1.1.0: skipped")
	})

	t.Run("dry run note is appended", func(t *testing.T) {
		var buf bytes.Buffer
		writer := NewTextWriter(&buf)

		require.NoError(t, writer.WriteSync(&reconcile.Result{
			Version:       "1.1.0",
			MinAppVersion: "0.15.0",
			Recorded:      true,
			Reason:        reconcile.RecordedNote,
			DryRun:        true,
		}, "versions.json"))

		assert.Contains(t, buf.String(), "dry run")
	})
}
