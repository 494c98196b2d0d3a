package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/relmeta/relmeta/internal/metadata"
	"github.com/relmeta/relmeta/internal/reconcile"
)

// NDJSONWriter writes relmeta events as NDJSON
type NDJSONWriter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // keep output unescaped and avoid extra allocations
	return &NDJSONWriter{
		w:       w,
		encoder: enc,
	}
}

// SyncOutput reports a reconciliation outcome
type SyncOutput struct {
	Type           string `json:"type"` // Always "sync"
	SchemaVersion  int    `json:"schemaVersion"`
	Version        string `json:"version"`
	MinAppVersion  string `json:"minAppVersion"`
	Recorded       bool   `json:"recorded"`
	Reason         string `json:"reason"`
	PreviousLatest string `json:"previous_latest,omitempty"`
	PreviousMin    string `json:"previous_min,omitempty"`
	DryRun         bool   `json:"dry_run,omitempty"`
}

// EntryOutput is a single version-history entry
type EntryOutput struct {
	Type          string `json:"type"` // Always "entry"
	SchemaVersion int    `json:"schemaVersion"`
	Version       string `json:"version"`
	MinAppVersion string `json:"minAppVersion"`
	Latest        bool   `json:"latest,omitempty"`
}

// ErrorOutput represents a failure with a stable machine-readable code
type ErrorOutput struct {
	Type          string `json:"type"` // Always "error"
	SchemaVersion int    `json:"schemaVersion"`
	Code          string `json:"code"`
	Message       string `json:"message"`
}

// InfoOutput represents an informational message
type InfoOutput struct {
	Type          string `json:"type"` // Always "info"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
}

// WarningOutput represents a warning message
type WarningOutput struct {
	Type          string `json:"type"` // Always "warning"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
}

// MetadataOutput describes tool metadata
type MetadataOutput struct {
	Type          string `json:"type"` // Always "metadata"
	SchemaVersion int    `json:"schemaVersion"`
	Version       string `json:"version"`
	Commit        string `json:"commit"`
}

// WriteSync outputs a reconciliation result
func (w *NDJSONWriter) WriteSync(result *reconcile.Result) error {
	out := SyncOutput{
		Type:          "sync",
		SchemaVersion: SchemaVersion,
		Version:       result.Version,
		MinAppVersion: result.MinAppVersion,
		Recorded:      result.Recorded,
		Reason:        result.Reason,
		DryRun:        result.DryRun,
	}
	if result.PreviousLatest != nil {
		out.PreviousLatest = result.PreviousLatest.Version
		out.PreviousMin = result.PreviousLatest.MinAppVersion
	}
	return w.encoder.Encode(out)
}

// WriteEntry outputs a single history entry
func (w *NDJSONWriter) WriteEntry(entry metadata.Entry, latest bool) error {
	return w.encoder.Encode(EntryOutput{
		Type:          "entry",
		SchemaVersion: SchemaVersion,
		Version:       entry.Version,
		MinAppVersion: entry.MinAppVersion,
		Latest:        latest,
	})
}

// WriteError outputs an error
func (w *NDJSONWriter) WriteError(code, message string) error {
	return w.encoder.Encode(ErrorOutput{
		Type:          "error",
		SchemaVersion: SchemaVersion,
		Code:          code,
		Message:       message,
	})
}

// WriteInfo outputs an informational message
func (w *NDJSONWriter) WriteInfo(message string) error {
	return w.encoder.Encode(InfoOutput{
		Type:          "info",
		SchemaVersion: SchemaVersion,
		Message:       message,
	})
}

// WriteWarning outputs a warning message
func (w *NDJSONWriter) WriteWarning(message string) error {
	return w.encoder.Encode(WarningOutput{
		Type:          "warning",
		SchemaVersion: SchemaVersion,
		Message:       message,
	})
}

// WriteMetadata outputs tool metadata
func (w *NDJSONWriter) WriteMetadata(version, commit string) error {
	return w.encoder.Encode(MetadataOutput{
		Type:          "metadata",
		SchemaVersion: SchemaVersion,
		Version:       version,
		Commit:        commit,
	})
}

// WriteRaw outputs raw JSON data
func (w *NDJSONWriter) WriteRaw(v interface{}) error {
	return w.encoder.Encode(v)
}

// TextWriter writes relmeta events as styled text
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteSync outputs the three-line reconciliation report
func (w *TextWriter) WriteSync(result *reconcile.Result, versionsPath string) error {
	lines := fmt.Sprintf("manifest.version -> %s\n", result.Version)
	lines += fmt.Sprintf("manifest.minAppVersion -> %s\n", result.MinAppVersion)
	lines += fmt.Sprintf("%s entry for %s: %s\n", versionsPath, result.Version, result.Reason)
	if result.DryRun {
		lines += Styles.Warning.Render("dry run: no files written") + "\n"
	}
	_, err := io.WriteString(w.w, lines)
	return err
}

// WriteEntry outputs a styled history entry line
func (w *TextWriter) WriteEntry(entry metadata.Entry, latest bool) error {
	line := Styles.Version.Render(entry.Version) + " -> " + Styles.MinApp.Render(entry.MinAppVersion)
	if latest {
		line += " " + Styles.Success.Render("(latest)")
	}
	_, err := io.WriteString(w.w, line+"\n")
	return err
}

// WriteError outputs a styled error
func (w *TextWriter) WriteError(code, message string) error {
	errorLabel := Styles.Danger.Render("Error")
	codeStr := Styles.Warning.Render("[" + code + "]")
	line := errorLabel + " " + codeStr + ": " + message + "\n"
	_, err := io.WriteString(w.w, line)
	return err
}
