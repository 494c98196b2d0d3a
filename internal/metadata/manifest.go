package metadata

import (
	"errors"
	"io/fs"
	"os"
)

// Required manifest fields.
const (
	FieldVersion       = "version"
	FieldMinAppVersion = "minAppVersion"
)

// loadDocument reads and decodes a JSON object file, mapping failures onto
// the error taxonomy. No partial result is ever returned.
func loadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		if errors.Is(err, errNotObject) {
			return nil, &FormatError{Path: path}
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}

// Manifest is the plugin manifest document together with its on-disk path.
// Keys other than version and minAppVersion are carried through untouched,
// in their original order.
type Manifest struct {
	Path string
	Doc  *Document
}

// LoadManifest loads the manifest document from path.
func LoadManifest(path string) (*Manifest, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}
	return &Manifest{Path: path, Doc: doc}, nil
}

// RequireFields fails with a SchemaError when version or minAppVersion is
// absent.
func (m *Manifest) RequireFields() error {
	for _, field := range []string{FieldVersion, FieldMinAppVersion} {
		if !m.Doc.Has(field) {
			return &SchemaError{Path: m.Path, Field: field}
		}
	}
	return nil
}

// Version returns the declared plugin version.
func (m *Manifest) Version() string {
	v, _ := m.Doc.GetString(FieldVersion)
	return v
}

// MinAppVersion returns the declared minimum host version.
func (m *Manifest) MinAppVersion() string {
	v, _ := m.Doc.GetString(FieldMinAppVersion)
	return v
}

// SetVersion overwrites the declared plugin version.
func (m *Manifest) SetVersion(version string) {
	m.Doc.Set(FieldVersion, version)
}

// SetMinAppVersion overwrites the declared minimum host version.
func (m *Manifest) SetMinAppVersion(minAppVersion string) {
	m.Doc.Set(FieldMinAppVersion, minAppVersion)
}

// Write writes the manifest back to its original path.
func (m *Manifest) Write() error {
	return m.Doc.WriteFile(m.Path)
}
