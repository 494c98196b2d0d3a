package metadata

import (
	"github.com/relmeta/relmeta/internal/semver"
)

// History is the version-history document together with its on-disk path.
// It maps each released plugin version to the minimum host version required
// at that release. Entries are added or updated, never removed.
type History struct {
	Path string
	Doc  *Document
}

// Entry is a single version → minimum-host-version mapping.
type Entry struct {
	Version       string `json:"version"`
	MinAppVersion string `json:"minAppVersion"`
}

// LoadHistory loads the version-history document from path.
func LoadHistory(path string) (*History, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}
	return &History{Path: path, Doc: doc}, nil
}

// Versions returns the recorded version keys in document order.
func (h *History) Versions() []string {
	return h.Doc.Keys()
}

// Get returns the minimum host version recorded for version, coerced to a
// string regardless of the scalar type it was loaded as.
func (h *History) Get(version string) (string, bool) {
	return h.Doc.GetString(version)
}

// Has reports whether version is already recorded.
func (h *History) Has(version string) bool {
	return h.Doc.Has(version)
}

// Set records or overwrites the entry for version.
func (h *History) Set(version, minAppVersion string) {
	h.Doc.Set(version, minAppVersion)
}

// Latest returns the entry with the highest version sort key, or false
// when the history is empty.
func (h *History) Latest() (Entry, bool) {
	version, ok := semver.Latest(h.Doc.Keys())
	if !ok {
		return Entry{}, false
	}
	min, _ := h.Doc.GetString(version)
	return Entry{Version: version, MinAppVersion: min}, true
}

// Entries returns all entries sorted ascending by version sort key, with
// values coerced to strings.
func (h *History) Entries() []Entry {
	keys := h.Doc.Keys()
	semver.SortStrings(keys)
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		min, _ := h.Doc.GetString(key)
		entries = append(entries, Entry{Version: key, MinAppVersion: min})
	}
	return entries
}

// Normalize rebuilds the document sorted ascending by version sort key with
// every value coerced to a string. Always applied before writing.
func (h *History) Normalize() {
	normalized := NewDocument()
	for _, entry := range h.Entries() {
		normalized.Set(entry.Version, entry.MinAppVersion)
	}
	h.Doc = normalized
}

// Write normalizes the history and writes it back to its original path.
func (h *History) Write() error {
	h.Normalize()
	return h.Doc.WriteFile(h.Path)
}
