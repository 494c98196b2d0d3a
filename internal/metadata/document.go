// Package metadata models the two release metadata files: the plugin
// manifest and the version history. Both are JSON objects whose key order
// matters, so documents round-trip through an insertion-ordered type rather
// than a Go map.
package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// errNotObject signals a well-formed JSON payload whose root is not an
// object. Callers translate it into a FormatError with the offending path.
var errNotObject = errors.New("root value is not a JSON object")

// Document is a JSON object that preserves key insertion order.
type Document struct {
	keys   []string
	values map[string]any
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{values: make(map[string]any)}
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Get returns the value for key.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// GetString returns the value for key coerced to its string form.
func (d *Document) GetString(key string) (string, bool) {
	v, ok := d.values[key]
	if !ok {
		return "", false
	}
	return StringValue(v), true
}

// Set stores a value, appending the key when it is new.
func (d *Document) Set(key string, value any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// StringValue coerces a decoded JSON scalar to its string form. Strings
// pass through; numbers keep their original text (documents decode with
// UseNumber); everything else falls back to fmt.
func StringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", t)
	}
}

// DecodeDocument parses data into an ordered document. The root value must
// be a JSON object; nested objects are decoded as *Document so their key
// order survives a round trip.
func DecodeDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, errNotObject
	}
	doc, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}
	// Reject trailing content after the root object.
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("unexpected data after JSON document")
	}
	return doc, nil
}

func decodeObject(dec *json.Decoder) (*Document, error) {
	doc := NewDocument()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", keyTok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		doc.Set(key, value)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	values := make([]any, 0)
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return values, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", delim.String())
		}
	}
	return tok, nil
}

// Encode writes the document as pretty-printed JSON with 2-space indent
// and a trailing newline.
func (d *Document) Encode(w io.Writer) error {
	var buf bytes.Buffer
	if err := encodeValue(&buf, d, 0); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteFile writes the encoded document to path, replacing any existing
// content.
func (d *Document) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func encodeValue(buf *bytes.Buffer, v any, depth int) error {
	switch t := v.(type) {
	case *Document:
		return encodeDocument(buf, t, depth)
	case []any:
		return encodeSlice(buf, t, depth)
	default:
		return encodeScalar(buf, v)
	}
}

func encodeDocument(buf *bytes.Buffer, doc *Document, depth int) error {
	if doc.Len() == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteString("{\n")
	for i, key := range doc.keys {
		writeIndent(buf, depth+1)
		if err := encodeScalar(buf, key); err != nil {
			return err
		}
		buf.WriteString(": ")
		if err := encodeValue(buf, doc.values[key], depth+1); err != nil {
			return err
		}
		if i < len(doc.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	writeIndent(buf, depth)
	buf.WriteByte('}')
	return nil
}

func encodeSlice(buf *bytes.Buffer, values []any, depth int) error {
	if len(values) == 0 {
		buf.WriteString("[]")
		return nil
	}
	buf.WriteString("[\n")
	for i, value := range values {
		writeIndent(buf, depth+1)
		if err := encodeValue(buf, value, depth+1); err != nil {
			return err
		}
		if i < len(values)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	writeIndent(buf, depth)
	buf.WriteByte(']')
	return nil
}

// encodeScalar marshals a single scalar without HTML escaping, matching
// the raw text the documents were authored with.
func encodeScalar(buf *bytes.Buffer, v any) error {
	var scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(scratch.Bytes(), "\n"))
	return nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}
