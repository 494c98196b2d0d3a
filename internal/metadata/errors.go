package metadata

import "fmt"

// NotFoundError reports a missing input file. Nothing is written once any
// load fails, so the two files are never left mutually inconsistent.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// ParseError reports malformed JSON syntax in an input file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: invalid JSON: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatError reports a file whose root JSON value is not an object.
type FormatError struct {
	Path string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s must contain a JSON object", e.Path)
}

// SchemaError reports a required manifest field that is absent.
type SchemaError struct {
	Path  string
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required field in %s: %s", e.Path, e.Field)
}
