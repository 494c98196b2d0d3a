package cli

import (
	"errors"
	"fmt"

	"github.com/relmeta/relmeta/internal/metadata"
	"github.com/relmeta/relmeta/internal/output"
)

// errorCode maps the metadata error taxonomy onto stable machine-readable
// codes for NDJSON consumers.
func errorCode(err error) string {
	var notFound *metadata.NotFoundError
	var parse *metadata.ParseError
	var format *metadata.FormatError
	var schema *metadata.SchemaError
	switch {
	case errors.As(err, &notFound):
		return "FILE_NOT_FOUND"
	case errors.As(err, &parse):
		return "PARSE_ERROR"
	case errors.As(err, &format):
		return "BAD_FORMAT"
	case errors.As(err, &schema):
		return "MISSING_FIELD"
	default:
		return "INTERNAL"
	}
}

// outputErrorCommon normalizes error emission across commands, respecting
// ndjson vs text formats so release scripts always get machine-readable
// failures.
func outputErrorCommon(globals *Globals, code, message string) error {
	if globals != nil && globals.Format == "ndjson" {
		output.NewNDJSONWriter(globals.Stdout).WriteError(code, message)
	} else if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
	}
	return errors.New(message)
}

// emitFailure emits err with its taxonomy code and passes it through.
func emitFailure(globals *Globals, err error) error {
	outputErrorCommon(globals, errorCode(err), err.Error())
	return err
}
