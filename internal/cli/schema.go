package cli

import (
	"encoding/json"
	"strings"

	"github.com/relmeta/relmeta/internal/output"
)

// SchemaCmd outputs JSON Schema for relmeta documents and output types
type SchemaCmd struct {
	Type []string `short:"t" help:"Schemas to include (manifest,versions,sync,entry,error,check). Default: all"`
}

// Run executes the schema command
func (c *SchemaCmd) Run(globals *Globals) error {
	schemas := map[string]interface{}{
		"manifest": manifestSchema(),
		"versions": versionsSchema(),
		"sync":     syncSchema(),
		"entry":    entrySchema(),
		"error":    errorSchema(),
		"check":    checkSchema(),
	}

	typesToOutput := c.Type
	if len(typesToOutput) == 0 {
		typesToOutput = []string{"manifest", "versions", "sync", "entry", "error", "check"}
	}

	schemaOutput := map[string]interface{}{
		"$schema":       "http://json-schema.org/draft-07/schema#",
		"title":         "relmeta Schemas",
		"description":   "JSON Schema definitions for the release metadata documents and relmeta NDJSON output types",
		"schemaVersion": output.SchemaVersion,
		"definitions":   map[string]interface{}{},
	}

	defs := schemaOutput["definitions"].(map[string]interface{})
	for _, t := range typesToOutput {
		t = strings.ToLower(strings.TrimSpace(t))
		if schema, ok := schemas[t]; ok {
			defs[t] = schema
		}
	}

	encoder := json.NewEncoder(globals.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(schemaOutput)
}

// schemaVersionProperty returns the schemaVersion property definition
func schemaVersionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"const":       output.SchemaVersion,
		"description": "Schema version for compatibility detection",
	}
}

func manifestSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Plugin manifest. Keys beyond the required two are preserved verbatim.",
		"required":    []string{"version", "minAppVersion"},
		"properties": map[string]interface{}{
			"version": map[string]interface{}{
				"type":        "string",
				"description": "Plugin release version",
			},
			"minAppVersion": map[string]interface{}{
				"type":        "string",
				"description": "Minimum compatible host application version",
			},
		},
		"additionalProperties": true,
	}
}

func versionsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Version history: release version -> minimum host version at that release. Keys are written sorted ascending by version.",
		"additionalProperties": map[string]interface{}{
			"type": "string",
		},
	}
}

func syncSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"type", "version", "minAppVersion", "recorded", "reason"},
		"properties": map[string]interface{}{
			"type":            map[string]interface{}{"const": "sync"},
			"schemaVersion":   schemaVersionProperty(),
			"version":         map[string]interface{}{"type": "string"},
			"minAppVersion":   map[string]interface{}{"type": "string"},
			"recorded":        map[string]interface{}{"type": "boolean"},
			"reason":          map[string]interface{}{"type": "string"},
			"previous_latest": map[string]interface{}{"type": "string"},
			"previous_min":    map[string]interface{}{"type": "string"},
			"dry_run":         map[string]interface{}{"type": "boolean"},
		},
	}
}

func entrySchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"type", "version", "minAppVersion"},
		"properties": map[string]interface{}{
			"type":          map[string]interface{}{"const": "entry"},
			"schemaVersion": schemaVersionProperty(),
			"version":       map[string]interface{}{"type": "string"},
			"minAppVersion": map[string]interface{}{"type": "string"},
			"latest":        map[string]interface{}{"type": "boolean"},
		},
	}
}

func errorSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"type", "code", "message"},
		"properties": map[string]interface{}{
			"type":          map[string]interface{}{"const": "error"},
			"schemaVersion": schemaVersionProperty(),
			"code": map[string]interface{}{
				"type": "string",
				"enum": []string{"FILE_NOT_FOUND", "PARSE_ERROR", "BAD_FORMAT", "MISSING_FIELD", "INTERNAL"},
			},
			"message": map[string]interface{}{"type": "string"},
		},
	}
}

func checkSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"type", "checks", "all_passed"},
		"properties": map[string]interface{}{
			"type":      map[string]interface{}{"const": "check"},
			"timestamp": map[string]interface{}{"type": "string", "format": "date-time"},
			"checks": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type":     "object",
					"required": []string{"name", "status"},
					"properties": map[string]interface{}{
						"name":    map[string]interface{}{"type": "string"},
						"status":  map[string]interface{}{"enum": []string{"ok", "warning", "error"}},
						"message": map[string]interface{}{"type": "string"},
						"details": map[string]interface{}{"type": "string"},
					},
				},
			},
			"all_passed":  map[string]interface{}{"type": "boolean"},
			"error_count": map[string]interface{}{"type": "integer"},
			"warn_count":  map[string]interface{}{"type": "integer"},
		},
	}
}
