package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/tidwall/gjson"

	"github.com/relmeta/relmeta/internal/output"
	"github.com/relmeta/relmeta/internal/semver"
)

// CheckCmd validates both metadata files without writing anything
type CheckCmd struct {
	Manifest string `help:"Path to manifest.json" default:"${config_manifest}" type:"path"`
	Versions string `help:"Path to versions.json" default:"${config_versions}" type:"path"`

	clk clock.Clock
}

// checkResult represents a single diagnostic check
type checkResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error"
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// checkReport is the complete diagnostic report
type checkReport struct {
	Type       string        `json:"type"`
	Timestamp  string        `json:"timestamp"`
	Checks     []checkResult `json:"checks"`
	AllPassed  bool          `json:"all_passed"`
	ErrorCount int           `json:"error_count"`
	WarnCount  int           `json:"warn_count"`
}

// Run executes the check command
func (c *CheckCmd) Run(globals *Globals) error {
	clk := c.clk
	if clk == nil {
		clk = clock.New()
	}

	var checks []checkResult

	manifest, manifestChecks := loadForCheck(c.Manifest, "manifest")
	checks = append(checks, manifestChecks...)
	if manifest != nil {
		checks = append(checks, checkManifestFields(*manifest)...)
	}

	versions, versionChecks := loadForCheck(c.Versions, "versions")
	checks = append(checks, versionChecks...)
	if versions != nil {
		checks = append(checks, checkHistoryEntries(*versions)...)
	}

	errorCount := 0
	warnCount := 0
	for _, check := range checks {
		switch check.Status {
		case "error":
			errorCount++
		case "warning":
			warnCount++
		}
	}

	report := checkReport{
		Type:       "check",
		Timestamp:  clk.Now().Format(time.RFC3339),
		Checks:     checks,
		AllPassed:  errorCount == 0,
		ErrorCount: errorCount,
		WarnCount:  warnCount,
	}

	if globals.Format == "ndjson" {
		encoder := json.NewEncoder(globals.Stdout)
		if err := encoder.Encode(report); err != nil {
			return err
		}
	} else {
		writeCheckReportText(globals, report)
	}

	if errorCount > 0 {
		return fmt.Errorf("%d check(s) failed", errorCount)
	}
	return nil
}

// loadForCheck runs the existence/syntax/shape checks for one file and
// returns the parsed root when all of them passed.
func loadForCheck(path, label string) (*gjson.Result, []checkResult) {
	data, err := os.ReadFile(path)
	if err != nil {
		status := checkResult{Name: label + "_exists", Status: "error", Message: path + " is not readable", Details: err.Error()}
		if errors.Is(err, fs.ErrNotExist) {
			status.Message = path + " does not exist"
		}
		return nil, []checkResult{status}
	}
	checks := []checkResult{{Name: label + "_exists", Status: "ok", Message: path}}

	if !gjson.ValidBytes(data) {
		checks = append(checks, checkResult{Name: label + "_json", Status: "error", Message: path + " is not valid JSON"})
		return nil, checks
	}
	checks = append(checks, checkResult{Name: label + "_json", Status: "ok"})

	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		checks = append(checks, checkResult{Name: label + "_object", Status: "error", Message: path + " must contain a JSON object"})
		return nil, checks
	}
	checks = append(checks, checkResult{Name: label + "_object", Status: "ok"})
	return &parsed, checks
}

func checkManifestFields(manifest gjson.Result) []checkResult {
	var checks []checkResult
	for _, field := range []string{"version", "minAppVersion"} {
		value := manifest.Get(field)
		switch {
		case !value.Exists():
			checks = append(checks, checkResult{Name: "manifest_" + field, Status: "error", Message: "missing required field: " + field})
		case value.Type != gjson.String:
			checks = append(checks, checkResult{Name: "manifest_" + field, Status: "warning", Message: field + " is not a string", Details: value.Raw})
		default:
			checks = append(checks, checkResult{Name: "manifest_" + field, Status: "ok", Message: value.String()})
		}
	}
	return checks
}

func checkHistoryEntries(versions gjson.Result) []checkResult {
	var checks []checkResult

	keys := make([]string, 0)
	valuesOK := checkResult{Name: "versions_values", Status: "ok"}
	versions.ForEach(func(key, value gjson.Result) bool {
		keys = append(keys, key.String())
		if value.IsObject() || value.IsArray() {
			valuesOK = checkResult{Name: "versions_values", Status: "error", Message: "entry for " + key.String() + " is not a scalar"}
			return false
		}
		if value.Type != gjson.String && valuesOK.Status == "ok" {
			valuesOK = checkResult{Name: "versions_values", Status: "warning", Message: "entry for " + key.String() + " is not a string; it will be coerced on the next write"}
		}
		return true
	})
	checks = append(checks, valuesOK)

	order := checkResult{Name: "versions_order", Status: "ok"}
	for i := 1; i < len(keys); i++ {
		if semver.Compare(keys[i-1], keys[i]) > 0 {
			order = checkResult{Name: "versions_order", Status: "warning", Message: "keys are not sorted; they will be re-sorted on the next write", Details: keys[i-1] + " > " + keys[i]}
			break
		}
	}
	checks = append(checks, order)

	wellformed := checkResult{Name: "versions_wellformed", Status: "ok"}
	for _, key := range keys {
		if _, ok := semver.ParseCore(key); !ok {
			wellformed = checkResult{Name: "versions_wellformed", Status: "warning", Message: "malformed version key: " + key + " (sorts after all well-formed versions)"}
			break
		}
	}
	checks = append(checks, wellformed)

	return checks
}

func writeCheckReportText(globals *Globals, report checkReport) {
	fmt.Fprintln(globals.Stdout, output.Styles.Header.Render("relmeta check"))
	for _, check := range report.Checks {
		status := output.StatusStyle(check.Status).Render(check.Status)
		line := fmt.Sprintf("  %-22s %s", check.Name, status)
		if check.Message != "" {
			line += "  " + check.Message
		}
		fmt.Fprintln(globals.Stdout, line)
	}
	if report.AllPassed {
		fmt.Fprintln(globals.Stdout, output.Styles.Success.Render("All checks passed"))
	} else {
		fmt.Fprintf(globals.Stdout, "%s (%d error(s), %d warning(s))\n",
			output.Styles.Danger.Render("Checks failed"), report.ErrorCount, report.WarnCount)
	}
}
