package entities

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const reportFileMode = 0o644

// OutdatedPackage is one installed package running behind its latest release.
type OutdatedPackage struct {
	Name    string
	Current string
	Latest  string
}

// OutdatedVersions is the per-package value serialized into the report.
type OutdatedVersions struct {
	Current string `json:"current"`
	Latest  string `json:"latest"`
}

// OutdatedReport maps a package name to its current and latest versions.
type OutdatedReport map[string]OutdatedVersions

// NewOutdatedReport builds a report from the installer's outdated listing,
// excluding the installer itself since it is tooling, not a dependency.
func NewOutdatedReport(packages []OutdatedPackage, installerName string) OutdatedReport {
	report := make(OutdatedReport, len(packages))
	for _, pkg := range packages {
		if strings.EqualFold(pkg.Name, installerName) {
			continue
		}
		report[pkg.Name] = OutdatedVersions{Current: pkg.Current, Latest: pkg.Latest}
	}
	return report
}

// WriteOutdatedReport persists the report at path when it has entries and
// removes any stale file when it does not, so a report on disk always means
// something is outdated.
func WriteOutdatedReport(path string, report OutdatedReport) error {
	if len(report) == 0 {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove stale report %q: %w", path, err)
		}
		return nil
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, reportFileMode); err != nil {
		return fmt.Errorf("failed to write report %q: %w", path, err)
	}
	return nil
}
