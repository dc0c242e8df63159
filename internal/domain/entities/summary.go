package entities

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

const summaryFileMode = 0o644

// RunSummary is the machine-readable record of one provisioning run,
// written when the user asks for it.
type RunSummary struct {
	RunID       string             `json:"run_id"`
	StartedAt   time.Time          `json:"started_at"`
	FinishedAt  time.Time          `json:"finished_at"`
	Environment SummaryEnvironment `json:"environment"`
	Manifest    SummaryManifest    `json:"manifest"`
	Outdated    int                `json:"outdated"`
	ReportPath  string             `json:"report_path,omitempty"`
}

// SummaryEnvironment records the environment a run provisioned.
type SummaryEnvironment struct {
	Kind      string `json:"kind"`
	Root      string `json:"root"`
	Python    string `json:"python"`
	Pip       string `json:"pip"`
	Recreated bool   `json:"recreated"`
}

// SummaryManifest records the manifest a run installed.
type SummaryManifest struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	Packages int    `json:"packages"`
}

// NewRunSummary starts a summary with a fresh run identifier.
func NewRunSummary() *RunSummary {
	//nolint:exhaustruct // remaining fields are filled as the run progresses
	return &RunSummary{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
}

// Finish stamps the completion time.
func (it *RunSummary) Finish() {
	it.FinishedAt = time.Now().UTC()
}

// Write serializes the summary as indented JSON at path.
func (it *RunSummary) Write(path string) error {
	data, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize run summary: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, summaryFileMode); err != nil {
		return fmt.Errorf("failed to write run summary %q: %w", path, err)
	}
	return nil
}
