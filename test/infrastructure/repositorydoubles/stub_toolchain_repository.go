//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
	"github.com/rios0rios0/pyforge/internal/domain/repositories"
)

// StubToolchainRepository implements repositories.ToolchainRepository with
// canned results.
type StubToolchainRepository struct {
	// --- FindInterpreter ---
	InterpreterTool *entities.Tool
	InterpreterErr  error

	// --- FindInstaller ---
	InstallerTool *entities.Tool
	InstallerErr  error

	// --- FindConda ---
	CondaTool *entities.Tool
	CondaErr  error

	// --- Probe ---
	ProbeTool   *entities.Tool
	ProbeErr    error
	ProbedNames []string

	// --- LatestPythonVersion ---
	LatestVersion string
	LatestErr     error
}

var _ repositories.ToolchainRepository = (*StubToolchainRepository)(nil)

func (t *StubToolchainRepository) FindInterpreter(_ context.Context) (*entities.Tool, error) {
	return t.InterpreterTool, t.InterpreterErr
}

func (t *StubToolchainRepository) FindInstaller(_ context.Context) (*entities.Tool, error) {
	return t.InstallerTool, t.InstallerErr
}

func (t *StubToolchainRepository) FindConda(_ context.Context) (*entities.Tool, error) {
	return t.CondaTool, t.CondaErr
}

func (t *StubToolchainRepository) Probe(_ context.Context, name string) (*entities.Tool, error) {
	t.ProbedNames = append(t.ProbedNames, name)
	if t.ProbeErr != nil {
		return nil, t.ProbeErr
	}
	if t.ProbeTool != nil {
		return t.ProbeTool, nil
	}
	return &entities.Tool{Name: name, Path: name, Version: "0.0.0"}, nil
}

func (t *StubToolchainRepository) LatestPythonVersion(_ context.Context) (string, error) {
	return t.LatestVersion, t.LatestErr
}
