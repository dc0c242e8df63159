package repositories

import (
	"context"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

// ToolchainRepository discovers the external executables the tool depends on.
type ToolchainRepository interface {
	// FindInterpreter locates the base Python interpreter, preferring the
	// highest version among the discovered candidates.
	FindInterpreter(ctx context.Context) (*entities.Tool, error)

	// FindInstaller locates a standalone pip.
	FindInstaller(ctx context.Context) (*entities.Tool, error)

	// FindConda locates the conda executable.
	FindConda(ctx context.Context) (*entities.Tool, error)

	// Probe resolves and version-probes an explicitly configured binary.
	Probe(ctx context.Context, name string) (*entities.Tool, error)

	// LatestPythonVersion returns the newest stable CPython release.
	LatestPythonVersion(ctx context.Context) (string, error)
}
