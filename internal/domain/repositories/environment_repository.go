package repositories

import (
	"context"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

// EnvironmentRepository abstracts a Python environment flavor (virtualenv, conda).
// Each implementation owns the full lifecycle: detection, creation, and removal.
// Creation always starts from a clean root, so repeated provisioning of the same
// root converges to the same state.
type EnvironmentRepository interface {
	// Name returns the environment kind identifier (e.g. "venv", "conda").
	Name() string

	// Exists reports whether an environment of this kind is present at root.
	Exists(root string) bool

	// Create provisions a fresh environment at spec.Root, removing any
	// pre-existing environment there first.
	Create(ctx context.Context, spec entities.EnvironmentSpec) (*entities.Environment, error)

	// Describe resolves the tool paths of an existing environment without
	// touching it. It fails when no environment is present at spec.Root.
	Describe(spec entities.EnvironmentSpec) (*entities.Environment, error)

	// Remove deletes the environment at spec.Root. Removing an absent
	// environment is a no-op.
	Remove(ctx context.Context, spec entities.EnvironmentSpec) error
}
