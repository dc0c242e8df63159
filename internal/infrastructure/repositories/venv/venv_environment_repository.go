package venv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
	"github.com/rios0rios0/pyforge/internal/domain/repositories"
)

const environmentName = "venv"

// ErrRootNotEmpty is returned when the configured root holds something that
// is not a virtual environment. Replacing it would destroy user data.
var ErrRootNotEmpty = errors.New("root directory exists but is not a virtual environment")

// VenvEnvironmentRepository implements repositories.EnvironmentRepository
// using the interpreter's built-in venv module.
type VenvEnvironmentRepository struct{}

func NewEnvironmentRepository() repositories.EnvironmentRepository {
	return &VenvEnvironmentRepository{}
}

func (v *VenvEnvironmentRepository) Name() string { return environmentName }

// Exists reports whether root holds a virtual environment. The pyvenv.cfg
// file is the marker every venv carries.
func (v *VenvEnvironmentRepository) Exists(root string) bool {
	_, err := os.Stat(filepath.Join(root, "pyvenv.cfg"))
	return err == nil
}

// Create provisions a fresh virtual environment at spec.Root. A pre-existing
// environment is removed first, so repeated runs converge to a clean state.
func (v *VenvEnvironmentRepository) Create(
	ctx context.Context,
	spec entities.EnvironmentSpec,
) (*entities.Environment, error) {
	if spec.Interpreter == "" {
		return nil, errors.New("venv creation requires a base interpreter")
	}

	if err := v.Remove(ctx, spec); err != nil {
		return nil, err
	}

	logger.Infof("[venv] Creating environment at %s using %s", spec.Root, spec.Interpreter)
	cmd := exec.CommandContext(ctx, spec.Interpreter, "-m", "venv", spec.Root)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("venv creation failed: %w\nOutput:\n%s", err, output)
	}

	return entities.DescribeEnvironment(entities.KindVenv, spec.Root), nil
}

// Describe resolves the tool paths of an existing environment.
func (v *VenvEnvironmentRepository) Describe(spec entities.EnvironmentSpec) (*entities.Environment, error) {
	if !v.Exists(spec.Root) {
		return nil, fmt.Errorf("no virtual environment at %q", spec.Root)
	}
	return entities.DescribeEnvironment(entities.KindVenv, spec.Root), nil
}

// Remove deletes the environment at spec.Root. An absent or empty root is a
// no-op; a root holding anything other than a virtual environment is refused.
func (v *VenvEnvironmentRepository) Remove(_ context.Context, spec entities.EnvironmentSpec) error {
	info, err := os.Stat(spec.Root)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to inspect %q: %w", spec.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrRootNotEmpty, spec.Root)
	}

	if !v.Exists(spec.Root) {
		empty, emptyErr := isEmptyDir(spec.Root)
		if emptyErr != nil {
			return emptyErr
		}
		if !empty {
			return fmt.Errorf("%w: %q", ErrRootNotEmpty, spec.Root)
		}
	}

	logger.Infof("[venv] Removing environment at %s", spec.Root)
	if err := os.RemoveAll(spec.Root); err != nil {
		return fmt.Errorf("failed to remove environment %q: %w", spec.Root, err)
	}
	return nil
}

func isEmptyDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("failed to read directory %q: %w", path, err)
	}
	return len(entries) == 0, nil
}
