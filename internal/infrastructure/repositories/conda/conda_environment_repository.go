package conda

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

const environmentName = "conda"

// ErrRootNotEmpty is returned when the configured root holds something that
// is not a conda environment. Replacing it would destroy user data.
var ErrRootNotEmpty = errors.New("root directory exists but is not a conda environment")

// CondaEnvironmentRepository implements repositories.EnvironmentRepository
// using prefix-based conda environments (conda create --prefix).
type CondaEnvironmentRepository struct{}

func NewEnvironmentRepository() repositories.EnvironmentRepository {
	return &CondaEnvironmentRepository{}
}

func (c *CondaEnvironmentRepository) Name() string { return environmentName }

// Exists reports whether root holds a conda environment. The conda-meta
// directory is the marker every conda environment carries.
func (c *CondaEnvironmentRepository) Exists(root string) bool {
	info, err := os.Stat(filepath.Join(root, "conda-meta"))
	return err == nil && info.IsDir()
}

// Create provisions a fresh conda environment at spec.Root. A pre-existing
// environment is removed first, so repeated runs converge to a clean state.
// The python pin from the spec is passed through to conda, an empty pin
// installs the newest python conda offers.
func (c *CondaEnvironmentRepository) Create(
	ctx context.Context,
	spec entities.EnvironmentSpec,
) (*entities.Environment, error) {
	if spec.CondaBinary == "" {
		return nil, errors.New("conda creation requires the conda binary")
	}

	if err := c.Remove(ctx, spec); err != nil {
		return nil, err
	}

	pythonSpec := "python"
	if spec.PythonVersion != "" {
		pythonSpec = "python=" + spec.PythonVersion
	}

	logger.Infof("[conda] Creating environment at %s (%s)", spec.Root, pythonSpec)
	cmd := exec.CommandContext(ctx, spec.CondaBinary,
		"create", "--yes", "--quiet", "--prefix", spec.Root, pythonSpec, "pip")
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("conda creation failed: %w\nOutput:\n%s", err, output)
	}

	return entities.DescribeEnvironment(entities.KindConda, spec.Root), nil
}

// Describe resolves the tool paths of an existing environment.
func (c *CondaEnvironmentRepository) Describe(spec entities.EnvironmentSpec) (*entities.Environment, error) {
	if !c.Exists(spec.Root) {
		return nil, fmt.Errorf("no conda environment at %q", spec.Root)
	}
	return entities.DescribeEnvironment(entities.KindConda, spec.Root), nil
}

// Remove deletes the environment at spec.Root, through conda when a binary
// is known so its package cache bookkeeping stays consistent, directly
// otherwise. An absent or empty root is a no-op.
func (c *CondaEnvironmentRepository) Remove(ctx context.Context, spec entities.EnvironmentSpec) error {
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

	if !c.Exists(spec.Root) {
		entries, readErr := os.ReadDir(spec.Root)
		if readErr != nil {
			return fmt.Errorf("failed to read directory %q: %w", spec.Root, readErr)
		}
		if len(entries) > 0 {
			return fmt.Errorf("%w: %q", ErrRootNotEmpty, spec.Root)
		}
	}

	logger.Infof("[conda] Removing environment at %s", spec.Root)
	if spec.CondaBinary != "" && c.Exists(spec.Root) {
		cmd := exec.CommandContext(ctx, spec.CondaBinary,
			"env", "remove", "--yes", "--quiet", "--prefix", spec.Root)
		if output, runErr := cmd.CombinedOutput(); runErr != nil {
			logger.Warnf("[conda] conda env remove failed: %v\n%s (falling back to direct removal)", runErr, output)
		}
	}

	// conda leaves the prefix directory behind in some versions
	if err := os.RemoveAll(spec.Root); err != nil {
		return fmt.Errorf("failed to remove environment %q: %w", spec.Root, err)
	}
	return nil
}
