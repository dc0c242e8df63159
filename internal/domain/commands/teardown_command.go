package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
	"github.com/rios0rios0/pyforge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/pyforge/internal/infrastructure/repositories"
	"github.com/rios0rios0/pyforge/internal/infrastructure/repositories/toolchain"
)

// Teardown is the interface for the teardown command.
type Teardown interface {
	Execute(ctx context.Context, settings *entities.Settings, opts TeardownOptions) error
}

// TeardownOptions holds runtime options for environment removal.
type TeardownOptions struct {
	DryRun  bool
	Verbose bool
	Conda   bool   // force conda mode (CLI override)
	Root    string // environment root override
}

// TeardownCommand removes a managed environment. Removing an environment
// that does not exist is a no-op, not an error.
type TeardownCommand struct {
	toolchain    repositories.ToolchainRepository
	environments *infraRepos.EnvironmentRegistry
}

// NewTeardownCommand creates a new TeardownCommand with the given dependencies.
func NewTeardownCommand(
	toolchain repositories.ToolchainRepository,
	environments *infraRepos.EnvironmentRegistry,
) *TeardownCommand {
	return &TeardownCommand{
		toolchain:    toolchain,
		environments: environments,
	}
}

// Execute removes the environment at the configured root.
func (it *TeardownCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts TeardownOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	kind := resolveKind(settings, opts.Conda)
	root := resolveValue(opts.Root, settings.Environment.Root)

	environmentRepo := it.environments.Get(string(kind))
	if environmentRepo == nil {
		return fmt.Errorf("unsupported environment kind %q", kind)
	}

	if !environmentRepo.Exists(root) {
		logger.Infof("[teardown] No %s environment at %s, nothing to remove", kind, root)
		return nil
	}

	if opts.DryRun {
		logger.Infof("[teardown] [DRY RUN] Would remove %s environment at %s", kind, root)
		return nil
	}

	//nolint:exhaustruct // only removal-relevant fields matter here
	spec := entities.EnvironmentSpec{Root: root}
	if kind == entities.KindConda {
		spec.CondaBinary = it.condaBinary(ctx, settings)
	}

	if err := environmentRepo.Remove(ctx, spec); err != nil {
		return fmt.Errorf("failed to remove %s environment: %w", kind, err)
	}
	logger.Infof("[teardown] Removed %s environment at %s", kind, root)
	return nil
}

// condaBinary resolves the conda binary for a clean removal. Teardown must
// work even when conda itself is gone, so discovery failures only downgrade
// the removal to a plain directory delete.
func (it *TeardownCommand) condaBinary(ctx context.Context, settings *entities.Settings) string {
	condaTool, err := findCondaTool(ctx, it.toolchain, settings)
	if err != nil {
		if errors.Is(err, toolchain.ErrCondaNotFound) {
			logger.Debugf("[teardown] No conda binary available, removing directly")
		} else {
			logger.Warnf("[teardown] Could not resolve conda binary: %v (continuing)", err)
		}
		return ""
	}
	return condaTool.Path
}
