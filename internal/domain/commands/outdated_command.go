package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
	"github.com/rios0rios0/pyforge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/pyforge/internal/infrastructure/repositories"
)

// Outdated is the interface for the outdated command.
type Outdated interface {
	Execute(ctx context.Context, settings *entities.Settings, opts OutdatedOptions) error
}

// OutdatedOptions holds runtime options for the outdated check.
type OutdatedOptions struct {
	Verbose bool
	Conda   bool   // force conda mode (CLI override)
	Root    string // environment root override
	Report  string // outdated report path override
}

// OutdatedCommand refreshes the outdated report against an existing
// environment without touching it otherwise.
type OutdatedCommand struct {
	environments *infraRepos.EnvironmentRegistry
	installer    repositories.InstallerRepository
}

// NewOutdatedCommand creates a new OutdatedCommand with the given dependencies.
func NewOutdatedCommand(
	environments *infraRepos.EnvironmentRegistry,
	installer repositories.InstallerRepository,
) *OutdatedCommand {
	return &OutdatedCommand{
		environments: environments,
		installer:    installer,
	}
}

// Execute lists outdated packages in the existing environment and rewrites
// the report file accordingly.
func (it *OutdatedCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts OutdatedOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	kind := resolveKind(settings, opts.Conda)
	root := resolveValue(opts.Root, settings.Environment.Root)
	reportPath := resolveValue(opts.Report, settings.Report)

	environmentRepo := it.environments.Get(string(kind))
	if environmentRepo == nil {
		return fmt.Errorf("unsupported environment kind %q", kind)
	}

	//nolint:exhaustruct // describing an existing environment needs no tools
	environment, err := environmentRepo.Describe(entities.EnvironmentSpec{Root: root})
	if err != nil {
		return fmt.Errorf("%w (run 'pyforge sync' first)", err)
	}

	outdatedCtx, cancel := context.WithTimeout(ctx, settings.Timeouts.OutdatedTimeout())
	defer cancel()
	outdated, outdatedErr := it.installer.Outdated(outdatedCtx, environment)
	if outdatedErr != nil {
		return outdatedErr
	}

	_, reportErr := publishReport("outdated", reportPath, outdated, it.installer.Name())
	return reportErr
}
