package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
	"github.com/rios0rios0/pyforge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/pyforge/internal/infrastructure/repositories"
)

// Sync is the interface for the sync command (the full provisioning pipeline).
type Sync interface {
	Execute(ctx context.Context, settings *entities.Settings, opts SyncOptions) error
}

// SyncOptions holds runtime options for a single provisioning run.
type SyncOptions struct {
	DryRun   bool
	Verbose  bool
	Conda    bool   // force conda mode (CLI override)
	Root     string // environment root override
	Manifest string // manifest path override
	Report   string // outdated report path override
	Summary  string // when set, write a run summary JSON here
}

// SyncCommand orchestrates the full provisioning flow:
// load manifest -> discover toolchain -> recreate environment ->
// install dependencies -> report outdated packages.
type SyncCommand struct {
	toolchain    repositories.ToolchainRepository
	environments *infraRepos.EnvironmentRegistry
	installer    repositories.InstallerRepository
	manifests    repositories.ManifestRepository
}

// NewSyncCommand creates a new SyncCommand with the given dependencies.
func NewSyncCommand(
	toolchain repositories.ToolchainRepository,
	environments *infraRepos.EnvironmentRegistry,
	installer repositories.InstallerRepository,
	manifests repositories.ManifestRepository,
) *SyncCommand {
	return &SyncCommand{
		toolchain:    toolchain,
		environments: environments,
		installer:    installer,
		manifests:    manifests,
	}
}

// Execute runs the provisioning pipeline. Toolchain discovery happens before
// anything touches the disk, so a missing interpreter or installer fails the
// run without leaving a half-created environment behind.
func (it *SyncCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts SyncOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	kind := resolveKind(settings, opts.Conda)
	root := resolveValue(opts.Root, settings.Environment.Root)
	manifestPath := resolveValue(opts.Manifest, settings.Manifest)
	reportPath := resolveValue(opts.Report, settings.Report)

	summary := entities.NewRunSummary()

	manifest, err := it.manifests.Load(manifestPath)
	if err != nil {
		return err
	}
	logger.Infof("[sync] Manifest %s: %d packages", manifest.Path, len(manifest.Packages))

	environmentRepo := it.environments.Get(string(kind))
	if environmentRepo == nil {
		return fmt.Errorf("unsupported environment kind %q", kind)
	}

	spec, err := it.resolveSpec(ctx, kind, root, settings)
	if err != nil {
		return err
	}

	if opts.DryRun {
		logDryRun(kind, root, manifest)
		return nil
	}

	recreated := environmentRepo.Exists(root)
	createCtx, cancelCreate := context.WithTimeout(ctx, settings.Timeouts.CreateTimeout())
	defer cancelCreate()
	environment, createErr := environmentRepo.Create(createCtx, spec)
	if createErr != nil {
		return fmt.Errorf("failed to create %s environment: %w", kind, createErr)
	}
	logger.Infof("[sync] Environment ready at %s", environment.Root)

	// Keep the environment active for the whole installation sequence and
	// hand the previous variables back afterwards.
	activation := entities.NewActivation(*environment)
	if applyErr := activation.Apply(); applyErr != nil {
		return fmt.Errorf("failed to activate environment: %w", applyErr)
	}
	defer func() {
		if restoreErr := activation.Restore(); restoreErr != nil {
			logger.Warnf("[sync] Failed to restore environment variables: %v", restoreErr)
		}
	}()

	installCtx, cancelInstall := context.WithTimeout(ctx, settings.Timeouts.InstallTimeout())
	defer cancelInstall()
	if installErr := it.installer.Install(installCtx, environment, installOptions(settings, manifest)); installErr != nil {
		return installErr
	}

	outdatedCtx, cancelOutdated := context.WithTimeout(ctx, settings.Timeouts.OutdatedTimeout())
	defer cancelOutdated()
	outdated, outdatedErr := it.installer.Outdated(outdatedCtx, environment)
	if outdatedErr != nil {
		return outdatedErr
	}

	report, reportErr := publishReport("sync", reportPath, outdated, it.installer.Name())
	if reportErr != nil {
		return reportErr
	}

	if opts.Summary != "" {
		summary.Environment = entities.SummaryEnvironment{
			Kind:      string(kind),
			Root:      environment.Root,
			Python:    environment.Python,
			Pip:       environment.Pip,
			Recreated: recreated,
		}
		summary.Manifest = entities.SummaryManifest{
			Path:     manifest.Path,
			Format:   string(manifest.Format),
			Packages: len(manifest.Packages),
		}
		summary.Outdated = len(report)
		if len(report) > 0 {
			summary.ReportPath = reportPath
		}
		summary.Finish()
		if writeErr := summary.Write(opts.Summary); writeErr != nil {
			return writeErr
		}
		logger.Infof("[sync] Run summary written to %s", opts.Summary)
	}

	return nil
}

// resolveSpec discovers the executables the selected environment kind needs
// and fails when a required one is missing.
func (it *SyncCommand) resolveSpec(
	ctx context.Context,
	kind entities.EnvironmentKind,
	root string,
	settings *entities.Settings,
) (entities.EnvironmentSpec, error) {
	//nolint:exhaustruct // tool fields are filled per kind below
	spec := entities.EnvironmentSpec{Root: root}

	if kind == entities.KindConda {
		condaTool, err := findCondaTool(ctx, it.toolchain, settings)
		if err != nil {
			return spec, err
		}
		logger.Infof("[sync] Using conda: %s", condaTool)
		spec.CondaBinary = condaTool.Path
		spec.PythonVersion = settings.Conda.Python
		return spec, nil
	}

	interpreter, err := findInterpreterTool(ctx, it.toolchain, settings)
	if err != nil {
		return spec, err
	}
	logger.Infof("[sync] Using interpreter: %s", interpreter)

	// A standalone pip is part of the required toolchain even though the
	// fresh environment brings its own copy.
	installer, err := it.toolchain.FindInstaller(ctx)
	if err != nil {
		return spec, err
	}
	logger.Infof("[sync] Using installer: %s", installer)

	spec.Interpreter = interpreter.Path
	return spec, nil
}

func logDryRun(kind entities.EnvironmentKind, root string, manifest *entities.Manifest) {
	logger.Infof(
		"[sync] [DRY RUN] Would recreate %s environment at %s and install %d packages from %s",
		kind, root, len(manifest.Packages), manifest.Path,
	)
}

// installOptions builds the installer invocation for the manifest. A
// requirements manifest installs through the file, a pyproject manifest
// through its resolved specs.
func installOptions(settings *entities.Settings, manifest *entities.Manifest) entities.InstallOptions {
	//nolint:exhaustruct // manifest-dependent fields are set below
	opts := entities.InstallOptions{
		IndexURL:   settings.Install.IndexURL,
		ExtraArgs:  settings.Install.ExtraArgs,
		UpgradePip: settings.Install.UpgradePip,
	}

	if manifest.Format == entities.FormatPyproject {
		specs := make([]string, 0, len(manifest.Packages))
		for _, pkg := range manifest.Packages {
			specs = append(specs, pkg.Spec())
		}
		opts.Specs = specs
		return opts
	}

	opts.ManifestPath = manifest.Path
	return opts
}

// publishReport writes (or removes) the outdated report and logs the result
// under the calling command's component tag.
func publishReport(
	component string,
	reportPath string,
	outdated []entities.OutdatedPackage,
	installerName string,
) (entities.OutdatedReport, error) {
	report := entities.NewOutdatedReport(outdated, installerName)
	if err := entities.WriteOutdatedReport(reportPath, report); err != nil {
		return nil, err
	}

	if len(report) == 0 {
		logger.Infof("[%s] All dependencies are up to date", component)
	} else {
		logger.Infof("[%s] %d outdated packages written to %s", component, len(report), reportPath)
		for name, versions := range report {
			logger.Debugf("[%s]   %s: %s -> %s", component, name, versions.Current, versions.Latest)
		}
	}
	return report, nil
}

func resolveKind(settings *entities.Settings, condaFlag bool) entities.EnvironmentKind {
	if condaFlag {
		return entities.KindConda
	}
	return settings.Kind()
}

func resolveValue(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

// findInterpreterTool honors an explicitly configured interpreter before
// falling back to discovery.
func findInterpreterTool(
	ctx context.Context,
	toolchain repositories.ToolchainRepository,
	settings *entities.Settings,
) (*entities.Tool, error) {
	if settings.Interpreter != "" {
		return toolchain.Probe(ctx, settings.Interpreter)
	}
	return toolchain.FindInterpreter(ctx)
}

// findCondaTool honors an explicitly configured conda binary before falling
// back to discovery.
func findCondaTool(
	ctx context.Context,
	toolchain repositories.ToolchainRepository,
	settings *entities.Settings,
) (*entities.Tool, error) {
	if settings.Conda.Binary != "" {
		return toolchain.Probe(ctx, settings.Conda.Binary)
	}
	return toolchain.FindConda(ctx)
}
