package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
	"github.com/rios0rios0/pyforge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/pyforge/internal/infrastructure/repositories"
)

// Doctor is the interface for the doctor command.
type Doctor interface {
	Execute(ctx context.Context, settings *entities.Settings, opts DoctorOptions) error
}

// DoctorOptions holds runtime options for the toolchain check.
type DoctorOptions struct {
	Verbose bool
	Conda   bool   // force conda mode (CLI override)
	Root    string // environment root override
}

// DoctorCommand inspects the host toolchain and reports what a sync run
// would find, without changing anything.
type DoctorCommand struct {
	toolchain    repositories.ToolchainRepository
	environments *infraRepos.EnvironmentRegistry
}

// NewDoctorCommand creates a new DoctorCommand with the given dependencies.
func NewDoctorCommand(
	toolchain repositories.ToolchainRepository,
	environments *infraRepos.EnvironmentRegistry,
) *DoctorCommand {
	return &DoctorCommand{
		toolchain:    toolchain,
		environments: environments,
	}
}

type toolCheck struct {
	name     string
	required bool
	find     func(ctx context.Context) (*entities.Tool, error)
}

// Execute probes every tool the configured mode depends on and prints a
// human-readable report. It returns an error when a required tool is
// missing, so the exit code mirrors what a sync run would hit.
func (it *DoctorCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts DoctorOptions,
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

	fmt.Printf("🔍 Checking Python toolchain (%s mode)...\n", kind)
	fmt.Println()

	checks := []toolCheck{
		{
			name:     "python",
			required: kind == entities.KindVenv,
			find: func(ctx context.Context) (*entities.Tool, error) {
				return findInterpreterTool(ctx, it.toolchain, settings)
			},
		},
		{
			name:     "pip",
			required: kind == entities.KindVenv,
			find:     it.toolchain.FindInstaller,
		},
		{
			name:     "conda",
			required: kind == entities.KindConda,
			find: func(ctx context.Context) (*entities.Tool, error) {
				return findCondaTool(ctx, it.toolchain, settings)
			},
		},
	}

	var interpreter *entities.Tool
	var missing []string
	for _, check := range checks {
		tool, err := check.find(ctx)
		if err != nil {
			if check.required {
				fmt.Printf("   ❌ %s: %v\n", check.name, err)
				missing = append(missing, check.name)
			} else {
				fmt.Printf("   ⚠️  %s: not found (not required in %s mode)\n", check.name, kind)
			}
			continue
		}
		fmt.Printf("   ✅ %s: %s\n", check.name, tool)
		if check.name == "python" {
			interpreter = tool
		}
	}

	it.reportEnvironment(environmentRepo, kind, root)
	it.reportFreshness(ctx, interpreter)

	fmt.Println()
	if len(missing) > 0 {
		fmt.Printf("🏁 Toolchain check failed: missing %s\n", strings.Join(missing, ", "))
		return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
	}
	fmt.Println("🏁 Toolchain check passed.")
	return nil
}

func (it *DoctorCommand) reportEnvironment(
	environmentRepo repositories.EnvironmentRepository,
	kind entities.EnvironmentKind,
	root string,
) {
	if !environmentRepo.Exists(root) {
		fmt.Printf("   ⚠️  environment: none at %s (run 'pyforge sync' to create one)\n", root)
		return
	}

	//nolint:exhaustruct // describing an existing environment needs no tools
	environment, err := environmentRepo.Describe(entities.EnvironmentSpec{Root: root})
	if err != nil {
		fmt.Printf("   ❌ environment: %v\n", err)
		return
	}
	fmt.Printf("   ✅ environment: %s environment at %s\n", kind, environment.Root)
}

// reportFreshness compares the interpreter against the newest upstream
// release. Network failures only lose this one line, never the check.
func (it *DoctorCommand) reportFreshness(ctx context.Context, interpreter *entities.Tool) {
	if interpreter == nil || interpreter.Version == "" {
		return
	}

	latest, err := it.toolchain.LatestPythonVersion(ctx)
	if err != nil {
		logger.Debugf("[doctor] Could not fetch the latest Python release: %v", err)
		return
	}

	if semver.Compare("v"+interpreter.Version, "v"+latest) < 0 {
		fmt.Printf("   ⚠️  python %s is behind the latest release %s\n", interpreter.Version, latest)
	} else {
		fmt.Printf("   ✅ python %s is current (latest release: %s)\n", interpreter.Version, latest)
	}
}
