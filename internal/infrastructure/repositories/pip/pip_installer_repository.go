package pip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
	"github.com/rios0rios0/pyforge/internal/domain/repositories"
)

const installerName = "pip"

// PipInstallerRepository implements repositories.InstallerRepository by
// driving the pip binary inside an environment. Every invocation runs with
// the environment's activation overlay so pip resolves against the
// environment, never the system interpreter.
type PipInstallerRepository struct{}

func NewInstallerRepository() repositories.InstallerRepository {
	return &PipInstallerRepository{}
}

func (p *PipInstallerRepository) Name() string { return installerName }

// Install installs the manifest into the environment. A failing pip
// self-upgrade is tolerated, a failing dependency install is not.
func (p *PipInstallerRepository) Install(
	ctx context.Context,
	environment *entities.Environment,
	opts entities.InstallOptions,
) error {
	if opts.UpgradePip {
		logger.Infof("[pip] Upgrading pip in %s", environment.Root)
		cmd := p.command(ctx, environment, "install", "--upgrade", "pip")
		if output, err := cmd.CombinedOutput(); err != nil {
			logger.Warnf("[pip] pip self-upgrade failed: %v\n%s (continuing)", err, output)
		}
	}

	args := installArgs(opts)
	if len(args) == 0 {
		return errors.New("nothing to install: no manifest path and no specs")
	}

	logger.Infof("[pip] Installing dependencies into %s", environment.Root)
	cmd := p.command(ctx, environment, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("pip install failed: %w\nOutput:\n%s", err, output)
	}
	return nil
}

// Outdated lists installed packages running behind their latest release,
// using pip's JSON listing. Only stdout is parsed, pip prints progress and
// warnings on stderr.
func (p *PipInstallerRepository) Outdated(
	ctx context.Context,
	environment *entities.Environment,
) ([]entities.OutdatedPackage, error) {
	cmd := p.command(ctx, environment, "list", "--outdated", "--format=json", "--disable-pip-version-check")
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("pip list --outdated failed: %w\nOutput:\n%s", err, exitErr.Stderr)
		}
		return nil, fmt.Errorf("pip list --outdated failed: %w", err)
	}
	return parseOutdated(output)
}

func (p *PipInstallerRepository) command(
	ctx context.Context,
	environment *entities.Environment,
	args ...string,
) *exec.Cmd {
	cmd := exec.CommandContext(ctx, environment.Pip, args...)
	cmd.Env = entities.NewActivation(*environment).Environ()
	return cmd
}

func installArgs(opts entities.InstallOptions) []string {
	args := []string{"install"}
	if opts.IndexURL != "" {
		args = append(args, "--index-url", opts.IndexURL)
	}
	args = append(args, opts.ExtraArgs...)

	switch {
	case opts.ManifestPath != "":
		return append(args, "-r", opts.ManifestPath)
	case len(opts.Specs) > 0:
		return append(args, opts.Specs...)
	default:
		return nil
	}
}

// outdatedEntry matches one element of "pip list --outdated --format=json".
type outdatedEntry struct {
	Name          string `json:"name"`
	Version       string `json:"version"`
	LatestVersion string `json:"latest_version"`
}

func parseOutdated(output []byte) ([]entities.OutdatedPackage, error) {
	var entries []outdatedEntry
	if err := json.Unmarshal(output, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse pip outdated listing: %w", err)
	}

	packages := make([]entities.OutdatedPackage, 0, len(entries))
	for _, entry := range entries {
		packages = append(packages, entities.OutdatedPackage{
			Name:    entry.Name,
			Current: entry.Version,
			Latest:  entry.LatestVersion,
		})
	}
	return packages, nil
}
