package repositories

import (
	"context"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

// InstallerRepository abstracts the package installer driving an environment.
type InstallerRepository interface {
	// Name returns the installer identifier (e.g. "pip"). The name is also
	// used to exclude the installer from outdated reports.
	Name() string

	// Install installs the manifest into the environment.
	Install(ctx context.Context, environment *entities.Environment, opts entities.InstallOptions) error

	// Outdated lists installed packages running behind their latest release.
	Outdated(ctx context.Context, environment *entities.Environment) ([]entities.OutdatedPackage, error)
}
