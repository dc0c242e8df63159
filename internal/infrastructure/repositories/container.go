package repositories

import (
	"go.uber.org/dig"

	condaRepo "github.com/rios0rios0/pyforge/internal/infrastructure/repositories/conda"
	manifestRepo "github.com/rios0rios0/pyforge/internal/infrastructure/repositories/manifest"
	pipRepo "github.com/rios0rios0/pyforge/internal/infrastructure/repositories/pip"
	toolchainRepo "github.com/rios0rios0/pyforge/internal/infrastructure/repositories/toolchain"
	venvRepo "github.com/rios0rios0/pyforge/internal/infrastructure/repositories/venv"
	watcherRepo "github.com/rios0rios0/pyforge/internal/infrastructure/repositories/watcher"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register environment registry with all environment implementations
	if err := container.Provide(func() *EnvironmentRegistry {
		reg := NewEnvironmentRegistry()
		reg.Register(venvRepo.NewEnvironmentRepository())
		reg.Register(condaRepo.NewEnvironmentRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(toolchainRepo.NewToolchainRepository); err != nil {
		return err
	}
	if err := container.Provide(pipRepo.NewInstallerRepository); err != nil {
		return err
	}
	if err := container.Provide(manifestRepo.NewManifestRepository); err != nil {
		return err
	}
	if err := container.Provide(watcherRepo.NewWatcherRepository); err != nil {
		return err
	}

	return nil
}
