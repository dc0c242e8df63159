//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
	"github.com/rios0rios0/pyforge/internal/domain/repositories"
)

// SpyInstallerRepository implements repositories.InstallerRepository as a
// configurable spy.
type SpyInstallerRepository struct {
	// --- identity ---
	InstallerName string

	// --- Install ---
	InstallErr   error
	InstallCalls []InstallCall

	// --- Outdated ---
	OutdatedResult []entities.OutdatedPackage
	OutdatedErr    error
	OutdatedCalls  int
}

// InstallCall records a single invocation of Install.
type InstallCall struct {
	Environment *entities.Environment
	Opts        entities.InstallOptions
}

var _ repositories.InstallerRepository = (*SpyInstallerRepository)(nil)

func (i *SpyInstallerRepository) Name() string {
	if i.InstallerName == "" {
		return "pip"
	}
	return i.InstallerName
}

func (i *SpyInstallerRepository) Install(
	_ context.Context,
	environment *entities.Environment,
	opts entities.InstallOptions,
) error {
	i.InstallCalls = append(i.InstallCalls, InstallCall{Environment: environment, Opts: opts})
	return i.InstallErr
}

func (i *SpyInstallerRepository) Outdated(
	_ context.Context,
	_ *entities.Environment,
) ([]entities.OutdatedPackage, error) {
	i.OutdatedCalls++
	return i.OutdatedResult, i.OutdatedErr
}
