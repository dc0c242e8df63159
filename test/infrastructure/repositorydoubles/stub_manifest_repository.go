//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/pyforge/internal/domain/entities"
	"github.com/rios0rios0/pyforge/internal/domain/repositories"
)

// StubManifestRepository implements repositories.ManifestRepository with a
// canned manifest, recording the requested paths.
type StubManifestRepository struct {
	ManifestResult *entities.Manifest
	LoadErr        error
	LoadedPaths    []string
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (m *StubManifestRepository) Load(path string) (*entities.Manifest, error) {
	m.LoadedPaths = append(m.LoadedPaths, path)
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.ManifestResult != nil {
		return m.ManifestResult, nil
	}
	return &entities.Manifest{Path: path, Format: entities.FormatRequirements, Packages: nil}, nil
}
