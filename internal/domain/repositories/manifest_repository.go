package repositories

import (
	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

// ManifestRepository loads requirement manifests from disk.
type ManifestRepository interface {
	// Load reads and parses the manifest at path, picking the parser from
	// the file name.
	Load(path string) (*entities.Manifest, error)
}
