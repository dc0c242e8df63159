package entities

import "strings"

// ManifestFormat identifies the manifest flavor on disk.
type ManifestFormat string

const (
	FormatRequirements ManifestFormat = "requirements"
	FormatPyproject    ManifestFormat = "pyproject"
)

// Package is a single requirement parsed from a manifest.
type Package struct {
	Name       string
	Constraint string // version operator (==, >=, ~=, ...), empty when unpinned
	Version    string
	Line       int // line number in the manifest, zero when unknown
}

// Spec renders the package back into a pip requirement specifier.
func (p Package) Spec() string {
	if p.Version == "" {
		return p.Name
	}
	constraint := p.Constraint
	if constraint == "" {
		constraint = "=="
	}
	return p.Name + constraint + p.Version
}

// Manifest is a parsed requirements manifest.
type Manifest struct {
	Path     string
	Format   ManifestFormat
	Packages []Package
}

// Names returns the package names in manifest order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Packages))
	for _, pkg := range m.Packages {
		names = append(names, pkg.Name)
	}
	return names
}

// Has reports whether the manifest pins the given package,
// comparing normalized names.
func (m *Manifest) Has(name string) bool {
	normalized := NormalizePackageName(name)
	for _, pkg := range m.Packages {
		if NormalizePackageName(pkg.Name) == normalized {
			return true
		}
	}
	return false
}

// NormalizePackageName folds a distribution name the way PyPI compares them:
// case-insensitive, with runs of "-", "_" and "." treated as equivalent.
func NormalizePackageName(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	lowered = strings.ReplaceAll(lowered, "_", "-")
	lowered = strings.ReplaceAll(lowered, ".", "-")
	for strings.Contains(lowered, "--") {
		lowered = strings.ReplaceAll(lowered, "--", "-")
	}
	return lowered
}
