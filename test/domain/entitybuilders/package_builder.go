//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/pyforge/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PackageBuilder helps create test packages with a fluent interface.
type PackageBuilder struct {
	*testkit.BaseBuilder
	name       string
	constraint string
	version    string
	line       int
}

// NewPackageBuilder creates a new package builder with sensible defaults.
func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-package",
		constraint:  "==",
		version:     "1.0.0",
		line:        1,
	}
}

// WithName sets the package name.
func (b *PackageBuilder) WithName(name string) *PackageBuilder {
	b.name = name
	return b
}

// WithConstraint sets the version constraint operator.
func (b *PackageBuilder) WithConstraint(constraint string) *PackageBuilder {
	b.constraint = constraint
	return b
}

// WithVersion sets the pinned version.
func (b *PackageBuilder) WithVersion(version string) *PackageBuilder {
	b.version = version
	return b
}

// WithLine sets the manifest line number.
func (b *PackageBuilder) WithLine(line int) *PackageBuilder {
	b.line = line
	return b
}

// Build creates the package (satisfies testkit.Builder interface).
func (b *PackageBuilder) Build() interface{} {
	return b.BuildPackage()
}

// BuildPackage creates the package with a concrete return type.
func (b *PackageBuilder) BuildPackage() entities.Package {
	return entities.Package{
		Name:       b.name,
		Constraint: b.constraint,
		Version:    b.version,
		Line:       b.line,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-package"
	b.constraint = "=="
	b.version = "1.0.0"
	b.line = 1
	return b
}

// Clone creates a deep copy of the PackageBuilder.
func (b *PackageBuilder) Clone() testkit.Builder {
	return &PackageBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		constraint:  b.constraint,
		version:     b.version,
		line:        b.line,
	}
}
