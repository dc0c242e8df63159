package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
	"github.com/rios0rios0/pyforge/internal/domain/repositories"
)

// versionPattern matches version specifiers like ==1.2.3, >=1.2.3, ~=1.2.3.
var versionPattern = regexp.MustCompile(`^([a-zA-Z0-9._-]+)\s*([<>=!~]+)\s*([\d.]+.*)$`)

// simplePattern matches bare package names without a version.
var simplePattern = regexp.MustCompile(`^([a-zA-Z0-9._-]+)\s*$`)

// FileManifestRepository implements repositories.ManifestRepository reading
// manifests from the local filesystem. Requirements files and pyproject.toml
// are told apart by extension.
type FileManifestRepository struct{}

func NewManifestRepository() repositories.ManifestRepository {
	return &FileManifestRepository{}
}

func (m *FileManifestRepository) Load(path string) (*entities.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	if filepath.Ext(path) == ".toml" {
		packages, parseErr := parsePyproject(data)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse manifest %q: %w", path, parseErr)
		}
		return &entities.Manifest{Path: path, Format: entities.FormatPyproject, Packages: packages}, nil
	}

	return &entities.Manifest{
		Path:     path,
		Format:   entities.FormatRequirements,
		Packages: parseRequirements(string(data)),
	}, nil
}

// parseRequirements extracts packages from requirements.txt content. Empty
// lines, comments, and pip option lines (-r, --index-url, ...) are skipped.
func parseRequirements(content string) []entities.Package {
	var packages []entities.Package

	for lineNum, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		if idx := strings.Index(line, "#"); idx > 0 {
			line = strings.TrimSpace(line[:idx])
		}
		line = stripExtras(line)

		name, constraint, version := parseVersionSpec(line)
		if name == "" {
			continue
		}
		packages = append(packages, entities.Package{
			Name:       strings.ToLower(name), // the package index is case-insensitive
			Constraint: constraint,
			Version:    version,
			Line:       lineNum + 1,
		})
	}

	return packages
}

func parseVersionSpec(line string) (name, constraint, version string) {
	if matches := versionPattern.FindStringSubmatch(line); matches != nil {
		return matches[1], matches[2], matches[3]
	}
	if matches := simplePattern.FindStringSubmatch(line); matches != nil {
		return matches[1], "", ""
	}
	return "", "", ""
}

// stripExtras removes extras markers like "requests[security]".
func stripExtras(line string) string {
	idx := strings.Index(line, "[")
	if idx <= 0 {
		return line
	}
	bracketEnd := strings.Index(line, "]")
	if bracketEnd <= idx {
		return line
	}
	return strings.TrimSpace(line[:idx] + line[bracketEnd+1:])
}

// pyproject mirrors the subset of pyproject.toml carrying dependencies,
// both PEP 621 and Poetry style.
type pyproject struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func parsePyproject(content []byte) ([]entities.Package, error) {
	var proj pyproject
	if err := toml.Unmarshal(content, &proj); err != nil {
		return nil, err
	}

	var packages []entities.Package

	for _, dep := range proj.Project.Dependencies {
		if pkg, ok := parsePEP508(dep); ok {
			packages = append(packages, pkg)
		}
	}

	for name, value := range proj.Tool.Poetry.Dependencies {
		if name == "python" {
			continue // the interpreter constraint, not a package
		}
		//nolint:exhaustruct // pyproject entries carry no line numbers
		packages = append(packages, entities.Package{
			Name:       strings.ToLower(name),
			Constraint: "==",
			Version:    extractPoetryVersion(value),
		})
	}

	return packages, nil
}

// parsePEP508 parses a PEP 508 dependency specification such as
// "requests>=2.28.0", "flask[async]>=2.0" or "django==4.2; python_version >= '3.8'".
func parsePEP508(spec string) (entities.Package, bool) {
	if idx := strings.Index(spec, ";"); idx > 0 {
		spec = spec[:idx] // drop environment markers
	}
	spec = stripExtras(strings.TrimSpace(spec))

	name, constraint, version := parseVersionSpec(spec)
	if name == "" {
		//nolint:exhaustruct // zero value for the no-match case
		return entities.Package{}, false
	}
	//nolint:exhaustruct // pyproject entries carry no line numbers
	return entities.Package{
		Name:       strings.ToLower(name),
		Constraint: constraint,
		Version:    version,
	}, true
}

func extractPoetryVersion(value any) string {
	switch v := value.(type) {
	case string:
		v = strings.TrimPrefix(v, "^")
		v = strings.TrimPrefix(v, "~")
		return v
	case map[string]any:
		if version, ok := v["version"].(string); ok {
			version = strings.TrimPrefix(version, "^")
			version = strings.TrimPrefix(version, "~")
			return version
		}
	}
	return ""
}
