package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
	"github.com/rios0rios0/pyforge/internal/domain/repositories"
)

const versionProbeTimeout = 10 * time.Second

var (
	ErrInterpreterNotFound = errors.New("python binary not found in PATH or common locations")
	ErrInstallerNotFound   = errors.New("pip binary not found in PATH or common locations")
	ErrCondaNotFound       = errors.New("conda binary not found in PATH or common locations")
)

// versionPattern extracts the numeric version from tool banners such as
// "Python 3.12.1", "pip 24.0 from /usr/lib/..." or "conda 24.1.2".
var versionPattern = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?)`)

// LocalToolchainRepository implements repositories.ToolchainRepository by
// probing PATH and well-known locations on the local machine.
type LocalToolchainRepository struct{}

func NewToolchainRepository() repositories.ToolchainRepository {
	return &LocalToolchainRepository{}
}

// FindInterpreter locates the base Python interpreter. All candidates are
// version-probed and the highest version wins, so a python3.13 sitting in
// /usr/local/bin beats the distribution's older /usr/bin/python3.
func (t *LocalToolchainRepository) FindInterpreter(ctx context.Context) (*entities.Tool, error) {
	candidates := gatherCandidates([]string{"python3", "python"}, pythonCommonPaths())
	if len(candidates) == 0 {
		return nil, ErrInterpreterNotFound
	}

	best := t.pickNewest(ctx, candidates)
	logger.Debugf("[toolchain] Selected interpreter %s", best)
	return best, nil
}

// FindInstaller locates a standalone pip.
func (t *LocalToolchainRepository) FindInstaller(ctx context.Context) (*entities.Tool, error) {
	candidates := gatherCandidates([]string{"pip3", "pip"}, pipCommonPaths())
	if len(candidates) == 0 {
		return nil, ErrInstallerNotFound
	}

	best := t.pickNewest(ctx, candidates)
	logger.Debugf("[toolchain] Selected installer %s", best)
	return best, nil
}

// FindConda locates the conda executable.
func (t *LocalToolchainRepository) FindConda(ctx context.Context) (*entities.Tool, error) {
	candidates := gatherCandidates([]string{"conda", "mamba"}, condaCommonPaths())
	if len(candidates) == 0 {
		return nil, ErrCondaNotFound
	}

	// Prefer discovery order over version here: conda and mamba are
	// interchangeable front-ends and the user's PATH choice wins.
	tool := candidates[0]
	tool.Version = t.probeVersion(ctx, tool.Path)
	logger.Debugf("[toolchain] Selected conda %s", tool)
	return &tool, nil
}

// Probe resolves and version-probes an explicitly configured binary.
func (t *LocalToolchainRepository) Probe(ctx context.Context, name string) (*entities.Tool, error) {
	path := name
	if !filepath.IsAbs(name) {
		resolved, err := exec.LookPath(name)
		if err != nil {
			return nil, fmt.Errorf("binary %q not found in PATH: %w", name, err)
		}
		path = resolved
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("binary %q not usable: %w", name, err)
	}

	return &entities.Tool{
		Name:    filepath.Base(path),
		Path:    path,
		Version: t.probeVersion(ctx, path),
	}, nil
}

// pickNewest version-probes every candidate and returns the highest one.
// Candidates whose version cannot be determined rank below probed ones.
func (t *LocalToolchainRepository) pickNewest(ctx context.Context, candidates []entities.Tool) *entities.Tool {
	best := candidates[0]
	best.Version = t.probeVersion(ctx, best.Path)
	for _, candidate := range candidates[1:] {
		candidate.Version = t.probeVersion(ctx, candidate.Path)
		if semver.Compare("v"+candidate.Version, "v"+best.Version) > 0 {
			best = candidate
		}
	}
	return &best
}

// probeVersion runs "<binary> --version" and extracts the version number.
// Older interpreters print the banner on stderr, so both streams are read.
func (t *LocalToolchainRepository) probeVersion(ctx context.Context, path string) string {
	probeCtx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	output, err := exec.CommandContext(probeCtx, path, "--version").CombinedOutput()
	if err != nil {
		logger.Debugf("[toolchain] Version probe failed for %s: %v", path, err)
		return ""
	}
	return parseVersionOutput(string(output))
}

func parseVersionOutput(output string) string {
	return versionPattern.FindString(strings.TrimSpace(output))
}

// gatherCandidates resolves names on PATH first, then checks the common
// locations, deduplicating binaries reachable both ways.
func gatherCandidates(names []string, commonPaths []string) []entities.Tool {
	seen := make(map[string]bool)
	var candidates []entities.Tool

	appendCandidate := func(name, path string) {
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			path = resolved
		}
		if seen[path] {
			return
		}
		seen[path] = true
		//nolint:exhaustruct // version is filled when the candidate is probed
		candidates = append(candidates, entities.Tool{Name: name, Path: path})
	}

	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			appendCandidate(name, path)
		}
	}
	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			appendCandidate(filepath.Base(path), path)
		}
	}
	return candidates
}

func pythonCommonPaths() []string {
	paths := []string{
		"/usr/bin/python3",
		"/usr/local/bin/python3",
		"/usr/bin/python",
		"/usr/local/bin/python",
	}
	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths,
			filepath.Join(home, ".pyenv", "shims", "python3"),
			filepath.Join(home, ".pyenv", "shims", "python"),
		)
	}
	return paths
}

func pipCommonPaths() []string {
	paths := []string{
		"/usr/bin/pip3",
		"/usr/local/bin/pip3",
		"/usr/bin/pip",
		"/usr/local/bin/pip",
	}
	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths,
			filepath.Join(home, ".pyenv", "shims", "pip3"),
			filepath.Join(home, ".pyenv", "shims", "pip"),
		)
	}
	return paths
}

func condaCommonPaths() []string {
	paths := []string{
		"/opt/conda/bin/conda",
		"/usr/local/bin/conda",
	}
	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths,
			filepath.Join(home, "miniconda3", "bin", "conda"),
			filepath.Join(home, "anaconda3", "bin", "conda"),
			filepath.Join(home, "miniforge3", "bin", "conda"),
		)
	}
	return paths
}
