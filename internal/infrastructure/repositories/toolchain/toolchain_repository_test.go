package toolchain //nolint:testpackage // tests unexported functions

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFakeBinary(t *testing.T, dir, name, banner string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake binaries require a POSIX shell")
	}
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\necho \"" + banner + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestParseVersionOutput(t *testing.T) {
	t.Parallel()

	t.Run("should extract the version from tool banners", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "3.12.1", parseVersionOutput("Python 3.12.1\n"))
		assert.Equal(t, "24.0", parseVersionOutput("pip 24.0 from /usr/lib/python3/dist-packages/pip (python 3.12)"))
		assert.Equal(t, "24.1.2", parseVersionOutput("conda 24.1.2"))
		assert.Equal(t, "2.7", parseVersionOutput("Python 2.7"))
	})

	t.Run("should return empty for unrecognized output", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, parseVersionOutput("command not found"))
		assert.Empty(t, parseVersionOutput(""))
	})
}

//nolint:tparallel // subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestGatherCandidates(t *testing.T) {
	t.Run("should find binaries on PATH", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()
		// given
		binDir := t.TempDir()
		writeFakeBinary(t, binDir, "python3", "Python 3.12.1")
		t.Setenv("PATH", binDir)

		// when
		candidates := gatherCandidates([]string{"python3", "python"}, nil)

		// then
		require.Len(t, candidates, 1)
		assert.Equal(t, "python3", candidates[0].Name)
	})

	t.Run("should deduplicate PATH hits and common locations", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()
		// given
		binDir := t.TempDir()
		path := writeFakeBinary(t, binDir, "python3", "Python 3.12.1")
		t.Setenv("PATH", binDir)

		// when
		candidates := gatherCandidates([]string{"python3"}, []string{path})

		// then
		assert.Len(t, candidates, 1)
	})

	t.Run("should fall back to common locations when PATH is empty", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()
		// given
		binDir := t.TempDir()
		path := writeFakeBinary(t, binDir, "python", "Python 3.11.9")
		t.Setenv("PATH", t.TempDir())

		// when
		candidates := gatherCandidates([]string{"python3", "python"}, []string{path})

		// then
		require.Len(t, candidates, 1)
		assert.Equal(t, path, candidates[0].Path)
	})
}

//nolint:tparallel // subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestLocalToolchain_FindInterpreter(t *testing.T) {
	t.Run("should pick the highest version among candidates", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()
		// given
		oldDir := t.TempDir()
		newDir := t.TempDir()
		writeFakeBinary(t, oldDir, "python3", "Python 3.9.18")
		// version high enough to beat any interpreter installed on the host
		newPath := writeFakeBinary(t, newDir, "python", "Python 99.9.9")
		t.Setenv("PATH", oldDir+string(os.PathListSeparator)+newDir)
		t.Setenv("HOME", t.TempDir()) // keep pyenv shims out of the candidate set
		repo := &LocalToolchainRepository{}

		// when
		tool, err := repo.FindInterpreter(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, newPath, tool.Path)
		assert.Equal(t, "99.9.9", tool.Version)
	})
}

//nolint:tparallel // subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestLocalToolchain_Probe(t *testing.T) {
	t.Run("should probe an absolute path", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeFakeBinary(t, t.TempDir(), "python3.12", "Python 3.12.4")
		repo := &LocalToolchainRepository{}

		// when
		tool, err := repo.Probe(context.Background(), path)

		// then
		require.NoError(t, err)
		assert.Equal(t, path, tool.Path)
		assert.Equal(t, "3.12.4", tool.Version)
	})

	t.Run("should fail for a missing absolute path", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &LocalToolchainRepository{}

		// when
		_, err := repo.Probe(context.Background(), filepath.Join(t.TempDir(), "missing-python"))

		// then
		require.Error(t, err)
	})

	t.Run("should fail for a name not on PATH", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()
		// given
		t.Setenv("PATH", t.TempDir())
		repo := &LocalToolchainRepository{}

		// when
		_, err := repo.Probe(context.Background(), "definitely-not-installed")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found in PATH")
	})
}
