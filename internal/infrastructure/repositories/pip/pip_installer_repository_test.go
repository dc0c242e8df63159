package pip //nolint:testpackage // tests unexported functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

func TestPipInstaller_Name(t *testing.T) {
	t.Parallel()

	t.Run("should return pip", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &PipInstallerRepository{}

		// then
		assert.Equal(t, "pip", repo.Name())
	})
}

func TestInstallArgs(t *testing.T) {
	t.Parallel()

	t.Run("should install from a requirements manifest", func(t *testing.T) {
		t.Parallel()

		// given
		opts := entities.InstallOptions{ManifestPath: "requirements.txt"}

		// then
		assert.Equal(t, []string{"install", "-r", "requirements.txt"}, installArgs(opts))
	})

	t.Run("should install direct specs when no manifest path is given", func(t *testing.T) {
		t.Parallel()

		// given
		opts := entities.InstallOptions{Specs: []string{"requests==2.31.0", "flask>=2.0"}}

		// then
		assert.Equal(t, []string{"install", "requests==2.31.0", "flask>=2.0"}, installArgs(opts))
	})

	t.Run("should place the index url and extra args before the target", func(t *testing.T) {
		t.Parallel()

		// given
		opts := entities.InstallOptions{
			ManifestPath: "requirements.txt",
			IndexURL:     "https://pypi.internal/simple",
			ExtraArgs:    []string{"--no-cache-dir"},
		}

		// then
		assert.Equal(t, []string{
			"install",
			"--index-url", "https://pypi.internal/simple",
			"--no-cache-dir",
			"-r", "requirements.txt",
		}, installArgs(opts))
	})

	t.Run("should return nothing when there is no target", func(t *testing.T) {
		t.Parallel()

		// given
		opts := entities.InstallOptions{}

		// then
		assert.Nil(t, installArgs(opts))
	})
}

func TestParseOutdated(t *testing.T) {
	t.Parallel()

	t.Run("should parse the pip json listing", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte(`[
			{"name": "requests", "version": "2.31.0", "latest_version": "2.32.3", "latest_filetype": "wheel"},
			{"name": "flask", "version": "2.3.2", "latest_version": "3.0.3", "latest_filetype": "wheel"}
		]`)

		// when
		packages, err := parseOutdated(output)

		// then
		require.NoError(t, err)
		require.Len(t, packages, 2)
		assert.Equal(t, entities.OutdatedPackage{Name: "requests", Current: "2.31.0", Latest: "2.32.3"}, packages[0])
		assert.Equal(t, entities.OutdatedPackage{Name: "flask", Current: "2.3.2", Latest: "3.0.3"}, packages[1])
	})

	t.Run("should handle an empty listing", func(t *testing.T) {
		t.Parallel()

		// when
		packages, err := parseOutdated([]byte("[]"))

		// then
		require.NoError(t, err)
		assert.Empty(t, packages)
	})

	t.Run("should fail on non-json output", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := parseOutdated([]byte("WARNING: pip is being invoked incorrectly"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})
}
