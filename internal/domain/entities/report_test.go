//go:build unit

package entities_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

func TestNewOutdatedReport(t *testing.T) {
	t.Parallel()

	t.Run("should keep outdated packages with their versions", func(t *testing.T) {
		t.Parallel()

		// given
		packages := []entities.OutdatedPackage{
			{Name: "requests", Current: "2.31.0", Latest: "2.32.3"},
			{Name: "flask", Current: "2.3.2", Latest: "3.0.3"},
		}

		// when
		report := entities.NewOutdatedReport(packages, "pip")

		// then
		require.Len(t, report, 2)
		assert.Equal(t, entities.OutdatedVersions{Current: "2.31.0", Latest: "2.32.3"}, report["requests"])
		assert.Equal(t, entities.OutdatedVersions{Current: "2.3.2", Latest: "3.0.3"}, report["flask"])
	})

	t.Run("should exclude the installer itself regardless of case", func(t *testing.T) {
		t.Parallel()

		// given
		packages := []entities.OutdatedPackage{
			{Name: "Pip", Current: "23.0", Latest: "24.0"},
			{Name: "requests", Current: "2.31.0", Latest: "2.32.3"},
		}

		// when
		report := entities.NewOutdatedReport(packages, "pip")

		// then
		require.Len(t, report, 1)
		assert.NotContains(t, report, "Pip")
		assert.Contains(t, report, "requests")
	})

	t.Run("should produce an empty report when everything is current", func(t *testing.T) {
		t.Parallel()

		// when
		report := entities.NewOutdatedReport(nil, "pip")

		// then
		assert.Empty(t, report)
	})
}

func TestWriteOutdatedReport(t *testing.T) {
	t.Parallel()

	t.Run("should write current and latest versions as JSON", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "outdated-dependencies.json")
		report := entities.OutdatedReport{
			"requests": {Current: "2.31.0", Latest: "2.32.3"},
		}

		// when
		err := entities.WriteOutdatedReport(path, report)

		// then
		require.NoError(t, err)
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		var parsed map[string]map[string]string
		require.NoError(t, json.Unmarshal(data, &parsed))
		assert.Equal(t, "2.31.0", parsed["requests"]["current"])
		assert.Equal(t, "2.32.3", parsed["requests"]["latest"])
	})

	t.Run("should not create a file for an empty report", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "outdated-dependencies.json")

		// when
		err := entities.WriteOutdatedReport(path, entities.OutdatedReport{})

		// then
		require.NoError(t, err)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("should remove a stale report when nothing is outdated", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "outdated-dependencies.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"old":{"current":"1.0.0","latest":"2.0.0"}}`), 0o644))

		// when
		err := entities.WriteOutdatedReport(path, nil)

		// then
		require.NoError(t, err)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
