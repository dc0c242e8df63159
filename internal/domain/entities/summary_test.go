//go:build unit

package entities_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

func TestRunSummary(t *testing.T) {
	t.Parallel()

	t.Run("should start with a unique run identifier", func(t *testing.T) {
		t.Parallel()

		// when
		first := entities.NewRunSummary()
		second := entities.NewRunSummary()

		// then
		_, err := uuid.Parse(first.RunID)
		require.NoError(t, err)
		assert.NotEqual(t, first.RunID, second.RunID)
		assert.False(t, first.StartedAt.IsZero())
	})

	t.Run("should write a parseable JSON file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "summary.json")
		summary := entities.NewRunSummary()
		summary.Environment = entities.SummaryEnvironment{
			Kind:      "venv",
			Root:      "/tmp/.venv",
			Python:    "/tmp/.venv/bin/python",
			Pip:       "/tmp/.venv/bin/pip",
			Recreated: true,
		}
		summary.Manifest = entities.SummaryManifest{Path: "requirements.txt", Format: "requirements", Packages: 3}
		summary.Outdated = 1
		summary.Finish()

		// when
		err := summary.Write(path)

		// then
		require.NoError(t, err)
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		var parsed entities.RunSummary
		require.NoError(t, json.Unmarshal(data, &parsed))
		assert.Equal(t, summary.RunID, parsed.RunID)
		assert.Equal(t, "venv", parsed.Environment.Kind)
		assert.Equal(t, 3, parsed.Manifest.Packages)
		assert.False(t, parsed.FinishedAt.IsZero())
	})
}
