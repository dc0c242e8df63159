package toolchain //nolint:testpackage // tests unexported functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsActiveRelease(t *testing.T) {
	t.Parallel()

	t.Run("should treat eol false as active", func(t *testing.T) {
		t.Parallel()

		// given
		release := pythonRelease{Cycle: "3.13", Latest: "3.13.2", EOL: false}

		// then
		assert.True(t, isActiveRelease(release))
	})

	t.Run("should treat eol true as inactive", func(t *testing.T) {
		t.Parallel()

		// given
		release := pythonRelease{Cycle: "2.7", Latest: "2.7.18", EOL: true}

		// then
		assert.False(t, isActiveRelease(release))
	})

	t.Run("should treat a future eol date as active", func(t *testing.T) {
		t.Parallel()

		// given
		release := pythonRelease{Cycle: "3.12", Latest: "3.12.8", EOL: "2099-10-01"}

		// then
		assert.True(t, isActiveRelease(release))
	})

	t.Run("should treat a past eol date as inactive", func(t *testing.T) {
		t.Parallel()

		// given
		release := pythonRelease{Cycle: "3.7", Latest: "3.7.17", EOL: "2023-06-27"}

		// then
		assert.False(t, isActiveRelease(release))
	})

	t.Run("should treat an unparseable eol value as inactive", func(t *testing.T) {
		t.Parallel()

		// given
		release := pythonRelease{Cycle: "3.8", Latest: "3.8.19", EOL: "soon"}

		// then
		assert.False(t, isActiveRelease(release))
	})

	t.Run("should treat an unexpected eol type as inactive", func(t *testing.T) {
		t.Parallel()

		// given
		release := pythonRelease{Cycle: "3.9", Latest: "3.9.19", EOL: 42}

		// then
		assert.False(t, isActiveRelease(release))
	})
}
