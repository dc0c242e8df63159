//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pyforge/internal/domain/commands"
	infraRepos "github.com/rios0rios0/pyforge/internal/infrastructure/repositories"
	"github.com/rios0rios0/pyforge/internal/infrastructure/repositories/toolchain"
	doubles "github.com/rios0rios0/pyforge/test/infrastructure/repositorydoubles"
)

func TestTeardownCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should remove an existing environment", func(t *testing.T) {
		// given
		tmp := t.TempDir()
		settings := testSettings(tmp)

		envSpy := &doubles.SpyEnvironmentRepository{EnvironmentName: "venv", ExistsResult: true}
		environments := infraRepos.NewEnvironmentRegistry()
		environments.Register(envSpy)

		cmd := commands.NewTeardownCommand(testToolchain(), environments)

		// when
		err := cmd.Execute(context.Background(), settings, commands.TeardownOptions{})

		// then
		require.NoError(t, err)
		require.Len(t, envSpy.RemovedSpecs, 1)
		assert.Equal(t, settings.Environment.Root, envSpy.RemovedSpecs[0].Root)
	})

	t.Run("should do nothing when no environment exists", func(t *testing.T) {
		// given
		envSpy := &doubles.SpyEnvironmentRepository{EnvironmentName: "venv", ExistsResult: false}
		environments := infraRepos.NewEnvironmentRegistry()
		environments.Register(envSpy)

		cmd := commands.NewTeardownCommand(testToolchain(), environments)

		// when
		err := cmd.Execute(context.Background(), testSettings(t.TempDir()), commands.TeardownOptions{})

		// then
		require.NoError(t, err)
		assert.Empty(t, envSpy.RemovedSpecs)
	})

	t.Run("should not remove anything on dry run", func(t *testing.T) {
		// given
		envSpy := &doubles.SpyEnvironmentRepository{EnvironmentName: "venv", ExistsResult: true}
		environments := infraRepos.NewEnvironmentRegistry()
		environments.Register(envSpy)

		cmd := commands.NewTeardownCommand(testToolchain(), environments)

		// when
		err := cmd.Execute(context.Background(), testSettings(t.TempDir()), commands.TeardownOptions{DryRun: true})

		// then
		require.NoError(t, err)
		assert.Empty(t, envSpy.RemovedSpecs)
	})

	t.Run("should hand the conda binary to the conda repository", func(t *testing.T) {
		// given
		condaSpy := &doubles.SpyEnvironmentRepository{EnvironmentName: "conda", ExistsResult: true}
		environments := infraRepos.NewEnvironmentRegistry()
		environments.Register(condaSpy)

		cmd := commands.NewTeardownCommand(testToolchain(), environments)

		// when
		err := cmd.Execute(context.Background(), testSettings(t.TempDir()), commands.TeardownOptions{Conda: true})

		// then
		require.NoError(t, err)
		require.Len(t, condaSpy.RemovedSpecs, 1)
		assert.Equal(t, "/opt/conda/bin/conda", condaSpy.RemovedSpecs[0].CondaBinary)
	})

	t.Run("should remove a conda environment even when conda itself is gone", func(t *testing.T) {
		// given
		condaSpy := &doubles.SpyEnvironmentRepository{EnvironmentName: "conda", ExistsResult: true}
		environments := infraRepos.NewEnvironmentRegistry()
		environments.Register(condaSpy)

		stub := testToolchain()
		stub.CondaTool = nil
		stub.CondaErr = toolchain.ErrCondaNotFound

		cmd := commands.NewTeardownCommand(stub, environments)

		// when
		err := cmd.Execute(context.Background(), testSettings(t.TempDir()), commands.TeardownOptions{Conda: true})

		// then
		require.NoError(t, err)
		require.Len(t, condaSpy.RemovedSpecs, 1)
		assert.Empty(t, condaSpy.RemovedSpecs[0].CondaBinary)
	})

	t.Run("should fail for an unknown environment kind", func(t *testing.T) {
		// given
		cmd := commands.NewTeardownCommand(testToolchain(), infraRepos.NewEnvironmentRegistry())

		// when
		err := cmd.Execute(context.Background(), testSettings(t.TempDir()), commands.TeardownOptions{})

		// then
		require.ErrorContains(t, err, "unsupported environment kind")
	})
}
