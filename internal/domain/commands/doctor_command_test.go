//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pyforge/internal/domain/commands"
	infraRepos "github.com/rios0rios0/pyforge/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/pyforge/test/infrastructure/repositorydoubles"
)

func TestDoctorCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass when every required tool is available", func(t *testing.T) {
		// given
		environments := infraRepos.NewEnvironmentRegistry()
		environments.Register(&doubles.SpyEnvironmentRepository{EnvironmentName: "venv", ExistsResult: true})
		stub := testToolchain()
		stub.LatestVersion = "3.12.4"

		cmd := commands.NewDoctorCommand(stub, environments)

		// when
		err := cmd.Execute(context.Background(), testSettings(t.TempDir()), commands.DoctorOptions{})

		// then
		require.NoError(t, err)
	})

	t.Run("should fail when the interpreter is missing in venv mode", func(t *testing.T) {
		// given
		environments := infraRepos.NewEnvironmentRegistry()
		environments.Register(&doubles.SpyEnvironmentRepository{EnvironmentName: "venv"})
		stub := testToolchain()
		stub.InterpreterTool = nil
		stub.InterpreterErr = errors.New("python binary not found")

		cmd := commands.NewDoctorCommand(stub, environments)

		// when
		err := cmd.Execute(context.Background(), testSettings(t.TempDir()), commands.DoctorOptions{})

		// then
		require.ErrorContains(t, err, "missing required tools: python")
	})

	t.Run("should tolerate a missing conda in venv mode", func(t *testing.T) {
		// given
		environments := infraRepos.NewEnvironmentRegistry()
		environments.Register(&doubles.SpyEnvironmentRepository{EnvironmentName: "venv"})
		stub := testToolchain()
		stub.CondaTool = nil
		stub.CondaErr = errors.New("conda binary not found")
		stub.LatestVersion = "3.12.4"

		cmd := commands.NewDoctorCommand(stub, environments)

		// when
		err := cmd.Execute(context.Background(), testSettings(t.TempDir()), commands.DoctorOptions{})

		// then
		require.NoError(t, err)
	})

	t.Run("should require conda in conda mode", func(t *testing.T) {
		// given
		environments := infraRepos.NewEnvironmentRegistry()
		environments.Register(&doubles.SpyEnvironmentRepository{EnvironmentName: "conda"})
		stub := testToolchain()
		stub.CondaTool = nil
		stub.CondaErr = errors.New("conda binary not found")
		stub.LatestVersion = "3.12.4"

		cmd := commands.NewDoctorCommand(stub, environments)

		// when
		err := cmd.Execute(context.Background(), testSettings(t.TempDir()), commands.DoctorOptions{Conda: true})

		// then
		require.ErrorContains(t, err, "missing required tools: conda")
	})

	t.Run("should tolerate a failing release lookup", func(t *testing.T) {
		// given
		environments := infraRepos.NewEnvironmentRegistry()
		environments.Register(&doubles.SpyEnvironmentRepository{EnvironmentName: "venv", ExistsResult: true})
		stub := testToolchain()
		stub.LatestErr = errors.New("network unreachable")

		cmd := commands.NewDoctorCommand(stub, environments)

		// when
		err := cmd.Execute(context.Background(), testSettings(t.TempDir()), commands.DoctorOptions{})

		// then
		require.NoError(t, err)
	})

	t.Run("should fail for an unknown environment kind", func(t *testing.T) {
		// given
		cmd := commands.NewDoctorCommand(testToolchain(), infraRepos.NewEnvironmentRegistry())

		// when
		err := cmd.Execute(context.Background(), testSettings(t.TempDir()), commands.DoctorOptions{})

		// then
		assert.ErrorContains(t, err, "unsupported environment kind")
	})
}
