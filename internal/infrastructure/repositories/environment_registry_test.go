//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	infraRepos "github.com/rios0rios0/pyforge/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/pyforge/test/infrastructure/repositorydoubles"
)

func TestEnvironmentRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should register and retrieve an environment by name", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewEnvironmentRegistry()
		spy := &doubles.SpyEnvironmentRepository{EnvironmentName: "venv"}
		reg.Register(spy)

		// when
		environment := reg.Get("venv")

		// then
		assert.NotNil(t, environment)
		assert.Equal(t, "venv", environment.Name())
	})

	t.Run("should return nil for an unknown environment", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewEnvironmentRegistry()

		// when
		environment := reg.Get("nonexistent")

		// then
		assert.Nil(t, environment)
	})

	t.Run("should list all registered environments", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewEnvironmentRegistry()
		reg.Register(&doubles.SpyEnvironmentRepository{EnvironmentName: "venv"})
		reg.Register(&doubles.SpyEnvironmentRepository{EnvironmentName: "conda"})

		// when
		all := reg.All()

		// then
		assert.Len(t, all, 2)
	})

	t.Run("should list registered environment names", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewEnvironmentRegistry()
		reg.Register(&doubles.SpyEnvironmentRepository{EnvironmentName: "venv"})
		reg.Register(&doubles.SpyEnvironmentRepository{EnvironmentName: "conda"})

		// when
		names := reg.Names()

		// then
		assert.ElementsMatch(t, []string{"venv", "conda"}, names)
	})

	t.Run("should replace an implementation registered under the same name", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewEnvironmentRegistry()
		first := &doubles.SpyEnvironmentRepository{EnvironmentName: "venv"}
		second := &doubles.SpyEnvironmentRepository{EnvironmentName: "venv"}
		reg.Register(first)
		reg.Register(second)

		// when
		environment := reg.Get("venv")

		// then
		assert.Same(t, second, environment)
		assert.Len(t, reg.All(), 1)
	})
}
