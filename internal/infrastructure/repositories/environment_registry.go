package repositories

import (
	domainRepos "github.com/rios0rios0/pyforge/internal/domain/repositories"
)

// EnvironmentRegistry manages all registered environment implementations.
type EnvironmentRegistry struct {
	environments map[string]domainRepos.EnvironmentRepository
}

// NewEnvironmentRegistry creates an empty environment registry.
func NewEnvironmentRegistry() *EnvironmentRegistry {
	return &EnvironmentRegistry{
		environments: make(map[string]domainRepos.EnvironmentRepository),
	}
}

// Register adds an environment implementation under its name.
func (r *EnvironmentRegistry) Register(e domainRepos.EnvironmentRepository) {
	r.environments[e.Name()] = e
}

// Get returns the environment implementation with the given name, or nil if
// not registered.
func (r *EnvironmentRegistry) Get(name string) domainRepos.EnvironmentRepository {
	return r.environments[name]
}

// All returns every registered environment implementation.
func (r *EnvironmentRegistry) All() []domainRepos.EnvironmentRepository {
	result := make([]domainRepos.EnvironmentRepository, 0, len(r.environments))
	for _, e := range r.environments {
		result = append(result, e)
	}
	return result
}

// Names returns the list of registered environment names.
func (r *EnvironmentRegistry) Names() []string {
	names := make([]string, 0, len(r.environments))
	for name := range r.environments {
		names = append(names, name)
	}
	return names
}
