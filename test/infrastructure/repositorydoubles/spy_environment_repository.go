//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
	"github.com/rios0rios0/pyforge/internal/domain/repositories"
)

// SpyEnvironmentRepository implements repositories.EnvironmentRepository as a
// configurable spy.
type SpyEnvironmentRepository struct {
	// --- identity ---
	EnvironmentName string

	// --- Exists ---
	ExistsResult bool

	// --- Create ---
	CreateResult *entities.Environment
	CreateErr    error
	CreatedSpecs []entities.EnvironmentSpec

	// --- Describe ---
	DescribeResult *entities.Environment
	DescribeErr    error

	// --- Remove ---
	RemoveErr    error
	RemovedSpecs []entities.EnvironmentSpec
}

var _ repositories.EnvironmentRepository = (*SpyEnvironmentRepository)(nil)

func (e *SpyEnvironmentRepository) Name() string { return e.EnvironmentName }

func (e *SpyEnvironmentRepository) Exists(_ string) bool { return e.ExistsResult }

func (e *SpyEnvironmentRepository) Create(
	_ context.Context,
	spec entities.EnvironmentSpec,
) (*entities.Environment, error) {
	e.CreatedSpecs = append(e.CreatedSpecs, spec)
	if e.CreateErr != nil {
		return nil, e.CreateErr
	}
	if e.CreateResult != nil {
		return e.CreateResult, nil
	}
	return entities.DescribeEnvironment(entities.EnvironmentKind(e.EnvironmentName), spec.Root), nil
}

func (e *SpyEnvironmentRepository) Describe(spec entities.EnvironmentSpec) (*entities.Environment, error) {
	if e.DescribeErr != nil {
		return nil, e.DescribeErr
	}
	if e.DescribeResult != nil {
		return e.DescribeResult, nil
	}
	return entities.DescribeEnvironment(entities.EnvironmentKind(e.EnvironmentName), spec.Root), nil
}

func (e *SpyEnvironmentRepository) Remove(_ context.Context, spec entities.EnvironmentSpec) error {
	e.RemovedSpecs = append(e.RemovedSpecs, spec)
	return e.RemoveErr
}
