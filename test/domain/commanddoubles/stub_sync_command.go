//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pyforge/internal/domain/commands"
	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

// StubSyncCommand is a stub implementation of commands.Sync.
type StubSyncCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.SyncOptions
}

var _ commands.Sync = (*StubSyncCommand)(nil)

func (s *StubSyncCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.SyncOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
