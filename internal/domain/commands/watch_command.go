package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
	"github.com/rios0rios0/pyforge/internal/domain/repositories"
)

// Watch is the interface for the watch command.
type Watch interface {
	Execute(ctx context.Context, settings *entities.Settings, opts WatchOptions) error
}

// WatchOptions holds runtime options for watch mode. Every sync option
// applies to the re-runs as well.
type WatchOptions struct {
	SyncOptions
}

// WatchCommand keeps the environment in sync with the manifest: it runs a
// full sync, then re-runs it whenever the manifest file changes.
type WatchCommand struct {
	sync    Sync
	watcher repositories.WatcherRepository
}

// NewWatchCommand creates a new WatchCommand with the given dependencies.
func NewWatchCommand(sync Sync, watcher repositories.WatcherRepository) *WatchCommand {
	return &WatchCommand{
		sync:    sync,
		watcher: watcher,
	}
}

// Execute blocks until the context is canceled. Sync failures are logged
// and the watch continues, so a broken manifest edit can be fixed without
// restarting.
func (it *WatchCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts WatchOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	manifestPath := resolveValue(opts.Manifest, settings.Manifest)

	it.runSync(ctx, settings, opts.SyncOptions)

	logger.Infof("[watch] Watching %s for changes (Ctrl+C to stop)", manifestPath)
	return it.watcher.Watch(ctx, manifestPath, func() {
		logger.Infof("[watch] Manifest changed, re-syncing...")
		it.runSync(ctx, settings, opts.SyncOptions)
	})
}

func (it *WatchCommand) runSync(ctx context.Context, settings *entities.Settings, opts SyncOptions) {
	if err := it.sync.Execute(ctx, settings, opts); err != nil {
		logger.Errorf("[watch] Sync failed: %v (still watching)", err)
	}
}
