package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pyforge/internal/domain/repositories"
)

const (
	// debounceWindow batches rapid save bursts into a single change.
	debounceWindow = 500 * time.Millisecond
	pollInterval   = 100 * time.Millisecond
)

// FileWatcherRepository implements repositories.WatcherRepository with
// fsnotify. The parent directory is watched instead of the file itself:
// editors replace files on save, which would otherwise drop the watch.
type FileWatcherRepository struct{}

func NewWatcherRepository() repositories.WatcherRepository {
	return &FileWatcherRepository{}
}

// Watch blocks until ctx is done, invoking onChange after each debounced
// burst of modifications to the file at path.
func (w *FileWatcherRepository) Watch(ctx context.Context, path string, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer notifier.Close()

	watchDir := filepath.Dir(absPath)
	if addErr := notifier.Add(watchDir); addErr != nil {
		return fmt.Errorf("failed to watch %q: %w", watchDir, addErr)
	}
	logger.Debugf("[watch] Watching %s for changes to %s", watchDir, filepath.Base(absPath))

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var pendingSince time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-notifier.Events:
			if !ok {
				return nil
			}
			if !w.concernsFile(event, absPath) {
				continue
			}
			logger.Debugf("[watch] %s changed (%s)", event.Name, event.Op)
			pendingSince = time.Now()

		case watchErr, ok := <-notifier.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("[watch] Watcher error: %v", watchErr)

		case <-ticker.C:
			if pendingSince.IsZero() || time.Since(pendingSince) < debounceWindow {
				continue
			}
			pendingSince = time.Time{}
			onChange()
		}
	}
}

// concernsFile filters directory events down to mutations of the watched
// file. Chmod-only events are ignored.
func (w *FileWatcherRepository) concernsFile(event fsnotify.Event, absPath string) bool {
	if filepath.Clean(event.Name) != absPath {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
