package repositories

import "context"

// WatcherRepository watches a file for changes.
type WatcherRepository interface {
	// Watch blocks until ctx is done, invoking onChange after each burst of
	// modifications to the file at path.
	Watch(ctx context.Context, path string, onChange func()) error
}
