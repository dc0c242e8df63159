//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pyforge/internal/domain/repositories"
)

// SpyWatcherRepository implements repositories.WatcherRepository as a spy
// that fires the change callback a configurable number of times and returns.
type SpyWatcherRepository struct {
	Fires        int
	WatchErr     error
	WatchedPaths []string
}

var _ repositories.WatcherRepository = (*SpyWatcherRepository)(nil)

func (w *SpyWatcherRepository) Watch(ctx context.Context, path string, onChange func()) error {
	w.WatchedPaths = append(w.WatchedPaths, path)
	for range w.Fires {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		onChange()
	}
	return w.WatchErr
}
