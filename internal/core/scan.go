package core

import (
	"context"
	"log/slog"

	"github.com/kilupskalvis/gitrefs/internal/refs"
	"golang.org/x/sync/errgroup"
)

// ScanResult is the outcome of reading one repository.
type ScanResult struct {
	Path     string
	Snapshot *refs.Snapshot
	Err      error
}

// Scan reads the repositories at dirs with up to workers in parallel.
// Results are in the order of dirs. A repository that cannot be opened sets
// Err on its result; only cancellation of ctx fails the whole scan.
func Scan(ctx context.Context, dirs []string, workers int, logger *slog.Logger) ([]ScanResult, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]ScanResult, len(dirs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = scanOne(dir, logger)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func scanOne(dir string, logger *slog.Logger) ScanResult {
	repo, err := Discover(dir, logger)
	if err != nil {
		return ScanResult{Path: dir, Err: err}
	}
	return ScanResult{Path: dir, Snapshot: repo.Snapshot()}
}
