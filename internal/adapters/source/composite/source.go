// Package composite merges several poll sources into one catalog.
package composite

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
	"github.com/vncsmyrnk/pollstate/internal/core/ports"
)

type Source struct {
	sources []ports.PollSource
}

func NewSource(sources ...ports.PollSource) ports.PollSource {
	return &Source{sources: sources}
}

// FetchAll queries every source concurrently and concatenates the results in
// source order. The first failure cancels the others and fails the fetch.
func (s *Source) FetchAll(ctx context.Context) ([]domain.Poll, error) {
	results := make([][]domain.Poll, len(s.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, source := range s.sources {
		i, source := i, source
		g.Go(func() error {
			polls, err := source.FetchAll(gctx)
			if err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}
			results[i] = polls
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]domain.Poll, 0)
	for _, polls := range results {
		merged = append(merged, polls...)
	}
	return merged, nil
}
