package ports

import (
	"context"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
)

// PollSource provides the full poll catalog. Implementations may block for
// the duration of a remote fetch.
type PollSource interface {
	FetchAll(ctx context.Context) ([]domain.Poll, error)
}

type PollService interface {
	Load(ctx context.Context) error
}
