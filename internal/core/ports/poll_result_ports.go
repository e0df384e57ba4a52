package ports

import (
	"context"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
)

type SummaryService interface {
	Summarize(ctx context.Context) ([]domain.PollResult, error)
	SummarizePoll(ctx context.Context, pollID int) (domain.PollResult, error)
}
