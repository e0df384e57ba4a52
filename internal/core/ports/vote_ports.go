package ports

import (
	"context"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
)

type VoteService interface {
	Vote(ctx context.Context, choiceVote domain.ChoiceVote) domain.Vote
}
