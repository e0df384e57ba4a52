package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
	"github.com/vncsmyrnk/pollstate/internal/core/ports"
)

type voteService struct {
	// mu makes this service the single writer of the vote sequence.
	mu     sync.Mutex
	store  ports.StateStore
	logger *slog.Logger
}

func NewVoteService(store ports.StateStore, logger *slog.Logger) ports.VoteService {
	return &voteService{
		store:  store,
		logger: ResolveLogger(logger),
	}
}

// Vote records choiceVote with the next id in the log and applies it to the
// tallies. The choice id is not validated.
func (s *voteService) Vote(ctx context.Context, choiceVote domain.ChoiceVote) domain.Vote {
	s.mu.Lock()
	defer s.mu.Unlock()

	newID := 1
	if last, ok := s.store.LastVote(); ok {
		newID = last.ID + 1
	}

	vote := domain.Vote{
		ID:       newID,
		ChoiceID: choiceVote.ChoiceID,
		Comment:  choiceVote.Comment,
	}
	s.store.Vote(vote)

	s.logger.DebugContext(ctx, "vote recorded",
		"event", "vote_recorded",
		"module", logModule,
		"layer", "application",
		"vote_id", vote.ID,
		"choice_id", vote.ChoiceID,
		"has_comment", vote.Comment != nil,
	)
	return vote
}
