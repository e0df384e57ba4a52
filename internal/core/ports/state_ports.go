package ports

import "github.com/vncsmyrnk/pollstate/internal/core/domain"

// StateReader is the read-only view handed to collaborators. Every call
// returns copies; mutating them does not affect the engine.
type StateReader interface {
	Polls() []domain.Poll
	Poll(id int) (domain.Poll, error)
	Votes() []domain.Vote
	VotesForChoice(choiceID int) []domain.Vote
	LastVote() (domain.Vote, bool)
	Snapshot() domain.PollsState
	Verify() error
}

// StateMutator is the only write path into the engine state.
type StateMutator interface {
	SetPolls(polls []domain.Poll)
	Vote(vote domain.Vote)
}

type StateStore interface {
	StateReader
	StateMutator
}
