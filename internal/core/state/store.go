// Package state holds the canonical poll catalog and vote log for one
// session. Reads hand out copies; SetPolls and Vote in mutations.go are the
// only code that writes.
package state

import (
	"fmt"
	"sync"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
)

// choiceRef locates a choice inside polls.
type choiceRef struct {
	poll   int
	choice int
}

type Store struct {
	mu sync.RWMutex

	polls []domain.Poll
	votes []domain.Vote

	// choice id -> every position holding that id
	index map[int][]choiceRef

	// counts as loaded by the last SetPolls, and how many votes existed then
	baseline  map[choiceRef]int
	baseVotes int
}

func New() *Store {
	return &Store{
		polls:    []domain.Poll{},
		votes:    []domain.Vote{},
		index:    make(map[int][]choiceRef),
		baseline: make(map[choiceRef]int),
	}
}

func (s *Store) Polls() []domain.Poll {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ClonePolls(s.polls)
}

func (s *Store) Poll(id int) (domain.Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.polls {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Poll{}, domain.ErrPollNotFound
}

func (s *Store) Votes() []domain.Vote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneVotes(s.votes)
}

// VotesForChoice returns the votes cast for choiceID in insertion order.
func (s *Store) VotesForChoice(choiceID int) []domain.Vote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Vote, 0)
	for _, v := range s.votes {
		if v.ChoiceID == choiceID {
			items = append(items, cloneVote(v))
		}
	}
	return items
}

// LastVote reports the most recently appended vote, if any.
func (s *Store) LastVote() (domain.Vote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.votes) == 0 {
		return domain.Vote{}, false
	}
	return cloneVote(s.votes[len(s.votes)-1]), true
}

// Snapshot returns polls and votes observed under a single read lock.
func (s *Store) Snapshot() domain.PollsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.PollsState{
		Polls: domain.ClonePolls(s.polls),
		Votes: cloneVotes(s.votes),
	}
}

// Verify checks every tally against the count it was loaded with plus the
// votes recorded since the last SetPolls, and reports the first choice that
// disagrees.
func (s *Store) Verify() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cast := make(map[int]int, len(s.index))
	for _, v := range s.votes[s.baseVotes:] {
		cast[v.ChoiceID]++
	}
	for pi, p := range s.polls {
		for ci, c := range p.Choices {
			expected := s.baseline[choiceRef{poll: pi, choice: ci}] + cast[c.ID]
			if c.Count != expected {
				return fmt.Errorf("%w: choice %d has count %d, expected %d",
					domain.ErrTallyMismatch, c.ID, c.Count, expected)
			}
		}
	}
	return nil
}

func cloneVote(v domain.Vote) domain.Vote {
	if v.Comment != nil {
		comment := *v.Comment
		v.Comment = &comment
	}
	return v
}

func cloneVotes(votes []domain.Vote) []domain.Vote {
	out := make([]domain.Vote, 0, len(votes))
	for _, v := range votes {
		out = append(out, cloneVote(v))
	}
	return out
}
