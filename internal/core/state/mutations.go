package state

import "github.com/vncsmyrnk/pollstate/internal/core/domain"

// SetPolls replaces the catalog wholesale. Votes are left untouched and
// tallies are taken as given.
func (s *Store) SetPolls(polls []domain.Poll) {
	owned := domain.ClonePolls(polls)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls = owned
	s.index = buildIndex(owned)
	s.baseline = make(map[choiceRef]int)
	for pi, p := range owned {
		for ci, c := range p.Choices {
			s.baseline[choiceRef{poll: pi, choice: ci}] = c.Count
		}
	}
	s.baseVotes = len(s.votes)
}

// Vote appends v to the log and increments every choice whose id equals
// v.ChoiceID. A dangling id records the vote and increments nothing.
func (s *Store) Vote(v domain.Vote) {
	v = cloneVote(v)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes = append(s.votes, v)
	for _, ref := range s.index[v.ChoiceID] {
		s.polls[ref.poll].Choices[ref.choice].Count++
	}
}

func buildIndex(polls []domain.Poll) map[int][]choiceRef {
	index := make(map[int][]choiceRef)
	for pi, p := range polls {
		for ci, c := range p.Choices {
			index[c.ID] = append(index[c.ID], choiceRef{poll: pi, choice: ci})
		}
	}
	return index
}
