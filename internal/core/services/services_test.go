package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
	"github.com/vncsmyrnk/pollstate/internal/core/state"
)

type stubSource struct {
	polls []domain.Poll
	err   error
	// release, when set, blocks FetchAll until it is closed.
	release chan struct{}
	calls   int
	mu      sync.Mutex
}

func (s *stubSource) FetchAll(ctx context.Context) ([]domain.Poll, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return domain.ClonePolls(s.polls), nil
}

func testCatalog() []domain.Poll {
	return []domain.Poll{
		domain.NewPoll(1, "Best language", []domain.Choice{
			domain.NewChoice(1, 1, "Go"),
			domain.NewChoice(2, 1, "Rust"),
		}),
		domain.NewPoll(2, "Best editor", []domain.Choice{
			domain.NewChoice(5, 2, "vim"),
			domain.NewChoice(6, 2, "emacs"),
		}),
	}
}

func loadedStore(t *testing.T) *state.Store {
	t.Helper()
	store := state.New()
	err := NewPollService(&stubSource{polls: testCatalog()}, store, nil).Load(context.Background())
	require.NoError(t, err)
	return store
}

func countOf(polls []domain.Poll, choiceID int) int {
	for _, p := range polls {
		for _, c := range p.Choices {
			if c.ID == choiceID {
				return c.Count
			}
		}
	}
	return -1
}

func strptr(s string) *string { return &s }

func TestVoteFirstVoteGetsIDOne(t *testing.T) {
	store := loadedStore(t)
	svc := NewVoteService(store, nil)

	vote := svc.Vote(context.Background(), domain.ChoiceVote{ChoiceID: 2})

	assert.Equal(t, domain.Vote{ID: 1, ChoiceID: 2}, vote)
	assert.Equal(t, []domain.Vote{{ID: 1, ChoiceID: 2}}, store.Votes())
	assert.Equal(t, 1, countOf(store.Polls(), 2))
}

func TestVoteFollowsLastID(t *testing.T) {
	store := loadedStore(t)
	svc := NewVoteService(store, nil)
	svc.Vote(context.Background(), domain.ChoiceVote{ChoiceID: 2})

	vote := svc.Vote(context.Background(), domain.ChoiceVote{ChoiceID: 5, Comment: strptr("x")})

	assert.Equal(t, domain.Vote{ID: 2, ChoiceID: 5, Comment: strptr("x")}, vote)
	assert.Equal(t, 1, countOf(store.Polls(), 5))
	assert.Equal(t, 1, countOf(store.Polls(), 2))
}

func TestVoteDanglingChoice(t *testing.T) {
	store := loadedStore(t)
	svc := NewVoteService(store, nil)

	vote := svc.Vote(context.Background(), domain.ChoiceVote{ChoiceID: 999})

	assert.Equal(t, domain.Vote{ID: 1, ChoiceID: 999}, vote)
	assert.Equal(t, testCatalog(), store.Polls())
	require.NoError(t, store.Verify())
}

func TestVoteSameChoiceTwice(t *testing.T) {
	store := loadedStore(t)
	svc := NewVoteService(store, nil)

	first := svc.Vote(context.Background(), domain.NewChoiceVote(6, "first"))
	second := svc.Vote(context.Background(), domain.NewChoiceVote(6, "second"))

	assert.Equal(t, first.ID+1, second.ID)
	assert.NotEqual(t, *first.Comment, *second.Comment)
	assert.Equal(t, 2, countOf(store.Polls(), 6))
}

func TestVoteIDsAreSequential(t *testing.T) {
	store := loadedStore(t)
	svc := NewVoteService(store, nil)
	choices := []int{1, 2, 5, 6, 404}

	for i := 0; i < 50; i++ {
		svc.Vote(context.Background(), domain.ChoiceVote{ChoiceID: choices[i%len(choices)]})
		require.NoError(t, store.Verify(), "tally invariant after vote %d", i+1)
	}

	for n, v := range store.Votes() {
		assert.Equal(t, n+1, v.ID)
	}
}

func TestConcurrentVotesGetUniqueIDs(t *testing.T) {
	store := loadedStore(t)
	svc := NewVoteService(store, nil)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			svc.Vote(context.Background(), domain.ChoiceVote{ChoiceID: 1 + i%2})
		}(i)
	}
	wg.Wait()

	votes := store.Votes()
	require.Len(t, votes, 100)
	for n, v := range votes {
		assert.Equal(t, n+1, v.ID)
	}
	assert.Equal(t, 50, countOf(store.Polls(), 1))
	assert.Equal(t, 50, countOf(store.Polls(), 2))
	require.NoError(t, store.Verify())
}

func TestLoadReplacesPollsKeepsVotes(t *testing.T) {
	store := loadedStore(t)
	votes := NewVoteService(store, nil)
	votes.Vote(context.Background(), domain.ChoiceVote{ChoiceID: 1})
	votes.Vote(context.Background(), domain.ChoiceVote{ChoiceID: 5})
	before := store.Votes()

	next := []domain.Poll{domain.NewPoll(9, "Lunch", []domain.Choice{domain.NewChoice(90, 9, "tacos")})}
	err := NewPollService(&stubSource{polls: next}, store, nil).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, next, store.Polls())
	assert.Equal(t, before, store.Votes())
}

func TestLoadFailureKeepsPolls(t *testing.T) {
	store := loadedStore(t)
	source := &stubSource{err: errors.New("connection refused")}

	err := NewPollService(source, store, nil).Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, testCatalog(), store.Polls())
	assert.Equal(t, 1, source.calls, "no retry")
}

func TestLoadCancelledKeepsPolls(t *testing.T) {
	store := loadedStore(t)
	source := &stubSource{polls: nil, release: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPollService(source, store, nil).Load(ctx)

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, testCatalog(), store.Polls())
}

func TestOverlappingLoadsLastCompletionWins(t *testing.T) {
	store := state.New()
	slow := &stubSource{
		polls:   []domain.Poll{domain.NewPoll(1, "stale", nil)},
		release: make(chan struct{}),
	}
	fast := &stubSource{polls: []domain.Poll{domain.NewPoll(2, "fresh", nil)}}

	errc := make(chan error, 1)
	go func() {
		errc <- NewPollService(slow, store, nil).Load(context.Background())
	}()
	require.NoError(t, NewPollService(fast, store, nil).Load(context.Background()))
	assert.Equal(t, "fresh", store.Polls()[0].Topic)

	close(slow.release)
	require.NoError(t, <-errc)
	assert.Equal(t, "stale", store.Polls()[0].Topic)
}

func TestSummarize(t *testing.T) {
	store := loadedStore(t)
	votes := NewVoteService(store, nil)
	for _, id := range []int{1, 1, 2, 5} {
		votes.Vote(context.Background(), domain.ChoiceVote{ChoiceID: id})
	}
	svc := NewSummaryService(store)

	results, err := svc.Summarize(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	lang := results[0]
	assert.Equal(t, 3, lang.TotalVotes)
	assert.Equal(t, 2, lang.Choices[0].VoteCount)
	assert.InDelta(t, 66.66, lang.Choices[0].Percentage, 0.1)
	assert.InDelta(t, 33.33, lang.Choices[1].Percentage, 0.1)

	editor := results[1]
	assert.Equal(t, 1, editor.TotalVotes)
	assert.Equal(t, 100.0, editor.Choices[0].Percentage)
	assert.Equal(t, 0.0, editor.Choices[1].Percentage)
}

func TestSummarizePoll(t *testing.T) {
	store := loadedStore(t)
	svc := NewSummaryService(store)

	result, err := svc.SummarizePoll(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Best editor", result.Topic)
	assert.Equal(t, 0, result.TotalVotes)
	for _, c := range result.Choices {
		assert.Equal(t, 0.0, c.Percentage)
	}

	_, err = svc.SummarizePoll(context.Background(), 77)
	assert.ErrorIs(t, err, domain.ErrPollNotFound)
}
