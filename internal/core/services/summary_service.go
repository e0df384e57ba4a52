package services

import (
	"context"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
	"github.com/vncsmyrnk/pollstate/internal/core/ports"
)

type summaryService struct {
	reader ports.StateReader
}

func NewSummaryService(reader ports.StateReader) ports.SummaryService {
	return &summaryService{
		reader: reader,
	}
}

func (s *summaryService) Summarize(ctx context.Context) ([]domain.PollResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	polls := s.reader.Snapshot().Polls
	results := make([]domain.PollResult, 0, len(polls))
	for _, p := range polls {
		results = append(results, summarizePoll(p))
	}
	return results, nil
}

func (s *summaryService) SummarizePoll(ctx context.Context, pollID int) (domain.PollResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.PollResult{}, err
	}

	poll, err := s.reader.Poll(pollID)
	if err != nil {
		return domain.PollResult{}, err
	}
	return summarizePoll(poll), nil
}

func summarizePoll(p domain.Poll) domain.PollResult {
	total := p.TotalVotes()
	result := domain.PollResult{
		PollID:     p.ID,
		Topic:      p.Topic,
		TotalVotes: total,
		Choices:    make([]domain.ChoiceStats, 0, len(p.Choices)),
	}

	for _, c := range p.Choices {
		percentage := 0.0
		if total > 0 {
			percentage = (float64(c.Count) / float64(total)) * 100
		}
		result.Choices = append(result.Choices, domain.ChoiceStats{
			ChoiceID:   c.ID,
			Text:       c.Text,
			VoteCount:  c.Count,
			Percentage: percentage,
		})
	}
	return result
}
