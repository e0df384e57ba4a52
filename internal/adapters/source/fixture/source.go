// Package fixture serves a fixed poll catalog after a simulated network
// delay.
package fixture

import (
	"context"
	"time"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
	"github.com/vncsmyrnk/pollstate/internal/core/ports"
)

const DefaultDelay = 500 * time.Millisecond

type Source struct {
	polls []domain.Poll
	delay time.Duration
}

// NewSource serves polls, or the built-in demo catalog when polls is nil.
func NewSource(polls []domain.Poll, delay time.Duration) ports.PollSource {
	if polls == nil {
		polls = DemoCatalog()
	}
	return &Source{
		polls: domain.ClonePolls(polls),
		delay: delay,
	}
}

func (s *Source) FetchAll(ctx context.Context) ([]domain.Poll, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return domain.ClonePolls(s.polls), nil
}

// DemoCatalog returns the catalog used when no other source is configured.
// Choice ids are unique across the whole catalog.
func DemoCatalog() []domain.Poll {
	return []domain.Poll{
		domain.NewPoll(1, "Which language should the next service use?", []domain.Choice{
			domain.NewChoice(1, 1, "Go"),
			domain.NewChoice(2, 1, "Rust"),
			domain.NewChoice(3, 1, "Kotlin"),
		}),
		domain.NewPoll(2, "Where should the team offsite be?", []domain.Choice{
			domain.NewChoice(4, 2, "Mountains"),
			domain.NewChoice(5, 2, "Beach"),
			domain.NewChoice(6, 2, "City"),
		}),
		domain.NewPoll(3, "Preferred stand-up time?", []domain.Choice{
			domain.NewChoice(7, 3, "09:00"),
			domain.NewChoice(8, 3, "10:30"),
		}),
	}
}
