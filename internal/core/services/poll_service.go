package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/pollstate/internal/core/domain"
	"github.com/vncsmyrnk/pollstate/internal/core/ports"
)

type pollService struct {
	source  ports.PollSource
	mutator ports.StateMutator
	logger  *slog.Logger
}

func NewPollService(source ports.PollSource, mutator ports.StateMutator, logger *slog.Logger) ports.PollService {
	return &pollService{
		source:  source,
		mutator: mutator,
		logger:  ResolveLogger(logger),
	}
}

// Load replaces the catalog with whatever the source returns. Overlapping
// calls are not ordered: the last one to complete wins.
func (s *pollService) Load(ctx context.Context) error {
	loadID := uuid.NewString()
	started := time.Now()
	s.logger.InfoContext(ctx, "poll catalog load started",
		"event", "polls_load_started",
		"module", logModule,
		"layer", "application",
		"load_id", loadID,
	)

	polls, err := s.source.FetchAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "poll catalog load failed",
			"event", "polls_load_failed",
			"module", logModule,
			"layer", "application",
			"load_id", loadID,
			"error", err.Error(),
		)
		return fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	s.mutator.SetPolls(polls)

	s.logger.InfoContext(ctx, "poll catalog loaded",
		"event", "polls_load_completed",
		"module", logModule,
		"layer", "application",
		"load_id", loadID,
		"poll_count", len(polls),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return nil
}
