package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
	"github.com/vncsmyrnk/pollstate/internal/core/ports"
)

// pollRepository reads the poll catalog. Choice ids are not constrained to be
// unique across polls; the engine tolerates collisions.
type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollSource {
	return &pollRepository{
		db: db,
	}
}

func (r *pollRepository) FetchAll(ctx context.Context) ([]domain.Poll, error) {
	query := `
		SELECT id, topic
		FROM polls
		WHERE deleted_at IS NULL
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all polls: %w", err)
	}
	defer rows.Close()

	polls, err := r.scanPolls(rows)
	if err != nil {
		return nil, err
	}

	choices, err := r.fetchChoices(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Poll, 0, len(polls))
	for _, p := range polls {
		out = append(out, domain.NewPoll(p.ID, p.Topic, choices[p.ID]))
	}
	return out, nil
}

func (r *pollRepository) scanPolls(rows *sql.Rows) ([]domain.Poll, error) {
	var polls []domain.Poll
	for rows.Next() {
		var poll domain.Poll
		if err := rows.Scan(&poll.ID, &poll.Topic); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}
	return polls, nil
}

func (r *pollRepository) fetchChoices(ctx context.Context) (map[int][]domain.Choice, error) {
	query := `
		SELECT c.id, c.poll_id, c.text
		FROM choices c
		JOIN polls p ON p.id = c.poll_id
		WHERE p.deleted_at IS NULL
		ORDER BY c.poll_id, c.position, c.id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get choices: %w", err)
	}
	defer rows.Close()

	choices := make(map[int][]domain.Choice)
	for rows.Next() {
		var id, pollID int
		var text string
		if err := rows.Scan(&id, &pollID, &text); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices[pollID] = append(choices[pollID], domain.NewChoice(id, pollID, text))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating choices: %w", err)
	}
	return choices, nil
}
