// Package remote fetches the poll catalog as JSON over HTTP.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
	"github.com/vncsmyrnk/pollstate/internal/core/ports"
)

const DefaultTimeout = 5 * time.Second

type Source struct {
	url    string
	client *http.Client
}

// NewSource reads the catalog from url. A nil client gets one with
// DefaultTimeout.
func NewSource(url string, client *http.Client) ports.PollSource {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Source{
		url:    url,
		client: client,
	}
}

func (s *Source) FetchAll(ctx context.Context) ([]domain.Poll, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("catalog request returned %d: %s", resp.StatusCode, body)
	}

	var polls []domain.Poll
	if err := json.NewDecoder(resp.Body).Decode(&polls); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	out := make([]domain.Poll, 0, len(polls))
	for _, p := range polls {
		out = append(out, domain.NewPoll(p.ID, p.Topic, p.Choices))
	}
	return out, nil
}
