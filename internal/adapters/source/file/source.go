// Package file reads a poll catalog from a YAML file on every fetch.
package file

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
	"github.com/vncsmyrnk/pollstate/internal/core/ports"
)

type catalogFile struct {
	Polls []pollEntry `yaml:"polls"`
}

type pollEntry struct {
	ID      int           `yaml:"id"`
	Topic   string        `yaml:"topic"`
	Choices []choiceEntry `yaml:"choices"`
}

type choiceEntry struct {
	ID     int    `yaml:"id"`
	PollID int    `yaml:"poll_id"`
	Text   string `yaml:"text"`
	Count  int    `yaml:"count"`
}

type Source struct {
	path string
}

func NewSource(path string) ports.PollSource {
	return &Source{path: path}
}

func (s *Source) FetchAll(ctx context.Context) ([]domain.Poll, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", s.path, err)
	}
	return Parse(content)
}

// Parse decodes a YAML catalog. Choices inherit the enclosing poll id unless
// poll_id is set explicitly.
func Parse(content []byte) ([]domain.Poll, error) {
	var catalog catalogFile
	if err := yaml.Unmarshal(content, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	polls := make([]domain.Poll, 0, len(catalog.Polls))
	for _, p := range catalog.Polls {
		choices := make([]domain.Choice, 0, len(p.Choices))
		for _, c := range p.Choices {
			choice := domain.NewChoice(c.ID, c.PollID, c.Text)
			choice.Count = c.Count
			choices = append(choices, choice)
		}
		polls = append(polls, domain.NewPoll(p.ID, p.Topic, choices))
	}
	return polls, nil
}
