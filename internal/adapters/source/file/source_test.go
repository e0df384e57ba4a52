package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
)

const sampleCatalog = `
polls:
  - id: 1
    topic: Lunch
    choices:
      - id: 10
        text: Pizza
      - id: 11
        text: Sushi
        count: 4
  - id: 2
    topic: Empty poll
`

func TestFetchAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o600))

	polls, err := NewSource(path).FetchAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Poll{
		{ID: 1, Topic: "Lunch", Choices: []domain.Choice{
			{ID: 10, PollID: 1, Text: "Pizza"},
			{ID: 11, PollID: 1, Text: "Sushi", Count: 4},
		}},
		{ID: 2, Topic: "Empty poll", Choices: []domain.Choice{}},
	}, polls)
}

func TestFetchAllMissingFile(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "nope.yaml")).FetchAll(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("polls: [unterminated"))
	assert.Error(t, err)
}
