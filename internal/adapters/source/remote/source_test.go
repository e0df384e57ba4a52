package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
)

func TestFetchAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"topic":"Lunch","choices":[{"id":3,"text":"Pizza","count":2}]},{"id":2,"topic":"Empty"}]`))
	}))
	defer server.Close()

	polls, err := NewSource(server.URL, server.Client()).FetchAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Poll{
		{ID: 1, Topic: "Lunch", Choices: []domain.Choice{{ID: 3, PollID: 1, Text: "Pizza", Count: 2}}},
		{ID: 2, Topic: "Empty", Choices: []domain.Choice{}},
	}, polls)
}

func TestFetchAllBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewSource(server.URL, nil).FetchAll(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "maintenance")
}

func TestFetchAllInvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	_, err := NewSource(server.URL, nil).FetchAll(context.Background())
	assert.ErrorContains(t, err, "decode")
}

func TestFetchAllTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewSource(server.URL, nil).FetchAll(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
