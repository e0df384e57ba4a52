// Package bootstrap wires configuration, adapters and the engine together for
// the command entrypoints.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vncsmyrnk/pollstate/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/pollstate/internal/adapters/source/composite"
	"github.com/vncsmyrnk/pollstate/internal/adapters/source/file"
	"github.com/vncsmyrnk/pollstate/internal/adapters/source/fixture"
	"github.com/vncsmyrnk/pollstate/internal/adapters/source/remote"
	"github.com/vncsmyrnk/pollstate/internal/config"
	"github.com/vncsmyrnk/pollstate/internal/core/ports"
	"github.com/vncsmyrnk/pollstate/internal/core/services"
	"github.com/vncsmyrnk/pollstate/internal/core/state"
)

// Engine groups the state container with the services operating on it.
type Engine struct {
	Store   *state.Store
	Polls   ports.PollService
	Votes   ports.VoteService
	Summary ports.SummaryService
}

func NewEngine(source ports.PollSource, logger *slog.Logger) Engine {
	store := state.New()
	return Engine{
		Store:   store,
		Polls:   services.NewPollService(source, store, logger),
		Votes:   services.NewVoteService(store, logger),
		Summary: services.NewSummaryService(store),
	}
}

func NewLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewPollSource builds the configured source. The returned close function
// releases any connection opened for it and is never nil.
func NewPollSource(ctx context.Context, cfg config.Config) (ports.PollSource, func() error, error) {
	var db *sql.DB
	closeFn := func() error {
		if db == nil {
			return nil
		}
		return db.Close()
	}

	if cfg.Uses(config.SourcePostgres) {
		var err error
		db, err = postgres.Open(ctx, cfg.Postgres.ConnString())
		if err != nil {
			return nil, closeFn, err
		}
	}

	sources := make([]ports.PollSource, 0, len(cfg.Sources))
	for _, kind := range cfg.Sources {
		switch kind {
		case config.SourceFixture:
			sources = append(sources, fixture.NewSource(nil, cfg.FetchDelay))
		case config.SourceFile:
			sources = append(sources, file.NewSource(cfg.CatalogPath))
		case config.SourceRemote:
			sources = append(sources, remote.NewSource(cfg.RemoteURL, &http.Client{Timeout: cfg.RemoteTimeout}))
		case config.SourcePostgres:
			sources = append(sources, postgres.NewPollRepository(db))
		default:
			return nil, closeFn, fmt.Errorf("unknown poll source %q", kind)
		}
	}

	if len(sources) == 1 {
		return sources[0], closeFn, nil
	}
	return composite.NewSource(sources...), closeFn, nil
}
