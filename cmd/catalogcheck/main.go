// Command catalogcheck fetches the configured catalog once and reports data problems
// the engine would silently tolerate, such as choice ids shared by two polls.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/vncsmyrnk/pollstate/internal/app/bootstrap"
	"github.com/vncsmyrnk/pollstate/internal/config"
	"github.com/vncsmyrnk/pollstate/internal/core/domain"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load("catalogcheck", os.Args[1:])
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := bootstrap.NewLogger(os.Stderr, cfg)

	// Use a timeout for the fetch to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	source, closeSource, err := bootstrap.NewPollSource(ctx, cfg)
	if err != nil {
		logger.Error("failed to build poll source", "error", err)
		os.Exit(1)
	}
	defer closeSource()

	polls, err := source.FetchAll(ctx)
	if err != nil {
		logger.Error("failed to fetch catalog", "error", err)
		os.Exit(1)
	}

	issues := domain.CheckCatalog(polls)
	for _, issue := range issues {
		fmt.Println(issue)
	}
	if len(issues) > 0 {
		logger.Warn("catalog has issues", "polls", len(polls), "issues", len(issues))
		os.Exit(1)
	}
	logger.Info("catalog is consistent", "polls", len(polls))
}
