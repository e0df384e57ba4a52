package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vncsmyrnk/pollstate/internal/adapters/handler/http"
	"github.com/vncsmyrnk/pollstate/internal/app/bootstrap"
	"github.com/vncsmyrnk/pollstate/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load("server", os.Args[1:])
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := bootstrap.NewLogger(os.Stdout, cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := bootstrap.NewPollSource(ctx, cfg)
	if err != nil {
		logger.Error("failed to build poll source", "error", err)
		os.Exit(1)
	}
	defer closeSource()

	engine := bootstrap.NewEngine(source, logger)
	if cfg.LoadOnStart {
		// The server still starts with an empty catalog; POST /api/polls/load retries.
		if err := engine.Polls.Load(ctx); err != nil {
			logger.Warn("initial catalog load failed", "error", err)
		}
	}

	pollHandler := http.NewPollHandler(engine.Polls, engine.Store, engine.Summary)
	voteHandler := http.NewVoteHandler(engine.Votes, engine.Store)
	handler := http.NewHandler(pollHandler, voteHandler)
	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: handler}

	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr, "sources", cfg.Sources)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
