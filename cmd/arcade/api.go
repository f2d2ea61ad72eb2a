package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cookie-arcade/internal/api"
	"github.com/vovakirdan/cookie-arcade/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the leaderboard over HTTP",
	Long: `Start a read-only JSON API over the run history.

Endpoints:
  GET /health
  GET /api/v1/games
  GET /api/v1/games/{id}/scores?limit=N
  GET /api/v1/games/{id}/stats
  GET /api/v1/runs/{runID}

Examples:
  arcade api
  arcade api --addr 127.0.0.1:9000 --db ./scores.db`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address")
}

func runAPI(_ *cobra.Command, _ []string) {
	logger := newLogger("arcade-api")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.NewServer(store, logger).ListenAndServe(ctx, flagAPIAddr); err != nil {
		logger.Error("server stopped", "error", err)
		store.Close()
		os.Exit(1)
	}
}
