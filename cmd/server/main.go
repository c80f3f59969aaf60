package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hrdash/internal/app/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, logger); err != nil {
		logger.Error("HR dashboard exited", "err", err)
		os.Exit(1)
	}
}
