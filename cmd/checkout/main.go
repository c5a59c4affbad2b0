package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/niksmo/checkout/config"
	"github.com/niksmo/checkout/internal/app"
)

func main() {
	sigCtx, stop := signalContext()
	defer stop()

	cfg := config.Load()
	cfg.Print()

	initLogger(cfg.LogLevel)

	a, err := app.New(cfg, os.Stdout)
	if err != nil {
		die("main", err)
	}

	if err := a.Run(sigCtx); err != nil {
		slog.Error("scenario run failed", "err", err)
		os.Exit(1)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
}

func initLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func die(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
