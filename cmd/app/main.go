package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/avoronova/crypto-price-tracker/internal/app"
	"github.com/avoronova/crypto-price-tracker/internal/config"
	"github.com/avoronova/crypto-price-tracker/internal/infra/db"
	"github.com/avoronova/crypto-price-tracker/pkg/logger"
)

func main() {

	// context + signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	logg := logger.New(&cfg.Logger)

	pool, err := db.NewPool(&cfg.Postgres)
	if err != nil {
		logg.Error("postgres init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// build application
	application, err := app.NewApp(*cfg, logg, pool)
	if err != nil {
		logg.Error("app init failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	// run application
	if err := application.Run(ctx); err != nil {
		logg.Error("application stopped with error", slog.String("error", err.Error()))
	}

	logg.Info("crypto-price-tracker stopped")
}
