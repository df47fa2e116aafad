package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mstampfer/coin-crab/internal/app"
	"github.com/mstampfer/coin-crab/internal/config"
	"github.com/mstampfer/coin-crab/internal/infra/db"
	"github.com/mstampfer/coin-crab/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("config load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format)

	var pool *pgxpool.Pool
	if cfg.Postgres.Enabled {
		pool, err = db.NewPool(&cfg.Postgres)
		if err != nil {
			log.Error("postgres connect failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	application, err := app.NewApp(*cfg, log, pool)
	if err != nil {
		log.Error("app init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		log.Error("application stopped with error", slog.String("error", err.Error()))
	}

	log.Info("coin-crab server stopped")
}
