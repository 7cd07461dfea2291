package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samirrijal/flyworld/internal/pkg/config"
	"github.com/samirrijal/flyworld/internal/pkg/logging"
	"github.com/samirrijal/flyworld/migrations"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate <up|down>")
		os.Exit(2)
	}

	cfg, err := config.Load("flyworld-migrate")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		slog.Error("db connect", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	var steps []migrations.Migration
	switch os.Args[1] {
	case "up":
		steps, err = migrations.Up()
	case "down":
		steps, err = migrations.Down()
	default:
		slog.Error("unknown command", "command", os.Args[1])
		os.Exit(2)
	}
	if err != nil {
		slog.Error("load migrations", "error", err)
		os.Exit(1)
	}

	if err := apply(ctx, pool, steps); err != nil {
		slog.Error("migrate", "direction", os.Args[1], "error", err)
		os.Exit(1)
	}
	slog.Info("all migrations applied", "direction", os.Args[1], "count", len(steps))
}

func apply(ctx context.Context, pool *pgxpool.Pool, steps []migrations.Migration) error {
	for _, m := range steps {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("exec %s: %w", m.Name, err)
		}
		slog.Info("applied", "migration", m.Name)
	}
	return nil
}
