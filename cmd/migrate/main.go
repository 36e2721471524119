package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/config"
	"github.com/fhuszti/portfolio-ms-go/internal/db"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/migration"
)

func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of applying them")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	database, err := initDb(ctx, cfg)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	if *down > 0 {
		if err := migration.MigrateDown(ctx, database.DB.DB, *down); err != nil {
			logger.Errorf(ctx, "❌  Migration down failed: %v", err)
			os.Exit(1)
		}
		logger.Infof(ctx, "✅  Rolled back %d migration(s)", *down)
		return
	}

	if err := migration.MigrateUp(ctx, database.DB.DB); err != nil {
		logger.Errorf(ctx, "❌  Migration up failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Migrations applied successfully")
}

func initDb(ctx context.Context, cfg *config.Settings) (*db.Database, error) {
	c := cfg.MariaDB()
	sep := "?"
	if strings.Contains(c.DSN, "?") {
		sep = "&"
	}
	c.DSN += sep + "multiStatements=true"
	return db.New(ctx, c)
}
