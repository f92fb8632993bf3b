package main

import (
	"context"
	"flag"
	"time"

	"uevent/internal/config"
	"uevent/internal/database"
	"uevent/internal/logger"
	"uevent/internal/repository"
	"uevent/internal/seeder"

	"github.com/joho/godotenv"
)

var (
	seed      = flag.Int64("seed", 0, "Random seed for reproducible runs (0 = derive from current time)")
	skipReset = flag.Bool("skip-reset", false, "Keep existing rows instead of truncating all tables first")
	dryRun    = flag.Bool("dry-run", false, "Build the full generation plan and log counts without writing anything")
)

func main() {
	flag.Parse()

	// Optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.WithRunID(logger.NewRunID())

	seedValue := *seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	log.Info("Starting seeder...", "seed", seedValue, "dry_run", *dryRun, "skip_reset", *skipReset)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ctx := context.Background()
	if !*skipReset && !*dryRun {
		if err := db.Reset(ctx); err != nil {
			logger.Fatal("Failed to reset database", "error", err)
		}
		log.Info("Database reset completed")
	}

	repos := repository.NewRepositories(db)
	s := seeder.New(cfg.Seed, seeder.NewRand(seedValue), repos, log, *dryRun)

	if _, err := s.Run(ctx); err != nil {
		logger.Fatal("Seeding failed", "error", err)
	}
	db.LogPoolPressure(log)
}
