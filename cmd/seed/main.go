package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campus-chatbot/config"
	faqRepo "campus-chatbot/internal/faq/repository/postgre"
	mhRepo "campus-chatbot/internal/mentalhealth/repository/postgre"
	"campus-chatbot/internal/seed"
	"campus-chatbot/pkg/log"
	"campus-chatbot/pkg/postgres"
)

// Loads the default resources, triggers and FAQs. Safe to rerun.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := postgres.RunMigrations(cfg.Postgres.DSN); err != nil {
		logger.Fatalf(ctx, "Failed to run migrations: %v", err)
	}

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	sum, err := seed.New(logger, mhRepo.New(db, logger), faqRepo.New(db, logger)).Run(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Seed failed: %v", err)
	}

	logger.Infof(ctx, "Seed complete: %d resources, %d triggers, %d links, %d FAQs",
		sum.Resources, sum.Triggers, sum.Links, sum.FAQs)
}
