package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campus-chatbot/config"
	_ "campus-chatbot/docs" // Swagger docs
	"campus-chatbot/internal/chat"
	"campus-chatbot/internal/faq"
	"campus-chatbot/internal/httpserver"
	"campus-chatbot/internal/mentalhealth"
	"campus-chatbot/internal/middleware"
	"campus-chatbot/internal/model"
	"campus-chatbot/pkg/classifier"
	"campus-chatbot/pkg/log"
	"campus-chatbot/pkg/postgres"
	pkgRedis "campus-chatbot/pkg/redis"
	"campus-chatbot/pkg/translator"
)

// @title       Campus Chatbot API
// @description Multilingual student helpdesk with mental-health triage, FAQ answers and intent classification.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting campus chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	if cfg.Postgres.AutoMigrate {
		if err := postgres.RunMigrations(cfg.Postgres.DSN); err != nil {
			logger.Errorf(ctx, "Failed to run migrations: %v", err)
			return
		}
		logger.Info(ctx, "Migrations applied")
	}

	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to postgres: %v", err)
		return
	}
	defer db.Close()

	// 4. Redis alert stream (optional)
	var redisClient *pkgRedis.Client
	if cfg.Redis.Addr != "" {
		redisClient = pkgRedis.NewClient(pkgRedis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if err := pkgRedis.Ping(ctx, redisClient); err != nil {
			logger.Warnf(ctx, "Redis not reachable, alert publishing fails until it is: %v", err)
		}
	} else {
		logger.Warn(ctx, "redis.addr not set, crisis alerts are stored only")
	}

	// 5. External services
	cls := classifier.New(classifier.Config{
		WebhookURL: cfg.Classifier.WebhookURL,
		Timeout:    cfg.Classifier.Timeout,
	})

	var tr translator.Translator = translator.Heuristic{}
	if cfg.Translator.BaseURL != "" {
		tr = translator.NewLibre(translator.Config{
			BaseURL: cfg.Translator.BaseURL,
			APIKey:  cfg.Translator.APIKey,
			Timeout: cfg.Translator.Timeout,
		}, logger)
	} else {
		logger.Warn(ctx, "translator.base_url not set, using offline language detection without translation")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		PostgresDB:      db,
		RedisClient:     redisClient,
		AlertStream:     cfg.Redis.AlertStream,
		StreamLen:       cfg.Redis.StreamMaxLen,
		Classifier:      cls,
		Translator:      tr,
		Chat: chat.Config{
			WorkingLanguage: model.ParseLanguage(cfg.Translator.WorkingLanguage),
			FAQConfidence:   cfg.Triage.FAQConfidence,
			LowConfidence:   cfg.Triage.LowConfidence,
		},
		MentalHealth: mentalhealth.Config{
			Thresholds: mentalhealth.Thresholds{
				CrisisConfidence:   cfg.Triage.CrisisConfidence,
				TriggerConfidence:  cfg.Triage.TriggerConfidence,
				HighConfidence:     cfg.Triage.HighConfidence,
				ModerateConfidence: cfg.Triage.ModerateConfidence,
				CrisisResourceCap:  cfg.Triage.CrisisResourceCap,
				ResourceCap:        cfg.Triage.ResourceCap,
			},
		},
		FAQ: faq.Config{SimilarityThreshold: cfg.FAQ.SimilarityThreshold},
		Middleware: middleware.Config{
			RateLimitPerMin:   cfg.RateLimit.RequestsPerMin,
			MetricsAllowedIPs: cfg.Metrics.AllowedIPs,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
