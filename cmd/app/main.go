package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsletter-service/internal/config"
	"newsletter-service/internal/domain/model"
	pg "newsletter-service/internal/infra/db/postgres"
	"newsletter-service/internal/infra/email"
	"newsletter-service/internal/infra/logging"
	"newsletter-service/internal/infra/metrics"
	red "newsletter-service/internal/infra/redis"
	"newsletter-service/internal/infra/web"
	"newsletter-service/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "development mode")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.MustRegister()

	sender, err := model.ParseEmail(cfg.Email.Sender)
	if err != nil {
		log.Fatalf("email.sender: %v", err)
	}

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 10)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	// ---- Email transport (built once, shared by reference) ----
	sesSender, err := email.NewSESSender(ctx, cfg.Email)
	if err != nil {
		log.Fatalf("ses: %v", err)
	}

	// ---- Repositories ----
	subRepo := pg.NewSubscriberRepo(pool)
	tokenRepo := pg.NewTokenRepoCacheDecorator(pg.NewTokenRepo(pool), redisClient, cfg.Redis.TTL)
	txManager := pg.NewTxManager(pool)

	// ---- Use cases ----
	subUC := usecase.NewSubscriptionUseCase(subRepo, tokenRepo, txManager, sesSender, sender, cfg.Server.BaseURL, logger)
	confUC := usecase.NewConfirmationUseCase(subRepo, tokenRepo, logger)
	newsUC := usecase.NewNewsletterUseCase(subRepo, sesSender, sender, logger)

	// ---- HTTP server ----
	auth := web.NewAuthManager(cfg.Admin.JWTSecret, 30*time.Minute)
	router := web.NewRouter(subUC, confUC, newsUC, auth, logger)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server stopped")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
	cancel()
}
