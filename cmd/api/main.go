package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/game-admin-api/internal/application/audit"
	"github.com/game-admin-api/internal/application/otp"
	"github.com/game-admin-api/internal/config"
	"github.com/game-admin-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/game-admin-api/internal/infrastructure/jwt"
	"github.com/game-admin-api/internal/infrastructure/mailer"
	"github.com/game-admin-api/internal/infrastructure/postgres"
	"github.com/game-admin-api/internal/infrastructure/redis"
	s3infra "github.com/game-admin-api/internal/infrastructure/s3"
	"github.com/game-admin-api/internal/jobs"
	transporthttp "github.com/game-admin-api/internal/transport/http"
	appmiddleware "github.com/game-admin-api/internal/transport/http/middleware"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading from environment")
	}

	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	db, err := postgres.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	if cfg.DBMigrate {
		if err := postgres.Migrate(db); err != nil {
			return err
		}
	}

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		return fmt.Errorf("jwt provider: %w", err)
	}

	// Bootstrap DynamoDB tables only when a dynamo-backed store is selected.
	var dynamoClient dynamo.API
	if cfg.OTPBackend == "dynamo" || cfg.AuditSink == "dynamo" {
		c, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			return err
		}
		dynamo.Bootstrap(ctx, c, cfg.DynamoTables)
		dynamoClient = c
	}

	scheduler, err := jobs.NewScheduler(logger)
	if err != nil {
		return err
	}

	var otpStore otp.Store
	switch cfg.OTPBackend {
	case "memory", "":
		mem := otp.NewMemoryStore()
		if err := scheduler.Every("otp-sweep", cfg.OTPSweepInterval, jobs.OTPSweep(mem, logger, time.Now)); err != nil {
			return err
		}
		otpStore = mem
	case "redis":
		rc, err := redis.NewClient(ctx, cfg)
		if err != nil {
			return err
		}
		defer rc.Close()
		otpStore = redis.NewOTPStore(rc)
	case "dynamo":
		otpStore = dynamo.NewOTPStore(dynamoClient, cfg.DynamoTables.OTPs)
	default:
		return fmt.Errorf("unknown OTP backend %q", cfg.OTPBackend)
	}

	var auditSink audit.Sink
	switch cfg.AuditSink {
	case "postgres", "":
		auditSink = postgres.NewAuditRepo(db)
	case "dynamo":
		auditSink = dynamo.NewAuditRepo(dynamoClient, cfg.DynamoTables.AuditLog)
	default:
		return fmt.Errorf("unknown audit sink %q", cfg.AuditSink)
	}

	s3Client, err := s3infra.NewClient(ctx, cfg)
	if err != nil {
		return err
	}
	mail, err := mailer.New(ctx, cfg)
	if err != nil {
		return err
	}

	limiter := appmiddleware.NewRateLimiter(rate.Limit(5), 10)
	defer limiter.Close()

	deps := &transporthttp.Deps{
		DB:          db,
		OTPStore:    otpStore,
		AuditSink:   auditSink,
		Objects:     s3infra.NewStore(s3Client, cfg),
		Mailer:      mail,
		JWTProvider: jwtProvider,
		RateLimiter: limiter,
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      transporthttp.NewRouter(cfg, deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	scheduler.Start()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv,
			"otp_backend", cfg.OTPBackend, "audit_sink", cfg.AuditSink)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	if err := scheduler.Shutdown(); err != nil {
		logger.Warn("scheduler shutdown", "err", err)
	}
	logger.Info("server stopped")
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
