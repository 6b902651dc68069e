package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "portfolio-server/internal/adapter/http"
	repo "portfolio-server/internal/adapter/repository"
	"portfolio-server/internal/config"
	"portfolio-server/internal/usecase"
	infra "portfolio-server/pkg/infrastructure"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.App.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, closeStore, err := repo.Open(ctx, cfg.Database.URL)
	if err != nil {
		slog.Error("profile store unavailable", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	var store usecase.ProfileStore = db

	cache := infra.NewRedisCache(ctx, cfg.Cache)
	defer cache.Close()
	if cache.Enabled() {
		store = repo.NewCachedProfileRepo(store, cache, cfg.Cache.TTL)
	}

	resumes, err := usecase.NewResumeService(infra.NewChromedpRenderer(cfg.Renderer), nil)
	if err != nil {
		slog.Error("resume service", "error", err)
		os.Exit(1)
	}
	contact := usecase.NewContactService(infra.NewSMTPMailer(cfg.SMTP))

	h := httpadapter.NewHandler(usecase.NewResolver(store), resumes, contact, cfg.App.ProfileFallback)
	app := httpadapter.NewApp(h)

	go func() {
		slog.Info("server listening", "port", cfg.App.HTTPPort, "env", cfg.App.Environment)
		if err := app.Listen(":" + cfg.App.HTTPPort); err != nil {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("shutdown", "error", err)
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}
