package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	repo "portfolio-server/internal/adapter/repository"
	"portfolio-server/internal/config"
	"portfolio-server/internal/content"
	"portfolio-server/internal/domain"
	"portfolio-server/internal/seeder"
	infra "portfolio-server/pkg/infrastructure"
)

func main() {
	file := flag.String("file", "", "profile record JSON to seed instead of the bundled snapshots")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	seeders, err := loadSeeders(*file)
	if err != nil {
		slog.Error("load profiles", "error", err)
		os.Exit(1)
	}

	store, closeStore, err := repo.Open(ctx, cfg.Database.URL)
	if err != nil {
		slog.Error("profile store unavailable", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	if err := (seeder.Runner{Seeders: seeders}).Run(ctx, store); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	// stale cached records would hide the new ones until they expire
	cache := infra.NewRedisCache(ctx, cfg.Cache)
	defer cache.Close()
	if err := cache.DeleteByPattern(ctx, "portfolio:profile:*"); err != nil {
		slog.Warn("cache invalidation failed", "error", err)
	}
	slog.Info("seeding completed", "profiles", len(seeders))
}

func loadSeeders(file string) ([]seeder.Seeder, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		rec, err := content.Decode(b)
		if err != nil {
			return nil, err
		}
		return []seeder.Seeder{seeder.ProfileSeeder{Record: rec}}, nil
	}

	var out []seeder.Seeder
	for _, l := range domain.SupportedLocales {
		rec, err := content.Snapshot(l)
		if err != nil {
			return nil, err
		}
		out = append(out, seeder.ProfileSeeder{Record: rec})
	}
	return out, nil
}
