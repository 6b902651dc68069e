package repository

import (
	"context"
	"log/slog"
	"time"

	"portfolio-server/internal/domain"
	"portfolio-server/internal/usecase"
)

// Cache is the JSON key/value store the decorator reads through.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// CachedProfileRepo serves active profiles from the cache and falls through
// to the wrapped store on a miss or cache failure. Misses in the store are
// never cached, so a freshly seeded locale shows up without a flush.
type CachedProfileRepo struct {
	usecase.ProfileStore
	cache Cache
	ttl   time.Duration
}

func NewCachedProfileRepo(store usecase.ProfileStore, cache Cache, ttl time.Duration) *CachedProfileRepo {
	return &CachedProfileRepo{ProfileStore: store, cache: cache, ttl: ttl}
}

func profileKey(locale domain.Locale) string {
	return "portfolio:profile:" + locale.String()
}

func (r *CachedProfileRepo) ActiveProfile(ctx context.Context, locale domain.Locale) (*domain.ProfileRecord, error) {
	key := profileKey(locale)

	var cached domain.ProfileRecord
	ok, err := r.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		slog.Warn("profile cache read failed", "key", key, "error", err)
	}
	if ok && err == nil && cached.Person != nil {
		return &cached, nil
	}

	rec, err := r.ProfileStore.ActiveProfile(ctx, locale)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetJSON(ctx, key, rec, r.ttl); err != nil {
		slog.Warn("profile cache write failed", "key", key, "error", err)
	}
	return rec, nil
}
