package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"portfolio-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	items  map[string][]byte
	getErr error
}

func newMemCache() *memCache { return &memCache{items: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.items[key] = b
	return nil
}

type countingStore struct {
	rec   *domain.ProfileRecord
	err   error
	calls int
}

func (s *countingStore) ActiveProfile(context.Context, domain.Locale) (*domain.ProfileRecord, error) {
	s.calls++
	return s.rec, s.err
}

func (s *countingStore) ActiveLocales(context.Context) ([]domain.Locale, error) {
	return []domain.Locale{domain.LocaleEN}, nil
}

func (s *countingStore) Ping(context.Context) error { return nil }

func TestCachedProfileRepoReadsThrough(t *testing.T) {
	store := &countingStore{rec: &domain.ProfileRecord{ID: "1", Locale: "en", Person: &domain.Person{FullName: "Jean"}}}
	cache := newMemCache()
	repo := NewCachedProfileRepo(store, cache, time.Minute)

	for range 3 {
		rec, err := repo.ActiveProfile(context.Background(), domain.LocaleEN)
		require.NoError(t, err)
		assert.Equal(t, "Jean", rec.Person.FullName)
	}
	assert.Equal(t, 1, store.calls)
	assert.Contains(t, cache.items, "portfolio:profile:en")
}

func TestCachedProfileRepoDoesNotCacheMisses(t *testing.T) {
	store := &countingStore{err: domain.ErrProfileNotFound}
	cache := newMemCache()
	repo := NewCachedProfileRepo(store, cache, time.Minute)

	_, err := repo.ActiveProfile(context.Background(), domain.LocaleES)
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
	_, err = repo.ActiveProfile(context.Background(), domain.LocaleES)
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Equal(t, 2, store.calls)
	assert.Empty(t, cache.items)
}

func TestCachedProfileRepoFallsThroughOnCacheError(t *testing.T) {
	store := &countingStore{rec: &domain.ProfileRecord{ID: "1", Locale: "en", Person: &domain.Person{FullName: "Jean"}}}
	cache := newMemCache()
	cache.getErr = errors.New("redis: connection refused")
	repo := NewCachedProfileRepo(store, cache, time.Minute)

	rec, err := repo.ActiveProfile(context.Background(), domain.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, "1", rec.ID)

	locales, err := repo.ActiveLocales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Locale{domain.LocaleEN}, locales)
}
