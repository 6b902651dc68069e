package seeder

import (
	"context"
	"errors"
	"testing"

	"portfolio-server/internal/adapter/repository"
	"portfolio-server/internal/content"
	"portfolio-server/internal/domain"
	"portfolio-server/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	locales []string
}

func (w *recordingWriter) ReplaceProfile(_ context.Context, rec *domain.ProfileRecord) (string, error) {
	w.locales = append(w.locales, rec.Locale)
	return "id-" + rec.Locale, nil
}

func snapshots(t *testing.T) []Seeder {
	t.Helper()
	var out []Seeder
	for _, l := range domain.SupportedLocales {
		rec, err := content.Snapshot(l)
		require.NoError(t, err)
		out = append(out, ProfileSeeder{Record: rec})
	}
	return out
}

func TestRunnerSeedsEveryLocale(t *testing.T) {
	w := &recordingWriter{}
	require.NoError(t, Runner{Seeders: snapshots(t)}.Run(context.Background(), w))
	assert.Equal(t, []string{"en", "es"}, w.locales)
}

func TestProfileSeederRejectsInvalidRecords(t *testing.T) {
	w := &recordingWriter{}

	err := ProfileSeeder{Record: &domain.ProfileRecord{Locale: "fr", Person: &domain.Person{}}}.Run(context.Background(), w)
	require.ErrorIs(t, err, domain.ErrUnsupportedLocale)

	rec, err := content.Snapshot(domain.LocaleEN)
	require.NoError(t, err)
	rec.Person.Email = ""
	err = Runner{Seeders: []Seeder{ProfileSeeder{Record: rec}}}.Run(context.Background(), w)
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "seed profile:en")
	assert.Empty(t, w.locales)
}

func TestRunnerAgainstSQLite(t *testing.T) {
	ctx := context.Background()
	store, closeStore, err := repository.Open(ctx, "sqlite::memory:")
	require.NoError(t, err)
	defer closeStore()

	require.NoError(t, Runner{Seeders: snapshots(t)}.Run(ctx, store))
	require.NoError(t, Runner{Seeders: snapshots(t)}.Run(ctx, store))

	locales, err := store.ActiveLocales(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Locale{domain.LocaleEN, domain.LocaleES}, locales)

	rec, err := store.ActiveProfile(ctx, domain.LocaleES)
	require.NoError(t, err)
	assert.Equal(t, "Jean Ortiz", rec.Person.FullName)
}
