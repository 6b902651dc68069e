package repository

import (
	"context"
	"testing"

	"portfolio-server/internal/content"
	"portfolio-server/internal/domain"
	"portfolio-server/internal/infrastructure/migration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteRepo(t *testing.T) *SQLiteProfileRepo {
	t.Helper()
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteProfileRepo(db)
	require.NoError(t, migration.RunMigrations(context.Background(), repo.Exec, migration.SQLite))
	return repo
}

func TestSQLiteRepoMissingLocale(t *testing.T) {
	repo := newTestSQLiteRepo(t)

	_, err := repo.ActiveProfile(context.Background(), domain.LocaleES)
	require.ErrorIs(t, err, domain.ErrProfileNotFound)

	locales, err := repo.ActiveLocales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, locales)
}

func TestSQLiteRepoRoundTripsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := newTestSQLiteRepo(t)

	snap, err := content.Snapshot(domain.LocaleEN)
	require.NoError(t, err)
	id, err := repo.ReplaceProfile(ctx, snap)
	require.NoError(t, err)

	rec, err := repo.ActiveProfile(ctx, domain.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "en", rec.Locale)
	assert.Equal(t, snap.Person, rec.Person)
	assert.ElementsMatch(t, snap.Skills, rec.Skills)
	assert.Equal(t, snap.Experiences, rec.Experiences)
	assert.Equal(t, snap.Projects, rec.Projects)
	assert.Equal(t, snap.Education, rec.Education)
	assert.Equal(t, snap.Highlights, rec.Highlights)
}

func TestSQLiteRepoOrdersBySortOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestSQLiteRepo(t)

	_, err := repo.ReplaceProfile(ctx, &domain.ProfileRecord{
		Locale: "es",
		Person: &domain.Person{FullName: "Jean Ortiz", Role: "Dev", Location: "Lima", Email: "j@example.com", ShortBio: "bio"},
		Skills: []domain.Skill{
			{Name: "c", Category: domain.SkillTooling, Order: 2},
			{Name: "a", Category: domain.SkillPrimary, Order: 0},
			{Name: "b", Category: domain.SkillSecondary, Order: 1},
		},
		Experiences: []domain.Experience{
			{Company: "Later", Title: "t", StartDate: "2020", EndDate: "2021", Order: 5},
			{Company: "Earlier", Title: "t", StartDate: "2019", EndDate: "2020", Order: 1},
		},
	})
	require.NoError(t, err)

	rec, err := repo.ActiveProfile(ctx, domain.LocaleES)
	require.NoError(t, err)
	require.Len(t, rec.Skills, 3)
	assert.Equal(t, "a", rec.Skills[0].Name)
	assert.Equal(t, "c", rec.Skills[2].Name)
	assert.Equal(t, "Earlier", rec.Experiences[0].Company)
	assert.Equal(t, []string{}, rec.Experiences[0].Bullets)
	assert.Nil(t, rec.Person.Phone)
	assert.Equal(t, []string{}, rec.Person.About)
	assert.Equal(t, []domain.Project{}, rec.Projects)
}

func TestSQLiteRepoReplaceKeepsOneActivePerLocale(t *testing.T) {
	ctx := context.Background()
	repo := newTestSQLiteRepo(t)

	en, err := content.Snapshot(domain.LocaleEN)
	require.NoError(t, err)
	es, err := content.Snapshot(domain.LocaleES)
	require.NoError(t, err)

	_, err = repo.ReplaceProfile(ctx, en)
	require.NoError(t, err)
	_, err = repo.ReplaceProfile(ctx, es)
	require.NoError(t, err)
	second, err := repo.ReplaceProfile(ctx, en)
	require.NoError(t, err)

	rec, err := repo.ActiveProfile(ctx, domain.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, second, rec.ID)
	assert.Len(t, rec.Skills, len(en.Skills))

	locales, err := repo.ActiveLocales(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Locale{domain.LocaleEN, domain.LocaleES}, locales)
	require.NoError(t, repo.Ping(ctx))
}

func TestSQLiteDSN(t *testing.T) {
	dsn, ok := SQLiteDSN("sqlite:./data/portfolio.db")
	assert.True(t, ok)
	assert.Equal(t, "./data/portfolio.db", dsn)

	dsn, ok = SQLiteDSN("file:portfolio.db?_pragma=busy_timeout(5000)")
	assert.True(t, ok)
	assert.Equal(t, "file:portfolio.db?_pragma=busy_timeout(5000)", dsn)

	_, ok = SQLiteDSN("postgres://localhost/portfolio")
	assert.False(t, ok)
}

func TestRebind(t *testing.T) {
	assert.Equal(t, "INSERT INTO t (a, b) VALUES ($1, $2)", rebind("INSERT INTO t (a, b) VALUES (?, ?)"))
}
