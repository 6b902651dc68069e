package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"portfolio-server/internal/domain"

	_ "modernc.org/sqlite"
)

// activeProfileSQLite has the same shape as activeProfilePG. Subquery results
// are wrapped in json() so they nest as JSON instead of strings.
const activeProfileSQLite = `
SELECT json_object(
	'id', r.id,
	'locale', r.locale,
	'person', json((
		SELECT json_object(
			'fullName', p.full_name, 'role', p.role, 'location', p.location, 'email', p.email,
			'phone', p.phone, 'website', p.website, 'github', p.github, 'linkedin', p.linkedin,
			'availabilityLabel', p.availability_label, 'shortBio', p.short_bio, 'about', json(p.about))
		FROM persons p WHERE p.resume_id = r.id)),
	'highlights', json((
		SELECT json_group_array(json(x)) FROM (
			SELECT json_object('label', h.label, 'value', h.value, 'hint', h.hint, 'order', h.sort_order) AS x
			FROM highlights h WHERE h.resume_id = r.id ORDER BY h.sort_order))),
	'skills', json((
		SELECT json_group_array(json(x)) FROM (
			SELECT json_object('name', s.name, 'category', s.category, 'order', s.sort_order) AS x
			FROM skills s WHERE s.resume_id = r.id ORDER BY s.sort_order))),
	'experiences', json((
		SELECT json_group_array(json(x)) FROM (
			SELECT json_object(
				'company', e.company, 'title', e.title, 'location', e.location,
				'startDate', e.start_date, 'endDate', e.end_date, 'summary', e.summary,
				'bullets', json(e.bullets), 'tech', json(e.tech), 'order', e.sort_order) AS x
			FROM experiences e WHERE e.resume_id = r.id ORDER BY e.sort_order))),
	'projects', json((
		SELECT json_group_array(json(x)) FROM (
			SELECT json_object(
				'slug', pr.slug, 'name', pr.name, 'summary', pr.summary, 'description', pr.description,
				'role', pr.role, 'highlights', json(pr.highlights), 'tech', json(pr.tech),
				'liveUrl', pr.live_url, 'repoUrl', pr.repo_url, 'order', pr.sort_order) AS x
			FROM projects pr WHERE pr.resume_id = r.id ORDER BY pr.sort_order))),
	'education', json((
		SELECT json_group_array(json(x)) FROM (
			SELECT json_object(
				'institution', ed.institution, 'degree', ed.degree, 'field', ed.field,
				'startDate', ed.start_date, 'endDate', ed.end_date, 'description', ed.description,
				'order', ed.sort_order) AS x
			FROM education ed WHERE ed.resume_id = r.id ORDER BY ed.sort_order)))
)
FROM resumes r
WHERE r.locale = ? AND r.is_active = 1
LIMIT 1`

// OpenSQLite opens the embedded store. dsn is a modernc.org/sqlite data
// source, either a path, a file: URI or ":memory:".
func OpenSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)
	return db, nil
}

type SQLiteProfileRepo struct {
	db *sql.DB
}

func NewSQLiteProfileRepo(db *sql.DB) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: db}
}

// Exec adapts the store to migration.Execer.
func (r *SQLiteProfileRepo) Exec(ctx context.Context, query string) error {
	_, err := r.db.ExecContext(ctx, query)
	return err
}

func (r *SQLiteProfileRepo) ActiveProfile(ctx context.Context, locale domain.Locale) (*domain.ProfileRecord, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, activeProfileSQLite, locale.String()).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeRecord([]byte(raw))
}

func (r *SQLiteProfileRepo) ActiveLocales(ctx context.Context) ([]domain.Locale, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT locale FROM resumes WHERE is_active = 1 ORDER BY locale`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locales := []domain.Locale{}
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, err
		}
		locales = append(locales, domain.Locale(l))
	}
	return locales, rows.Err()
}

func (r *SQLiteProfileRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteProfileRepo) ReplaceProfile(ctx context.Context, rec *domain.ProfileRecord) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback() //nolint:errcheck

	exec := func(ctx context.Context, q string, args ...any) error {
		_, err := tx.ExecContext(ctx, q, args...)
		return err
	}
	id, err := writeProfile(ctx, exec, jsonList, rec)
	if err != nil {
		return "", fmt.Errorf("replace profile %s: %w", rec.Locale, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("replace profile %s: %w", rec.Locale, err)
	}
	return id, nil
}

// jsonList stores lists as JSON array text.
func jsonList(in []string) (any, error) {
	if in == nil {
		return "[]", nil
	}
	b, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// SQLiteDSN extracts the data source from a "sqlite:" or "file:" DATABASE_URL.
func SQLiteDSN(url string) (string, bool) {
	switch {
	case strings.HasPrefix(url, "sqlite://"):
		return strings.TrimPrefix(url, "sqlite://"), true
	case strings.HasPrefix(url, "sqlite:"):
		return strings.TrimPrefix(url, "sqlite:"), true
	case strings.HasPrefix(url, "file:"):
		return url, true
	}
	return "", false
}
