package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio-server/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// activeProfilePG assembles one complete record in a single round trip.
const activeProfilePG = `
SELECT json_build_object(
	'id', r.id::text,
	'locale', r.locale,
	'person', (
		SELECT json_build_object(
			'fullName', p.full_name, 'role', p.role, 'location', p.location, 'email', p.email,
			'phone', p.phone, 'website', p.website, 'github', p.github, 'linkedin', p.linkedin,
			'availabilityLabel', p.availability_label, 'shortBio', p.short_bio, 'about', p.about)
		FROM persons p WHERE p.resume_id = r.id),
	'highlights', coalesce((
		SELECT json_agg(json_build_object('label', h.label, 'value', h.value, 'hint', h.hint, 'order', h.sort_order) ORDER BY h.sort_order)
		FROM highlights h WHERE h.resume_id = r.id), '[]'::json),
	'skills', coalesce((
		SELECT json_agg(json_build_object('name', s.name, 'category', s.category, 'order', s.sort_order) ORDER BY s.sort_order)
		FROM skills s WHERE s.resume_id = r.id), '[]'::json),
	'experiences', coalesce((
		SELECT json_agg(json_build_object(
			'company', e.company, 'title', e.title, 'location', e.location,
			'startDate', e.start_date, 'endDate', e.end_date, 'summary', e.summary,
			'bullets', e.bullets, 'tech', e.tech, 'order', e.sort_order) ORDER BY e.sort_order)
		FROM experiences e WHERE e.resume_id = r.id), '[]'::json),
	'projects', coalesce((
		SELECT json_agg(json_build_object(
			'slug', pr.slug, 'name', pr.name, 'summary', pr.summary, 'description', pr.description,
			'role', pr.role, 'highlights', pr.highlights, 'tech', pr.tech,
			'liveUrl', pr.live_url, 'repoUrl', pr.repo_url, 'order', pr.sort_order) ORDER BY pr.sort_order)
		FROM projects pr WHERE pr.resume_id = r.id), '[]'::json),
	'education', coalesce((
		SELECT json_agg(json_build_object(
			'institution', ed.institution, 'degree', ed.degree, 'field', ed.field,
			'startDate', ed.start_date, 'endDate', ed.end_date, 'description', ed.description,
			'order', ed.sort_order) ORDER BY ed.sort_order)
		FROM education ed WHERE ed.resume_id = r.id), '[]'::json)
)
FROM resumes r
WHERE r.locale = $1 AND r.is_active
LIMIT 1`

type PostgresProfileRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresProfileRepo(pool *pgxpool.Pool) *PostgresProfileRepo {
	return &PostgresProfileRepo{pool: pool}
}

func (r *PostgresProfileRepo) ActiveProfile(ctx context.Context, locale domain.Locale) (*domain.ProfileRecord, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, activeProfilePG, locale.String()).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw)
}

func (r *PostgresProfileRepo) ActiveLocales(ctx context.Context) ([]domain.Locale, error) {
	rows, err := r.pool.Query(ctx, `SELECT locale FROM resumes WHERE is_active ORDER BY locale`)
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

func (r *PostgresProfileRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// ReplaceProfile swaps the stored record for rec.Locale in one transaction.
func (r *PostgresProfileRepo) ReplaceProfile(ctx context.Context, rec *domain.ProfileRecord) (string, error) {
	var id string
	err := r.pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		exec := func(ctx context.Context, q string, args ...any) error {
			_, err := tx.Exec(ctx, rebind(q), args...)
			return err
		}
		var err error
		id, err = writeProfile(ctx, exec, pgList, rec)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("replace profile %s: %w", rec.Locale, err)
	}
	return id, nil
}

// pgList binds lists as text[]; nil becomes an empty array.
func pgList(in []string) (any, error) {
	if in == nil {
		return []string{}, nil
	}
	return in, nil
}

// decodeRecord maps a JSON record without a person to ErrProfileNotFound.
func decodeRecord(raw []byte) (*domain.ProfileRecord, error) {
	var rec domain.ProfileRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if rec.Person == nil {
		return nil, domain.ErrProfileNotFound
	}
	return &rec, nil
}
