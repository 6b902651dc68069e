package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"portfolio-server/internal/domain"

	"github.com/google/uuid"
)

// execFunc runs one statement inside the caller's transaction. Queries use
// "?" placeholders; the Postgres repo rebinds them.
type execFunc func(ctx context.Context, query string, args ...any) error

// listFunc encodes an ordered string list for the target column type.
type listFunc func([]string) (any, error)

var childTables = []string{"persons", "highlights", "skills", "experiences", "projects", "education"}

// writeProfile deletes every record stored for rec.Locale and inserts rec as
// the new active one. It returns the id of the new resume row.
func writeProfile(ctx context.Context, exec execFunc, list listFunc, rec *domain.ProfileRecord) (string, error) {
	if rec.Person == nil {
		return "", fmt.Errorf("profile %s has no person", rec.Locale)
	}
	for _, table := range childTables {
		q := "DELETE FROM " + table + " WHERE resume_id IN (SELECT id FROM resumes WHERE locale = ?)"
		if err := exec(ctx, q, rec.Locale); err != nil {
			return "", fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if err := exec(ctx, "DELETE FROM resumes WHERE locale = ?", rec.Locale); err != nil {
		return "", fmt.Errorf("clear resumes: %w", err)
	}

	id := uuid.New().String()
	if err := exec(ctx, "INSERT INTO resumes (id, locale, is_active) VALUES (?, ?, ?)", id, rec.Locale, true); err != nil {
		return "", fmt.Errorf("insert resume: %w", err)
	}

	p := rec.Person
	about, err := list(p.About)
	if err != nil {
		return "", err
	}
	if err := exec(ctx, `INSERT INTO persons (resume_id, full_name, role, location, email, phone, website, github, linkedin, availability_label, short_bio, about)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.FullName, p.Role, p.Location, p.Email, p.Phone, p.Website, p.Github, p.Linkedin, p.AvailabilityLabel, p.ShortBio, about); err != nil {
		return "", fmt.Errorf("insert person: %w", err)
	}

	for _, h := range rec.Highlights {
		if err := exec(ctx, "INSERT INTO highlights (id, resume_id, label, value, hint, sort_order) VALUES (?, ?, ?, ?, ?, ?)",
			uuid.New().String(), id, h.Label, h.Value, h.Hint, h.Order); err != nil {
			return "", fmt.Errorf("insert highlight %q: %w", h.Label, err)
		}
	}
	for _, s := range rec.Skills {
		if err := exec(ctx, "INSERT INTO skills (id, resume_id, name, category, sort_order) VALUES (?, ?, ?, ?, ?)",
			uuid.New().String(), id, s.Name, string(s.Category), s.Order); err != nil {
			return "", fmt.Errorf("insert skill %q: %w", s.Name, err)
		}
	}
	for _, e := range rec.Experiences {
		bullets, err := list(e.Bullets)
		if err != nil {
			return "", err
		}
		tech, err := list(e.Tech)
		if err != nil {
			return "", err
		}
		if err := exec(ctx, `INSERT INTO experiences (id, resume_id, company, title, location, start_date, end_date, summary, bullets, tech, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), id, e.Company, e.Title, e.Location, e.StartDate, e.EndDate, e.Summary, bullets, tech, e.Order); err != nil {
			return "", fmt.Errorf("insert experience %q: %w", e.Company, err)
		}
	}
	for _, pr := range rec.Projects {
		highlights, err := list(pr.Highlights)
		if err != nil {
			return "", err
		}
		tech, err := list(pr.Tech)
		if err != nil {
			return "", err
		}
		if err := exec(ctx, `INSERT INTO projects (id, resume_id, slug, name, summary, description, role, highlights, tech, live_url, repo_url, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), id, pr.Slug, pr.Name, pr.Summary, pr.Description, pr.Role, highlights, tech, pr.LiveURL, pr.RepoURL, pr.Order); err != nil {
			return "", fmt.Errorf("insert project %q: %w", pr.Slug, err)
		}
	}
	for _, e := range rec.Education {
		if err := exec(ctx, `INSERT INTO education (id, resume_id, institution, degree, field, start_date, end_date, description, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), id, e.Institution, e.Degree, e.Field, e.StartDate, e.EndDate, e.Description, e.Order); err != nil {
			return "", fmt.Errorf("insert education %q: %w", e.Institution, err)
		}
	}
	return id, nil
}

// rebind rewrites "?" placeholders to Postgres "$n" form.
func rebind(q string) string {
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
