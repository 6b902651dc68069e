package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"portfolio-server/internal/content"
	"portfolio-server/internal/domain"
	"portfolio-server/internal/model"
)

// ProfileStore is the read side of the profile database.
type ProfileStore interface {
	// ActiveProfile returns domain.ErrProfileNotFound when the locale has no
	// active record. Any other error is a store failure.
	ActiveProfile(ctx context.Context, locale domain.Locale) (*domain.ProfileRecord, error)
	ActiveLocales(ctx context.Context) ([]domain.Locale, error)
	Ping(ctx context.Context) error
}

// Resolver turns stored or bundled profile records into ResumeData. Callers
// compose the two tiers themselves: ResolvePrimary first, then
// ResolveFallback when they want the bundled snapshot on a miss.
type Resolver struct {
	store ProfileStore
}

func NewResolver(store ProfileStore) *Resolver {
	return &Resolver{store: store}
}

// ResolvePrimary reads the active record for locale. found is false, with a
// nil error, when no active record exists.
func (r *Resolver) ResolvePrimary(ctx context.Context, locale domain.Locale) (data domain.ResumeData, found bool, err error) {
	rec, err := r.store.ActiveProfile(ctx, locale)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return domain.ResumeData{}, false, nil
	}
	if err != nil {
		return domain.ResumeData{}, false, fmt.Errorf("load profile %s: %w", locale, err)
	}
	if err := model.ValidateProfile(rec); err != nil {
		return domain.ResumeData{}, false, fmt.Errorf("profile %s: %w", locale, err)
	}
	return Normalize(rec), true, nil
}

// ResolveFallback returns the bundled snapshot for locale.
func (r *Resolver) ResolveFallback(locale domain.Locale) (domain.ResumeData, error) {
	rec, err := content.Snapshot(locale)
	if err != nil {
		return domain.ResumeData{}, err
	}
	if err := model.ValidateProfile(rec); err != nil {
		return domain.ResumeData{}, fmt.Errorf("snapshot %s: %w", locale, err)
	}
	return Normalize(rec), nil
}

func (r *Resolver) Locales(ctx context.Context) ([]domain.Locale, error) {
	return r.store.ActiveLocales(ctx)
}

func (r *Resolver) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// Normalize orders every collection by its order field and groups skills by
// category. Categories with no skills yield empty lists.
func Normalize(rec *domain.ProfileRecord) domain.ResumeData {
	data := domain.ResumeData{
		ID:          rec.ID,
		Locale:      domain.Locale(rec.Locale),
		Highlights:  sortedByOrder(rec.Highlights, func(h domain.Highlight) int { return h.Order }),
		Experiences: sortedByOrder(rec.Experiences, func(e domain.Experience) int { return e.Order }),
		Projects:    sortedByOrder(rec.Projects, func(p domain.Project) int { return p.Order }),
		Education:   sortedByOrder(rec.Education, func(e domain.Education) int { return e.Order }),
		Skills:      GroupSkills(rec.Skills),
	}
	if rec.Person != nil {
		data.Person = *rec.Person
		data.Person.About = nonNil(rec.Person.About)
	}
	for i := range data.Experiences {
		data.Experiences[i].Bullets = nonNil(data.Experiences[i].Bullets)
		data.Experiences[i].Tech = nonNil(data.Experiences[i].Tech)
	}
	for i := range data.Projects {
		data.Projects[i].Highlights = nonNil(data.Projects[i].Highlights)
		data.Projects[i].Tech = nonNil(data.Projects[i].Tech)
	}
	return data
}

// GroupSkills splits a flat skill list by category, keeping the relative
// order given by each skill's order field. Unknown categories are dropped.
func GroupSkills(skills []domain.Skill) domain.SkillGroups {
	g := domain.SkillGroups{Primary: []string{}, Secondary: []string{}, Tooling: []string{}}
	for _, s := range sortedByOrder(skills, func(s domain.Skill) int { return s.Order }) {
		switch s.Category {
		case domain.SkillPrimary:
			g.Primary = append(g.Primary, s.Name)
		case domain.SkillSecondary:
			g.Secondary = append(g.Secondary, s.Name)
		case domain.SkillTooling:
			g.Tooling = append(g.Tooling, s.Name)
		}
	}
	return g
}

func sortedByOrder[T any](in []T, order func(T) int) []T {
	out := slices.Clone(in)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(order(a), order(b)) })
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}
