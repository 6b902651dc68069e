package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"portfolio-server/internal/domain"
	"portfolio-server/internal/model"
)

// Writer replaces the stored record of one locale.
type Writer interface {
	ReplaceProfile(ctx context.Context, rec *domain.ProfileRecord) (string, error)
}

type Seeder interface {
	Name() string
	Run(ctx context.Context, w Writer) error
}

// ProfileSeeder publishes one record as the active profile of its locale.
type ProfileSeeder struct {
	Record *domain.ProfileRecord
}

func (s ProfileSeeder) Name() string {
	return "profile:" + s.Record.Locale
}

func (s ProfileSeeder) Run(ctx context.Context, w Writer) error {
	if _, err := domain.ParseLocale(s.Record.Locale); err != nil || s.Record.Locale == "" {
		return fmt.Errorf("locale %q: %w", s.Record.Locale, domain.ErrUnsupportedLocale)
	}
	if err := model.ValidateProfile(s.Record); err != nil {
		return err
	}
	id, err := w.ReplaceProfile(ctx, s.Record)
	if err != nil {
		return err
	}
	slog.Info("profile seeded", "locale", s.Record.Locale, "id", id)
	return nil
}

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, w Writer) error {
	if w == nil {
		return fmt.Errorf("nil writer")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, w); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}
