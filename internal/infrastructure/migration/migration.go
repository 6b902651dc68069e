package migration

import (
	"context"
	"fmt"
	"log/slog"
)

// Migration represents a database migration. Every statement is idempotent so
// the whole list is replayed on each start.
type Migration struct {
	Name string
	SQL  string
}

// Execer runs one statement without arguments.
type Execer func(ctx context.Context, query string) error

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, exec Execer, migrations []Migration) error {
	slog.Info("Starting database migrations", "count", len(migrations))

	for _, m := range migrations {
		if err := exec(ctx, m.SQL); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		slog.Debug("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Postgres is the profile schema for the primary store.
var Postgres = []Migration{
	{
		Name: "create_resumes",
		SQL: `CREATE TABLE IF NOT EXISTS resumes (
			id uuid PRIMARY KEY,
			locale text NOT NULL,
			is_active boolean NOT NULL DEFAULT false,
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
	},
	{
		Name: "unique_active_resume_per_locale",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS resumes_active_locale_idx ON resumes (locale) WHERE is_active`,
	},
	{
		Name: "create_persons",
		SQL: `CREATE TABLE IF NOT EXISTS persons (
			resume_id uuid PRIMARY KEY REFERENCES resumes(id) ON DELETE CASCADE,
			full_name text NOT NULL,
			role text NOT NULL,
			location text NOT NULL,
			email text NOT NULL,
			phone text,
			website text,
			github text,
			linkedin text,
			availability_label text,
			short_bio text NOT NULL,
			about text[] NOT NULL DEFAULT '{}'
		)`,
	},
	{
		Name: "create_highlights",
		SQL: `CREATE TABLE IF NOT EXISTS highlights (
			id uuid PRIMARY KEY,
			resume_id uuid NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			label text NOT NULL,
			value text NOT NULL,
			hint text,
			sort_order integer NOT NULL DEFAULT 0
		)`,
	},
	{
		Name: "create_skills",
		SQL: `CREATE TABLE IF NOT EXISTS skills (
			id uuid PRIMARY KEY,
			resume_id uuid NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			name text NOT NULL,
			category text NOT NULL CHECK (category IN ('primary', 'secondary', 'tooling')),
			sort_order integer NOT NULL DEFAULT 0
		)`,
	},
	{
		Name: "create_experiences",
		SQL: `CREATE TABLE IF NOT EXISTS experiences (
			id uuid PRIMARY KEY,
			resume_id uuid NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			company text NOT NULL,
			title text NOT NULL,
			location text,
			start_date text NOT NULL,
			end_date text NOT NULL,
			summary text,
			bullets text[] NOT NULL DEFAULT '{}',
			tech text[] NOT NULL DEFAULT '{}',
			sort_order integer NOT NULL DEFAULT 0
		)`,
	},
	{
		Name: "create_projects",
		SQL: `CREATE TABLE IF NOT EXISTS projects (
			id uuid PRIMARY KEY,
			resume_id uuid NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			slug text NOT NULL,
			name text NOT NULL,
			summary text NOT NULL,
			description text,
			role text,
			highlights text[] NOT NULL DEFAULT '{}',
			tech text[] NOT NULL DEFAULT '{}',
			live_url text,
			repo_url text,
			sort_order integer NOT NULL DEFAULT 0,
			UNIQUE (resume_id, slug)
		)`,
	},
	{
		Name: "create_education",
		SQL: `CREATE TABLE IF NOT EXISTS education (
			id uuid PRIMARY KEY,
			resume_id uuid NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			institution text NOT NULL,
			degree text NOT NULL,
			field text,
			start_date text NOT NULL,
			end_date text,
			description text,
			sort_order integer NOT NULL DEFAULT 0
		)`,
	},
}

// SQLite mirrors Postgres for the embedded store. Lists are JSON arrays in
// TEXT columns and booleans are integers.
var SQLite = []Migration{
	{
		Name: "create_resumes",
		SQL: `CREATE TABLE IF NOT EXISTS resumes (
			id TEXT PRIMARY KEY,
			locale TEXT NOT NULL,
			is_active INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Name: "unique_active_resume_per_locale",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS resumes_active_locale_idx ON resumes (locale) WHERE is_active = 1`,
	},
	{
		Name: "create_persons",
		SQL: `CREATE TABLE IF NOT EXISTS persons (
			resume_id TEXT PRIMARY KEY REFERENCES resumes(id) ON DELETE CASCADE,
			full_name TEXT NOT NULL,
			role TEXT NOT NULL,
			location TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			website TEXT,
			github TEXT,
			linkedin TEXT,
			availability_label TEXT,
			short_bio TEXT NOT NULL,
			about TEXT NOT NULL DEFAULT '[]'
		)`,
	},
	{
		Name: "create_highlights",
		SQL: `CREATE TABLE IF NOT EXISTS highlights (
			id TEXT PRIMARY KEY,
			resume_id TEXT NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			label TEXT NOT NULL,
			value TEXT NOT NULL,
			hint TEXT,
			sort_order INTEGER NOT NULL DEFAULT 0
		)`,
	},
	{
		Name: "create_skills",
		SQL: `CREATE TABLE IF NOT EXISTS skills (
			id TEXT PRIMARY KEY,
			resume_id TEXT NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			category TEXT NOT NULL CHECK (category IN ('primary', 'secondary', 'tooling')),
			sort_order INTEGER NOT NULL DEFAULT 0
		)`,
	},
	{
		Name: "create_experiences",
		SQL: `CREATE TABLE IF NOT EXISTS experiences (
			id TEXT PRIMARY KEY,
			resume_id TEXT NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			company TEXT NOT NULL,
			title TEXT NOT NULL,
			location TEXT,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			summary TEXT,
			bullets TEXT NOT NULL DEFAULT '[]',
			tech TEXT NOT NULL DEFAULT '[]',
			sort_order INTEGER NOT NULL DEFAULT 0
		)`,
	},
	{
		Name: "create_projects",
		SQL: `CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			resume_id TEXT NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			slug TEXT NOT NULL,
			name TEXT NOT NULL,
			summary TEXT NOT NULL,
			description TEXT,
			role TEXT,
			highlights TEXT NOT NULL DEFAULT '[]',
			tech TEXT NOT NULL DEFAULT '[]',
			live_url TEXT,
			repo_url TEXT,
			sort_order INTEGER NOT NULL DEFAULT 0,
			UNIQUE (resume_id, slug)
		)`,
	},
	{
		Name: "create_education",
		SQL: `CREATE TABLE IF NOT EXISTS education (
			id TEXT PRIMARY KEY,
			resume_id TEXT NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			institution TEXT NOT NULL,
			degree TEXT NOT NULL,
			field TEXT,
			start_date TEXT NOT NULL,
			end_date TEXT,
			description TEXT,
			sort_order INTEGER NOT NULL DEFAULT 0
		)`,
	},
}
