// Package content bundles a static profile snapshot per supported locale.
// It backs the fallback resolver and seeds fresh databases.
package content

import (
	"embed"
	"encoding/json"
	"fmt"

	"portfolio-server/internal/domain"
)

//go:embed snapshots/*.json
var snapshots embed.FS

// Snapshot returns a fresh copy of the bundled record for locale.
func Snapshot(locale domain.Locale) (*domain.ProfileRecord, error) {
	b, err := snapshots.ReadFile("snapshots/" + locale.String() + ".json")
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", locale, err)
	}
	return Decode(b)
}

// Decode parses a profile record in snapshot format.
func Decode(b []byte) (*domain.ProfileRecord, error) {
	var rec domain.ProfileRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode profile record: %w", err)
	}
	return &rec, nil
}
