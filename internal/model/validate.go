package model

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"portfolio-server/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/profile.schema.json
var profileSchema []byte

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(profileSchema))
})

// ValidationError lists every schema violation found in a profile record.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "profile schema validation failed: " + strings.Join(e.Problems, "; ")
}

// ValidateProfile checks a stored or bundled record against profile.schema.json.
// Mandatory text fields must be non-empty.
func ValidateProfile(rec *domain.ProfileRecord) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load profile schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewGoLoader(rec))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	problems := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		problems = append(problems, e.String())
	}
	return &ValidationError{Problems: problems}
}
