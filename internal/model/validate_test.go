package model

import (
	"errors"
	"testing"

	"portfolio-server/internal/content"
	"portfolio-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfileAcceptsBundledSnapshots(t *testing.T) {
	for _, l := range domain.SupportedLocales {
		rec, err := content.Snapshot(l)
		require.NoError(t, err)
		assert.NoError(t, ValidateProfile(rec), l)
	}
}

func TestValidateProfileRejectsEmptyMandatoryFields(t *testing.T) {
	rec, err := content.Snapshot(domain.LocaleEN)
	require.NoError(t, err)
	rec.Person.FullName = ""
	rec.Skills = append(rec.Skills, domain.Skill{Name: "COBOL", Category: "legacy"})

	err = ValidateProfile(rec)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.GreaterOrEqual(t, len(verr.Problems), 2)
	assert.Contains(t, verr.Error(), "fullName")
}

func TestValidateProfileRejectsMissingPerson(t *testing.T) {
	err := ValidateProfile(&domain.ProfileRecord{Locale: "en"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
}
