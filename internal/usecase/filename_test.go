package usecase

import (
	"testing"

	"portfolio-server/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFilenameFor(t *testing.T) {
	cases := []struct {
		name   string
		locale domain.Locale
		want   string
	}{
		{"Jean Ortiz", domain.LocaleEN, "jean-ortiz-Resume.pdf"},
		{"Jean Ortiz", domain.LocaleES, "jean-ortiz-CV.pdf"},
		{"José Ortiz!!", domain.LocaleEN, "jos-ortiz-Resume.pdf"},
		{"Ana   María\tLópez", domain.LocaleES, "ana-mara-lpez-CV.pdf"},
		{"Jean\vOrtiz", domain.LocaleEN, "jean-ortiz-Resume.pdf"},
		{"Jean \v\f Ortiz", domain.LocaleES, "jean-ortiz-CV.pdf"},
		{"", domain.LocaleEN, "-Resume.pdf"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FilenameFor(c.name, c.locale), c.name)
	}
}
