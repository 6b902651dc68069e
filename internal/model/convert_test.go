package model

import (
	"encoding/json"
	"testing"

	"portfolio-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleResume() domain.ResumeData {
	return domain.ResumeData{
		ID:     "r1",
		Locale: domain.LocaleES,
		Person: domain.Person{
			FullName: "Jean Ortiz",
			Role:     "Desarrollador",
			Location: "Sabaneta",
			Email:    "jean@example.com",
			Github:   strPtr("https://github.com/jean"),
			ShortBio: "bio",
			About:    []string{"a", "b"},
		},
		Highlights: []domain.Highlight{{Label: "Años", Value: "1+"}},
		Skills:     domain.SkillGroups{Primary: []string{"Go"}},
		Experiences: []domain.Experience{{
			Company: "Acme", Title: "Dev", StartDate: "Junio 2025", EndDate: "Presente",
			Summary: strPtr("summary"),
		}},
		Projects: []domain.Project{{Slug: "p", Name: "P", Summary: "s", LiveURL: strPtr("https://p.example.com")}},
		Education: []domain.Education{
			{Institution: "ITM", Degree: "Tecnología", StartDate: "Febrero 2022", EndDate: strPtr("Octubre 2025")},
			{Institution: "Microsoft", Degree: "Certificación", StartDate: "Octubre 2025"},
		},
	}
}

func TestToViewModelSynthesizesResumeLink(t *testing.T) {
	p := ToViewModel(sampleResume())
	assert.Equal(t, "/api/resume?locale=es", p.Links.ResumePDF)
	assert.Equal(t, "jean@example.com", p.Links.Email)
	require.NotNil(t, p.Links.Github)
	assert.Nil(t, p.Links.Website)
}

func TestToViewModelOmitsAbsentOptionals(t *testing.T) {
	b, err := json.Marshal(ToViewModel(sampleResume()))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	links := raw["links"].(map[string]any)
	assert.NotContains(t, links, "website")
	assert.NotContains(t, links, "linkedin")
	assert.Contains(t, links, "github")

	person := raw["person"].(map[string]any)
	assert.NotContains(t, person, "availabilityLabel")

	skills := raw["skills"].(map[string]any)
	assert.Equal(t, []any{}, skills["tooling"])

	exp := raw["experience"].([]any)[0].(map[string]any)
	assert.Equal(t, "Junio 2025", exp["start"])
	assert.Equal(t, "Presente", exp["end"])
	assert.NotContains(t, exp, "location")
	assert.Equal(t, []any{}, exp["bullets"])

	proj := raw["projects"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"live": "https://p.example.com"}, proj["links"])
	assert.NotContains(t, raw, "education")
}

func TestToViewModelWithEducationSharesBaseFields(t *testing.T) {
	data := sampleResume()
	base := ToViewModel(data)
	ext := ToViewModelWithEducation(data)

	assert.Equal(t, base, ext.Portfolio)
	require.Len(t, ext.Education, 2)
	assert.Equal(t, "Octubre 2025", *ext.Education[0].EndDate)
	assert.Nil(t, ext.Education[1].EndDate)
}

func TestToViewModelDoesNotAliasInput(t *testing.T) {
	data := sampleResume()
	p := ToViewModel(data)
	p.Person.About[0] = "changed"
	*p.Links.Github = "changed"

	assert.Equal(t, "a", data.Person.About[0])
	assert.Equal(t, "https://github.com/jean", *data.Person.Github)
}
