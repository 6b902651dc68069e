package usecase

import "portfolio-server/internal/domain"

// Labels are the fixed section headings printed on the resume.
type Labels struct {
	AboutMe        string
	Tools          string
	Skills         string
	Experience     string
	Education      string
	Certifications string
	YearsUnit      string
	BadgeLines     []string
}

var spanishLabels = Labels{
	AboutMe:        "Sobre mí",
	Tools:          "Programas",
	Skills:         "Habilidades",
	Experience:     "Experiencia Profesional",
	Education:      "Educación",
	Certifications: "Certificaciones",
	YearsUnit:      "AÑOS",
	BadgeLines:     []string{"EXPERIENCIA", "PROFESIONAL"},
}

// GetDefaultLabels returns the English headings.
func GetDefaultLabels() Labels {
	return Labels{
		AboutMe:        "About Me",
		Tools:          "Tools",
		Skills:         "Skills",
		Experience:     "Experience",
		Education:      "Education",
		Certifications: "Certifications",
		YearsUnit:      "YRS",
		BadgeLines:     []string{"PROFESSIONAL", "EXPERIENCE"},
	}
}

// LabelsFor returns Spanish headings for "es" and English for anything else.
func LabelsFor(locale domain.Locale) Labels {
	if locale == domain.LocaleES {
		l := spanishLabels
		l.BadgeLines = append([]string(nil), spanishLabels.BadgeLines...)
		return l
	}
	return GetDefaultLabels()
}
