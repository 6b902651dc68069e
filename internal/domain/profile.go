package domain

import (
	"errors"
	"slices"
)

var (
	ErrProfileNotFound   = errors.New("no active profile for locale")
	ErrUnsupportedLocale = errors.New("unsupported locale")
)

// Locale is a two-letter language tag gating which profile content is served.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"

	DefaultLocale = LocaleEN
)

// SupportedLocales is the closed set of locales the service answers for.
var SupportedLocales = []Locale{LocaleEN, LocaleES}

func ParseLocale(s string) (Locale, error) {
	if s == "" {
		return DefaultLocale, nil
	}
	l := Locale(s)
	if !slices.Contains(SupportedLocales, l) {
		return "", ErrUnsupportedLocale
	}
	return l, nil
}

func (l Locale) String() string { return string(l) }

type SkillCategory string

const (
	SkillPrimary   SkillCategory = "primary"
	SkillSecondary SkillCategory = "secondary"
	SkillTooling   SkillCategory = "tooling"
)

// Person is shared by the stored record and the resolved shape.
type Person struct {
	FullName          string   `json:"fullName"`
	Role              string   `json:"role"`
	Location          string   `json:"location"`
	Email             string   `json:"email"`
	Phone             *string  `json:"phone"`
	Website           *string  `json:"website"`
	Github            *string  `json:"github"`
	Linkedin          *string  `json:"linkedin"`
	AvailabilityLabel *string  `json:"availabilityLabel"`
	ShortBio          string   `json:"shortBio"`
	About             []string `json:"about"`
}

type Highlight struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Hint  *string `json:"hint"`
	Order int     `json:"order"`
}

type Skill struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
	Order    int           `json:"order"`
}

// Experience dates are free-text "Month Year" tokens or "Present"/"Presente".
type Experience struct {
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	Location  *string  `json:"location"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Summary   *string  `json:"summary"`
	Bullets   []string `json:"bullets"`
	Tech      []string `json:"tech"`
	Order     int      `json:"order"`
}

type Project struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Summary     string   `json:"summary"`
	Description *string  `json:"description"`
	Role        *string  `json:"role"`
	Highlights  []string `json:"highlights"`
	Tech        []string `json:"tech"`
	LiveURL     *string  `json:"liveUrl"`
	RepoURL     *string  `json:"repoUrl"`
	Order       int      `json:"order"`
}

// Education with a nil EndDate is ongoing.
type Education struct {
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	Field       *string `json:"field"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Description *string `json:"description"`
	Order       int     `json:"order"`
}

// ProfileRecord is the read shape of one stored profile: skills are still flat.
// It is also the format of the bundled snapshots and of seed files.
type ProfileRecord struct {
	ID          string       `json:"id"`
	Locale      string       `json:"locale"`
	Person      *Person      `json:"person"`
	Highlights  []Highlight  `json:"highlights"`
	Skills      []Skill      `json:"skills"`
	Experiences []Experience `json:"experiences"`
	Projects    []Project    `json:"projects"`
	Education   []Education  `json:"education"`
}

type SkillGroups struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
	Tooling   []string `json:"tooling"`
}

// ResumeData is the canonical resolved profile. It is built per request and
// never mutated afterwards.
type ResumeData struct {
	ID          string       `json:"id"`
	Locale      Locale       `json:"locale"`
	Person      Person       `json:"person"`
	Highlights  []Highlight  `json:"highlights"`
	Skills      SkillGroups  `json:"skills"`
	Experiences []Experience `json:"experiences"`
	Projects    []Project    `json:"projects"`
	Education   []Education  `json:"education"`
}
