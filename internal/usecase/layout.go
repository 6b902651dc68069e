package usecase

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"portfolio-server/internal/domain"

	"golang.org/x/net/publicsuffix"
)

var monthNames = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,

	"enero": time.January, "febrero": time.February, "marzo": time.March,
	"abril": time.April, "mayo": time.May, "junio": time.June,
	"julio": time.July, "agosto": time.August, "septiembre": time.September,
	"setiembre": time.September, "octubre": time.October, "noviembre": time.November,
	"diciembre": time.December,
}

type monthYear struct {
	year  int
	month time.Month
}

// parseMonthYear reads "Month Year" in English or Spanish, case-insensitively.
// "present"/"presente" resolve to now.
func parseMonthYear(value string, now time.Time) (monthYear, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return monthYear{}, false
	}
	if v == "present" || v == "presente" {
		return monthYear{year: now.Year(), month: now.Month()}, true
	}
	parts := strings.Fields(v)
	if len(parts) < 2 {
		return monthYear{}, false
	}
	m, ok := monthNames[parts[0]]
	if !ok {
		return monthYear{}, false
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return monthYear{}, false
	}
	return monthYear{year: y, month: m}, true
}

// ExperienceMonths sums inclusive month spans of every experience whose start
// and end both parse. Other entries count as zero.
func ExperienceMonths(exps []domain.Experience, now time.Time) int {
	total := 0
	for _, e := range exps {
		start, ok := parseMonthYear(e.StartDate, now)
		if !ok {
			continue
		}
		end, ok := parseMonthYear(e.EndDate, now)
		if !ok {
			continue
		}
		total += (end.year-start.year)*12 + int(end.month-start.month) + 1
	}
	return total
}

// ExperienceYears is the badge value: whole years of experience, never negative.
func ExperienceYears(exps []domain.Experience, now time.Time) int {
	months := ExperienceMonths(exps, now)
	if months <= 0 {
		return 0
	}
	return months / 12
}

// SplitName returns the first whitespace-separated token and the rest.
func SplitName(fullName string) (given, surname string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func IsCertification(degree string) bool {
	return strings.Contains(strings.ToLower(degree), "certif")
}

// PartitionEducation splits entries into formal education and certifications,
// preserving relative order in both.
func PartitionEducation(entries []domain.Education) (formal, certs []domain.Education) {
	formal = []domain.Education{}
	certs = []domain.Education{}
	for _, e := range entries {
		if IsCertification(e.Degree) {
			certs = append(certs, e)
		} else {
			formal = append(formal, e)
		}
	}
	return formal, certs
}

func FormatDateRange(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " – " + end
	case start != "":
		return start
	default:
		return end
	}
}

// linkLabel shortens a profile URL to registrable domain plus path, e.g.
// "https://www.linkedin.com/in/jane/" -> "linkedin.com/in/jane".
func linkLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return raw
	}
	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		host = etld
	}
	return host + strings.TrimSuffix(parsed.EscapedPath(), "/")
}

type ExperienceBlock struct {
	Company string
	Meta    string
	Bullets []string
}

type EducationBlock struct {
	Title    string
	Meta     string
	Subtitle string
}

// Document is the fully derived content of one resume page, ready for the
// HTML template.
type Document struct {
	Title           string
	Lang            string
	Labels          Labels
	GivenName       string
	Surname         string
	ExperienceYears int
	Role            string
	Contacts        []string
	ShortBio        string
	Tools           []string
	Skills          []string
	Experiences     []ExperienceBlock
	Education       []EducationBlock
	Certifications  []EducationBlock
}

// BuildDocument derives every printed field from data. now resolves
// "Present"/"Presente" and is the only time-dependent input.
func BuildDocument(data domain.ResumeData, now time.Time) Document {
	p := data.Person
	given, surname := SplitName(p.FullName)

	doc := Document{
		Title:           p.FullName + " - CV",
		Lang:            data.Locale.String(),
		Labels:          LabelsFor(data.Locale),
		GivenName:       given,
		Surname:         strings.ToUpper(surname),
		ExperienceYears: ExperienceYears(data.Experiences, now),
		Role:            p.Role,
		ShortBio:        p.ShortBio,
		Tools:           append([]string{}, data.Skills.Tooling...),
		Skills:          append(append([]string{}, data.Skills.Primary...), data.Skills.Secondary...),
	}

	doc.Contacts = append(doc.Contacts, p.Location)
	if v := deref(p.Phone); v != "" {
		doc.Contacts = append(doc.Contacts, v)
	}
	doc.Contacts = append(doc.Contacts, p.Email)
	for _, link := range []*string{p.Website, p.Github, p.Linkedin} {
		if label := linkLabel(deref(link)); label != "" {
			doc.Contacts = append(doc.Contacts, label)
		}
	}

	for _, e := range data.Experiences {
		doc.Experiences = append(doc.Experiences, ExperienceBlock{
			Company: e.Company,
			Meta:    e.Title + " · " + e.StartDate + " – " + e.EndDate,
			Bullets: e.Bullets,
		})
	}

	formal, certs := PartitionEducation(data.Education)
	for _, e := range formal {
		title := e.Degree
		if f := deref(e.Field); f != "" {
			title += " — " + f
		}
		doc.Education = append(doc.Education, EducationBlock{
			Title:    title,
			Meta:     withRange(e.Institution, e.StartDate, deref(e.EndDate)),
			Subtitle: deref(e.Description),
		})
	}
	for _, c := range certs {
		title := c.Degree
		switch {
		case c.Description != nil:
			title = *c.Description
		case c.Field != nil:
			title = *c.Field
		}
		block := EducationBlock{
			Title: title,
			Meta:  withRange(c.Institution, c.StartDate, deref(c.EndDate)),
		}
		if deref(c.Field) != "" && deref(c.Description) != "" {
			block.Subtitle = *c.Field
		}
		doc.Certifications = append(doc.Certifications, block)
	}
	return doc
}

func withRange(institution, start, end string) string {
	if r := FormatDateRange(start, end); r != "" {
		return institution + " · " + r
	}
	return institution
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
