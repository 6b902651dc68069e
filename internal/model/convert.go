package model

import (
	"net/url"

	"portfolio-server/internal/domain"
)

// ResumePDFLink is the download link advertised to the UI for a locale.
func ResumePDFLink(locale domain.Locale) string {
	return "/api/resume?locale=" + url.QueryEscape(locale.String())
}

// ToViewModel projects resolved resume data into the portfolio shape. It is
// total: absent optionals stay absent.
func ToViewModel(data domain.ResumeData) Portfolio {
	p := Portfolio{
		Person: PortfolioPerson{
			FullName:          data.Person.FullName,
			Role:              data.Person.Role,
			Location:          data.Person.Location,
			AvailabilityLabel: opt(data.Person.AvailabilityLabel),
			ShortBio:          data.Person.ShortBio,
			About:             list(data.Person.About),
		},
		Links: PortfolioLinks{
			Email:     data.Person.Email,
			Website:   opt(data.Person.Website),
			Github:    opt(data.Person.Github),
			Linkedin:  opt(data.Person.Linkedin),
			ResumePDF: ResumePDFLink(data.Locale),
		},
		Highlights: make([]PortfolioHighlight, 0, len(data.Highlights)),
		Skills: PortfolioSkills{
			Primary:   list(data.Skills.Primary),
			Secondary: list(data.Skills.Secondary),
			Tooling:   list(data.Skills.Tooling),
		},
		Experience: make([]PortfolioExperience, 0, len(data.Experiences)),
		Projects:   make([]PortfolioProject, 0, len(data.Projects)),
	}
	for _, h := range data.Highlights {
		p.Highlights = append(p.Highlights, PortfolioHighlight{Label: h.Label, Value: h.Value, Hint: opt(h.Hint)})
	}
	for _, e := range data.Experiences {
		p.Experience = append(p.Experience, PortfolioExperience{
			Company:  e.Company,
			Title:    e.Title,
			Location: opt(e.Location),
			Start:    e.StartDate,
			End:      e.EndDate,
			Summary:  opt(e.Summary),
			Bullets:  list(e.Bullets),
			Tech:     list(e.Tech),
		})
	}
	for _, pr := range data.Projects {
		p.Projects = append(p.Projects, PortfolioProject{
			Slug:        pr.Slug,
			Name:        pr.Name,
			Summary:     pr.Summary,
			Description: opt(pr.Description),
			Role:        opt(pr.Role),
			Highlights:  list(pr.Highlights),
			Tech:        list(pr.Tech),
			Links:       ProjectLinks{Live: opt(pr.LiveURL), Repo: opt(pr.RepoURL)},
		})
	}
	return p
}

// ToViewModelWithEducation is ToViewModel plus the education list.
func ToViewModelWithEducation(data domain.ResumeData) PortfolioWithEducation {
	out := PortfolioWithEducation{
		Portfolio: ToViewModel(data),
		Education: make([]PortfolioEducation, 0, len(data.Education)),
	}
	for _, e := range data.Education {
		out.Education = append(out.Education, PortfolioEducation{
			Institution: e.Institution,
			Degree:      e.Degree,
			Field:       opt(e.Field),
			StartDate:   e.StartDate,
			EndDate:     opt(e.EndDate),
			Description: opt(e.Description),
		})
	}
	return out
}

func opt(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func list(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
