package model

// Go models for the UI-facing portfolio returned by GET /api/portfolio.
// Optional fields are omitted from the JSON when absent.

type PortfolioPerson struct {
	FullName          string   `json:"fullName"`
	Role              string   `json:"role"`
	Location          string   `json:"location"`
	AvailabilityLabel *string  `json:"availabilityLabel,omitempty"`
	ShortBio          string   `json:"shortBio"`
	About             []string `json:"about"`
}

type PortfolioLinks struct {
	Email     string  `json:"email"`
	Website   *string `json:"website,omitempty"`
	Github    *string `json:"github,omitempty"`
	Linkedin  *string `json:"linkedin,omitempty"`
	ResumePDF string  `json:"resumePdf"`
}

type PortfolioHighlight struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Hint  *string `json:"hint,omitempty"`
}

type PortfolioSkills struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
	Tooling   []string `json:"tooling"`
}

type PortfolioExperience struct {
	Company  string   `json:"company"`
	Title    string   `json:"title"`
	Location *string  `json:"location,omitempty"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Summary  *string  `json:"summary,omitempty"`
	Bullets  []string `json:"bullets"`
	Tech     []string `json:"tech"`
}

type ProjectLinks struct {
	Live *string `json:"live,omitempty"`
	Repo *string `json:"repo,omitempty"`
}

type PortfolioProject struct {
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	Summary     string       `json:"summary"`
	Description *string      `json:"description,omitempty"`
	Role        *string      `json:"role,omitempty"`
	Highlights  []string     `json:"highlights"`
	Tech        []string     `json:"tech"`
	Links       ProjectLinks `json:"links"`
}

type PortfolioEducation struct {
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	Field       *string `json:"field,omitempty"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	Description *string `json:"description,omitempty"`
}

type Portfolio struct {
	Person     PortfolioPerson       `json:"person"`
	Links      PortfolioLinks        `json:"links"`
	Highlights []PortfolioHighlight  `json:"highlights"`
	Skills     PortfolioSkills       `json:"skills"`
	Experience []PortfolioExperience `json:"experience"`
	Projects   []PortfolioProject    `json:"projects"`
}

// PortfolioWithEducation extends Portfolio for consumers that render education.
type PortfolioWithEducation struct {
	Portfolio
	Education []PortfolioEducation `json:"education"`
}
