package models

// PortfolioContext is the aggregate snapshot the assistant pipeline works on.
// It is assembled from current database state, rendered into the prompt, and
// persisted verbatim with each interaction log. The personal section is a
// deliberate narrowing of PersonalInfo, not the full record.
type PortfolioContext struct {
	PersonalInfo   *PersonalSummary       `json:"personal_info,omitempty"`
	Skills         []SkillContext         `json:"skills"`
	Certifications []CertificationContext `json:"certifications"`
	Projects       []ProjectContext       `json:"projects"`
	Experience     []ExperienceContext    `json:"experience"`
}

type PersonalSummary struct {
	Name    string  `json:"name"`
	Place   *string `json:"place"`
	Country *string `json:"country"`
	Email   string  `json:"email"`
	Bio     *string `json:"bio"`
}

type SkillContext struct {
	Name             string        `json:"name"`
	Category         SkillCategory `json:"category"`
	ProficiencyLevel *int          `json:"proficiency_level"`
	IsHobby          bool          `json:"is_hobby"`
}

type CertificationContext struct {
	Title     string  `json:"title"`
	Issuer    string  `json:"issuer"`
	IssueDate *string `json:"issue_date"`
}

type ProjectContext struct {
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	TechStack   []string    `json:"tech_stack"`
	ProjectType ProjectType `json:"project_type"`
	GithubURL   *string     `json:"github_url"`
	LiveURL     *string     `json:"live_url"`
}

type ExperienceContext struct {
	CompanyName string  `json:"company_name"`
	Role        string  `json:"role"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Learnings   *string `json:"learnings"`
}

// Empty reports whether no section carries any data.
func (c *PortfolioContext) Empty() bool {
	return c.PersonalInfo == nil &&
		len(c.Skills) == 0 &&
		len(c.Certifications) == 0 &&
		len(c.Projects) == 0 &&
		len(c.Experience) == 0
}
