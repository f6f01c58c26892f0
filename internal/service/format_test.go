package service

import (
	"strings"
	"testing"

	"portfolio-api/internal/models"
)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

func sampleContext() *models.PortfolioContext {
	return &models.PortfolioContext{
		PersonalInfo: &models.PersonalSummary{
			Name:    "Jordan Doe",
			Place:   strp("Berlin"),
			Country: strp("Germany"),
			Email:   "jordan@example.com",
			Bio:     strp("Backend engineer."),
		},
		Skills: []models.SkillContext{
			{Name: "Go", Category: models.SkillCategoryBackend, ProficiencyLevel: intp(95)},
			{Name: "Photography", Category: models.SkillCategoryOther, IsHobby: true},
		},
		Certifications: []models.CertificationContext{
			{Title: "CKA", Issuer: "CNCF", IssueDate: strp("2023-05-01")},
			{Title: "AWS SAA", Issuer: "Amazon"},
		},
		Projects: []models.ProjectContext{
			{
				Title:       "Portfolio API",
				Description: strp("Backend for a personal site."),
				TechStack:   []string{"Go", "PostgreSQL"},
				ProjectType: models.ProjectTypePersonal,
			},
		},
		Experience: []models.ExperienceContext{
			{
				CompanyName: "Acme",
				Role:        "Engineer",
				StartDate:   strp("2020-01-01"),
				Description: strp("Built services."),
				Learnings:   strp("Distributed systems."),
			},
		},
	}
}

func TestFormatContextEmpty(t *testing.T) {
	got := FormatContext(&models.PortfolioContext{})
	if got != "No portfolio data available." {
		t.Errorf("empty snapshot: got %q", got)
	}
}

func TestFormatContextDeterministic(t *testing.T) {
	ctx := sampleContext()
	first := FormatContext(ctx)
	second := FormatContext(ctx)
	if first != second {
		t.Error("identical snapshots produced different output")
	}
}

func TestFormatContextSections(t *testing.T) {
	got := FormatContext(sampleContext())

	for _, want := range []string{
		"PERSONAL INFORMATION:",
		"- Name: Jordan Doe",
		"- Location: Berlin, Germany",
		"SKILLS:",
		"- Go (backend) - Proficiency: 95%",
		"- Photography (other) - Proficiency: N/A% [Hobby]",
		"CERTIFICATIONS:",
		"- CKA by CNCF (Issued: 2023-05-01)",
		"- AWS SAA by Amazon",
		"PROJECTS:",
		"- Portfolio API (personal)",
		"  Technologies: Go, PostgreSQL",
		"WORK EXPERIENCE:",
		"- Engineer at Acme",
		"  Duration: 2020-01-01 - Present",
		"  Key Learnings: Distributed systems.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestFormatContextEndedExperience(t *testing.T) {
	ctx := &models.PortfolioContext{
		Experience: []models.ExperienceContext{
			{
				CompanyName: "Acme",
				Role:        "Engineer",
				StartDate:   strp("2018-03-01"),
				EndDate:     strp("2019-12-31"),
			},
		},
	}

	got := FormatContext(ctx)
	if !strings.Contains(got, "Duration: 2018-03-01 - 2019-12-31") {
		t.Errorf("expected explicit end date, got:\n%s", got)
	}
	if strings.Contains(got, "Present") {
		t.Errorf("ended role must not read as current:\n%s", got)
	}
}

func TestFormatContextOmitsEmptySections(t *testing.T) {
	ctx := &models.PortfolioContext{
		Skills: []models.SkillContext{
			{Name: "Go", Category: models.SkillCategoryBackend, ProficiencyLevel: intp(80)},
		},
	}

	got := FormatContext(ctx)
	if !strings.Contains(got, "SKILLS:") {
		t.Fatalf("skills section missing:\n%s", got)
	}
	for _, heading := range []string{"PERSONAL INFORMATION:", "CERTIFICATIONS:", "PROJECTS:", "WORK EXPERIENCE:"} {
		if strings.Contains(got, heading) {
			t.Errorf("unexpected %q for empty section:\n%s", heading, got)
		}
	}
}

func TestFormatContextMissingPersonalFields(t *testing.T) {
	ctx := &models.PortfolioContext{
		PersonalInfo: &models.PersonalSummary{
			Name:  "Jordan Doe",
			Email: "jordan@example.com",
		},
	}

	got := FormatContext(ctx)
	if !strings.Contains(got, "- Location: N/A, N/A") {
		t.Errorf("missing location should read N/A:\n%s", got)
	}
	if !strings.Contains(got, "- Bio: N/A") {
		t.Errorf("missing bio should read N/A:\n%s", got)
	}
}
