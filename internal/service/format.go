package service

import (
	"fmt"
	"strings"

	"portfolio-api/internal/models"
)

const emptyContextText = "No portfolio data available."

// FormatContext renders the aggregate snapshot into the flat text block fed to
// the completion prompt. It is a pure function: identical snapshots always
// produce identical output. Sections with no data are omitted; a fully empty
// snapshot yields the fixed empty-data string.
func FormatContext(ctx *models.PortfolioContext) string {
	if ctx.Empty() {
		return emptyContextText
	}

	var parts []string

	if info := ctx.PersonalInfo; info != nil {
		parts = append(parts, fmt.Sprintf(
			"PERSONAL INFORMATION:\n- Name: %s\n- Location: %s, %s\n- Email: %s\n- Bio: %s\n",
			info.Name, orNA(info.Place), orNA(info.Country), info.Email, orNA(info.Bio),
		))
	}

	if len(ctx.Skills) > 0 {
		var b strings.Builder
		b.WriteString("SKILLS:\n")
		for _, skill := range ctx.Skills {
			fmt.Fprintf(&b, "- %s (%s) - Proficiency: %s%%", skill.Name, skill.Category, orNAInt(skill.ProficiencyLevel))
			if skill.IsHobby {
				b.WriteString(" [Hobby]")
			}
			b.WriteString("\n")
		}
		parts = append(parts, b.String())
	}

	if len(ctx.Certifications) > 0 {
		var b strings.Builder
		b.WriteString("CERTIFICATIONS:\n")
		for _, cert := range ctx.Certifications {
			fmt.Fprintf(&b, "- %s by %s", cert.Title, cert.Issuer)
			if cert.IssueDate != nil {
				fmt.Fprintf(&b, " (Issued: %s)", *cert.IssueDate)
			}
			b.WriteString("\n")
		}
		parts = append(parts, b.String())
	}

	if len(ctx.Projects) > 0 {
		var b strings.Builder
		b.WriteString("PROJECTS:\n")
		for _, project := range ctx.Projects {
			fmt.Fprintf(&b, "- %s (%s)\n", project.Title, project.ProjectType)
			fmt.Fprintf(&b, "  Description: %s\n", orNA(project.Description))
			if len(project.TechStack) > 0 {
				fmt.Fprintf(&b, "  Technologies: %s\n", strings.Join(project.TechStack, ", "))
			}
		}
		parts = append(parts, b.String())
	}

	if len(ctx.Experience) > 0 {
		var b strings.Builder
		b.WriteString("WORK EXPERIENCE:\n")
		for _, exp := range ctx.Experience {
			fmt.Fprintf(&b, "- %s at %s\n", exp.Role, exp.CompanyName)
			if exp.StartDate != nil {
				end := "Present"
				if exp.EndDate != nil {
					end = *exp.EndDate
				}
				fmt.Fprintf(&b, "  Duration: %s - %s\n", *exp.StartDate, end)
			}
			if exp.Description != nil {
				fmt.Fprintf(&b, "  Description: %s\n", *exp.Description)
			}
			if exp.Learnings != nil {
				fmt.Fprintf(&b, "  Key Learnings: %s\n", *exp.Learnings)
			}
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n")
}

func orNA(s *string) string {
	if s == nil {
		return "N/A"
	}
	return *s
}

func orNAInt(n *int) string {
	if n == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *n)
}
