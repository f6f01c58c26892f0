package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"portfolio-api/internal/dto"
	"portfolio-api/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const formDateLayout = "2006-01-02"

// Handler renders the server-side admin panel. All data access goes through
// the API client; templates only see DTOs.
type Handler struct {
	client   *Client
	sessions *auth.SessionManager
	logger   *zap.Logger
}

func NewHandler(client *Client, sessions *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		client:   client,
		sessions: sessions,
		logger:   logger,
	}
}

func (h *Handler) LoginForm(c *fiber.Ctx) error {
	// Already signed in, skip the form.
	if token := c.Cookies(auth.SessionCookieName); token != "" {
		if _, err := h.sessions.VerifyToken(token); err == nil {
			return c.Redirect("/admin", fiber.StatusFound)
		}
	}
	return c.Render("login", fiber.Map{"Title": "Login"})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if !h.sessions.VerifyCredentials(username, password) {
		h.logger.Warn("Rejected admin login attempt", zap.String("username", username))
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Title": "Login",
			"Error": "Invalid username or password",
		})
	}

	token, err := h.sessions.CreateToken(username)
	if err != nil {
		h.logger.Error("Failed to create session token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("login", fiber.Map{
			"Title": "Login",
			"Error": "Could not create session, try again",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessions.Expiry()),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect("/admin", fiber.StatusFound)
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect("/admin/login", fiber.StatusFound)
}

func (h *Handler) Dashboard(c *fiber.Ctx) error {
	data := fiber.Map{
		"Title":              "Dashboard",
		"User":               c.Locals("adminUser"),
		"SkillCount":         0,
		"CertificationCount": 0,
		"ProjectCount":       0,
		"ExperienceCount":    0,
		"ContactCount":       0,
	}

	ctx := c.Context()
	if skills, err := h.client.ListSkills(ctx); err == nil {
		data["SkillCount"] = len(skills)
	}
	if certs, err := h.client.ListCertifications(ctx); err == nil {
		data["CertificationCount"] = len(certs)
	}
	if projects, err := h.client.ListProjects(ctx); err == nil {
		data["ProjectCount"] = len(projects)
	}
	if entries, err := h.client.ListExperience(ctx); err == nil {
		data["ExperienceCount"] = len(entries)
	}
	if contacts, err := h.client.ListContacts(ctx); err == nil {
		data["ContactCount"] = len(contacts)
	}

	return c.Render("dashboard", data)
}

func (h *Handler) PersonalForm(c *fiber.Ctx) error {
	return h.renderPersonal(c, "")
}

func (h *Handler) PersonalSubmit(c *fiber.Ctx) error {
	ctx := c.Context()

	existing, err := h.client.GetPersonal(ctx)
	if err != nil && !isNotFound(err) {
		h.logger.Error("Failed to load personal info", zap.Error(err))
		return h.renderPersonal(c, "Could not reach the API: "+err.Error())
	}

	if existing == nil {
		req := &dto.CreatePersonalInfoRequest{
			Name:            c.FormValue("name"),
			Email:           c.FormValue("email"),
			Title:           optString(c.FormValue("title")),
			Place:           optString(c.FormValue("place")),
			Country:         optString(c.FormValue("country")),
			Phone:           optString(c.FormValue("phone")),
			Bio:             optString(c.FormValue("bio")),
			ProfileImageURL: optString(c.FormValue("profile_image_url")),
			GithubURL:       optString(c.FormValue("github_url")),
			LinkedinURL:     optString(c.FormValue("linkedin_url")),
			TwitterURL:      optString(c.FormValue("twitter_url")),
			WebsiteURL:      optString(c.FormValue("website_url")),
		}
		if _, err := h.client.CreatePersonal(ctx, req); err != nil {
			h.logger.Error("Failed to create personal info", zap.Error(err))
			return h.renderPersonal(c, err.Error())
		}
	} else {
		req := &dto.UpdatePersonalInfoRequest{
			Name:            optString(c.FormValue("name")),
			Email:           optString(c.FormValue("email")),
			Title:           optString(c.FormValue("title")),
			Place:           optString(c.FormValue("place")),
			Country:         optString(c.FormValue("country")),
			Phone:           optString(c.FormValue("phone")),
			Bio:             optString(c.FormValue("bio")),
			ProfileImageURL: optString(c.FormValue("profile_image_url")),
			GithubURL:       optString(c.FormValue("github_url")),
			LinkedinURL:     optString(c.FormValue("linkedin_url")),
			TwitterURL:      optString(c.FormValue("twitter_url")),
			WebsiteURL:      optString(c.FormValue("website_url")),
		}
		if _, err := h.client.UpdatePersonal(ctx, req); err != nil {
			h.logger.Error("Failed to update personal info", zap.Error(err))
			return h.renderPersonal(c, err.Error())
		}
	}

	return c.Redirect("/admin/personal", fiber.StatusFound)
}

func (h *Handler) renderPersonal(c *fiber.Ctx, errMsg string) error {
	data := fiber.Map{
		"Title": "Personal Info",
		"User":  c.Locals("adminUser"),
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	personal, err := h.client.GetPersonal(c.Context())
	if err != nil && !isNotFound(err) {
		h.logger.Error("Failed to load personal info", zap.Error(err))
		if _, ok := data["Error"]; !ok {
			data["Error"] = "Could not reach the API: " + err.Error()
		}
	}
	data["Personal"] = personal

	return c.Render("personal", data)
}

func (h *Handler) SkillsPage(c *fiber.Ctx) error {
	return h.renderSkills(c, "")
}

func (h *Handler) SkillCreate(c *fiber.Ctx) error {
	req := &dto.CreateSkillRequest{
		Name:     c.FormValue("name"),
		Category: c.FormValue("category"),
		IsHobby:  c.FormValue("is_hobby") != "",
	}
	if raw := c.FormValue("proficiency_level"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			return h.renderSkills(c, "Proficiency level must be a number")
		}
		req.ProficiencyLevel = &level
	}

	if _, err := h.client.CreateSkill(c.Context(), req); err != nil {
		h.logger.Error("Failed to create skill", zap.Error(err))
		return h.renderSkills(c, err.Error())
	}
	return c.Redirect("/admin/skills", fiber.StatusFound)
}

func (h *Handler) SkillDelete(c *fiber.Ctx) error {
	if err := h.client.DeleteSkill(c.Context(), c.Params("id")); err != nil {
		h.logger.Error("Failed to delete skill", zap.Error(err))
		return h.renderSkills(c, err.Error())
	}
	return c.Redirect("/admin/skills", fiber.StatusFound)
}

func (h *Handler) renderSkills(c *fiber.Ctx, errMsg string) error {
	data := fiber.Map{
		"Title": "Skills",
		"User":  c.Locals("adminUser"),
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	skills, err := h.client.ListSkills(c.Context())
	if err != nil {
		h.logger.Error("Failed to list skills", zap.Error(err))
		if _, ok := data["Error"]; !ok {
			data["Error"] = "Could not reach the API: " + err.Error()
		}
	}
	data["Skills"] = skills

	return c.Render("skills", data)
}

func (h *Handler) CertificationsPage(c *fiber.Ctx) error {
	return h.renderCertifications(c, "")
}

func (h *Handler) CertificationCreate(c *fiber.Ctx) error {
	req := &dto.CreateCertificationRequest{
		Title:         c.FormValue("title"),
		Issuer:        c.FormValue("issuer"),
		CredentialURL: optString(c.FormValue("credential_url")),
	}

	var err error
	if req.IssueDate, err = optDate(c.FormValue("issue_date")); err != nil {
		return h.renderCertifications(c, "Issue date must be YYYY-MM-DD")
	}
	if req.ExpiryDate, err = optDate(c.FormValue("expiry_date")); err != nil {
		return h.renderCertifications(c, "Expiry date must be YYYY-MM-DD")
	}

	if _, err := h.client.CreateCertification(c.Context(), req); err != nil {
		h.logger.Error("Failed to create certification", zap.Error(err))
		return h.renderCertifications(c, err.Error())
	}
	return c.Redirect("/admin/certifications", fiber.StatusFound)
}

func (h *Handler) CertificationDelete(c *fiber.Ctx) error {
	if err := h.client.DeleteCertification(c.Context(), c.Params("id")); err != nil {
		h.logger.Error("Failed to delete certification", zap.Error(err))
		return h.renderCertifications(c, err.Error())
	}
	return c.Redirect("/admin/certifications", fiber.StatusFound)
}

func (h *Handler) renderCertifications(c *fiber.Ctx, errMsg string) error {
	data := fiber.Map{
		"Title": "Certifications",
		"User":  c.Locals("adminUser"),
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	certs, err := h.client.ListCertifications(c.Context())
	if err != nil {
		h.logger.Error("Failed to list certifications", zap.Error(err))
		if _, ok := data["Error"]; !ok {
			data["Error"] = "Could not reach the API: " + err.Error()
		}
	}
	data["Certifications"] = certs

	return c.Render("certifications", data)
}

func (h *Handler) ProjectsPage(c *fiber.Ctx) error {
	return h.renderProjects(c, "")
}

func (h *Handler) ProjectCreate(c *fiber.Ctx) error {
	req := &dto.CreateProjectRequest{
		Title:       c.FormValue("title"),
		Description: optString(c.FormValue("description")),
		TechStack:   splitTechStack(c.FormValue("tech_stack")),
		GithubURL:   optString(c.FormValue("github_url")),
		LiveURL:     optString(c.FormValue("live_url")),
		ProjectType: c.FormValue("project_type"),
	}

	if _, err := h.client.CreateProject(c.Context(), req); err != nil {
		h.logger.Error("Failed to create project", zap.Error(err))
		return h.renderProjects(c, err.Error())
	}
	return c.Redirect("/admin/projects", fiber.StatusFound)
}

func (h *Handler) ProjectDelete(c *fiber.Ctx) error {
	if err := h.client.DeleteProject(c.Context(), c.Params("id")); err != nil {
		h.logger.Error("Failed to delete project", zap.Error(err))
		return h.renderProjects(c, err.Error())
	}
	return c.Redirect("/admin/projects", fiber.StatusFound)
}

func (h *Handler) renderProjects(c *fiber.Ctx, errMsg string) error {
	data := fiber.Map{
		"Title": "Projects",
		"User":  c.Locals("adminUser"),
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	projects, err := h.client.ListProjects(c.Context())
	if err != nil {
		h.logger.Error("Failed to list projects", zap.Error(err))
		if _, ok := data["Error"]; !ok {
			data["Error"] = "Could not reach the API: " + err.Error()
		}
	}
	data["Projects"] = projects

	return c.Render("projects", data)
}

func (h *Handler) ExperiencePage(c *fiber.Ctx) error {
	return h.renderExperience(c, "")
}

func (h *Handler) ExperienceCreate(c *fiber.Ctx) error {
	req := &dto.CreateExperienceRequest{
		CompanyName: c.FormValue("company_name"),
		Role:        c.FormValue("role"),
		Description: optString(c.FormValue("description")),
		Learnings:   optString(c.FormValue("learnings")),
	}

	var err error
	if req.StartDate, err = optDate(c.FormValue("start_date")); err != nil {
		return h.renderExperience(c, "Start date must be YYYY-MM-DD")
	}
	if req.EndDate, err = optDate(c.FormValue("end_date")); err != nil {
		return h.renderExperience(c, "End date must be YYYY-MM-DD")
	}

	if _, err := h.client.CreateExperience(c.Context(), req); err != nil {
		h.logger.Error("Failed to create experience", zap.Error(err))
		return h.renderExperience(c, err.Error())
	}
	return c.Redirect("/admin/experience", fiber.StatusFound)
}

func (h *Handler) ExperienceDelete(c *fiber.Ctx) error {
	if err := h.client.DeleteExperience(c.Context(), c.Params("id")); err != nil {
		h.logger.Error("Failed to delete experience", zap.Error(err))
		return h.renderExperience(c, err.Error())
	}
	return c.Redirect("/admin/experience", fiber.StatusFound)
}

func (h *Handler) renderExperience(c *fiber.Ctx, errMsg string) error {
	data := fiber.Map{
		"Title": "Experience",
		"User":  c.Locals("adminUser"),
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	entries, err := h.client.ListExperience(c.Context())
	if err != nil {
		h.logger.Error("Failed to list experience", zap.Error(err))
		if _, ok := data["Error"]; !ok {
			data["Error"] = "Could not reach the API: " + err.Error()
		}
	}
	data["Experience"] = entries

	return c.Render("experience", data)
}

// ContactsPage is list-only: contact requests are created by visitors through
// the public API and never edited here.
func (h *Handler) ContactsPage(c *fiber.Ctx) error {
	data := fiber.Map{
		"Title": "Contact Requests",
		"User":  c.Locals("adminUser"),
	}

	contacts, err := h.client.ListContacts(c.Context())
	if err != nil {
		h.logger.Error("Failed to list contact requests", zap.Error(err))
		data["Error"] = "Could not reach the API: " + err.Error()
	}
	data["Contacts"] = contacts

	return c.Render("contacts", data)
}

func optString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func optDate(v string) (*dto.Date, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(formDateLayout, v)
	if err != nil {
		return nil, err
	}
	d := dto.NewDate(t)
	return &d, nil
}

func splitTechStack(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
