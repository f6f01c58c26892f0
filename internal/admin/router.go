package admin

import (
	"portfolio-api/pkg/auth"
	"portfolio-api/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the admin panel under /admin. Login and logout stay
// open; everything else sits behind the session guard.
func RegisterRoutes(app *fiber.App, h *Handler, sessions *auth.SessionManager, logger *zap.Logger) {
	grp := app.Group("/admin")

	grp.Get("/login", h.LoginForm)
	grp.Post("/login", h.Login)
	grp.Get("/logout", h.Logout)

	grp.Use(middleware.AdminSession(sessions, logger))

	grp.Get("/", h.Dashboard)

	grp.Get("/personal", h.PersonalForm)
	grp.Post("/personal", h.PersonalSubmit)

	grp.Get("/skills", h.SkillsPage)
	grp.Post("/skills", h.SkillCreate)
	grp.Get("/skills/:id/delete", h.SkillDelete)

	grp.Get("/certifications", h.CertificationsPage)
	grp.Post("/certifications", h.CertificationCreate)
	grp.Get("/certifications/:id/delete", h.CertificationDelete)

	grp.Get("/projects", h.ProjectsPage)
	grp.Post("/projects", h.ProjectCreate)
	grp.Get("/projects/:id/delete", h.ProjectDelete)

	grp.Get("/experience", h.ExperiencePage)
	grp.Post("/experience", h.ExperienceCreate)
	grp.Get("/experience/:id/delete", h.ExperienceDelete)

	grp.Get("/contacts", h.ContactsPage)
}
