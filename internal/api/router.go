package api

import (
	"portfolio-api/docs"
	"portfolio-api/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Handlers groups the API resource handlers wired by main.
type Handlers struct {
	Personal      *handlers.PersonalHandler
	Skill         *handlers.SkillHandler
	Certification *handlers.CertificationHandler
	Project       *handlers.ProjectHandler
	Experience    *handlers.ExperienceHandler
	Contact       *handlers.ContactHandler
	Rya           *handlers.RyaHandler
}

// SetupRouter builds the Fiber app and mounts the versioned REST API. The
// views engine is supplied by main so the admin panel can render on the same
// app.
func SetupRouter(h *Handlers, allowOrigins string, views fiber.Views, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		Views: views,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Importing docs registers the swagger spec through init().
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"message": "Portfolio API is running",
			"version": "1.0.0",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":     "healthy",
			"database":   "connected",
			"ai_service": "ready",
		})
	})

	v1 := app.Group("/api/v1")

	personal := v1.Group("/personal")
	personal.Get("", h.Personal.Get)
	personal.Post("", h.Personal.Create)
	personal.Put("", h.Personal.Update)

	skills := v1.Group("/skills")
	skills.Get("", h.Skill.List)
	skills.Get("/:id", h.Skill.Get)
	skills.Post("", h.Skill.Create)
	skills.Put("/:id", h.Skill.Update)
	skills.Delete("/:id", h.Skill.Delete)

	certifications := v1.Group("/certifications")
	certifications.Get("", h.Certification.List)
	certifications.Get("/:id", h.Certification.Get)
	certifications.Post("", h.Certification.Create)
	certifications.Put("/:id", h.Certification.Update)
	certifications.Delete("/:id", h.Certification.Delete)

	projects := v1.Group("/projects")
	projects.Get("", h.Project.List)
	projects.Get("/:id", h.Project.Get)
	projects.Post("", h.Project.Create)
	projects.Put("/:id", h.Project.Update)
	projects.Delete("/:id", h.Project.Delete)

	experience := v1.Group("/experience")
	experience.Get("", h.Experience.List)
	experience.Get("/:id", h.Experience.Get)
	experience.Post("", h.Experience.Create)
	experience.Put("/:id", h.Experience.Update)
	experience.Delete("/:id", h.Experience.Delete)

	contact := v1.Group("/contact")
	contact.Post("", h.Contact.Create)
	contact.Get("", h.Contact.List)

	rya := v1.Group("/rya")
	rya.Post("/ask", h.Rya.Ask)

	return app
}
