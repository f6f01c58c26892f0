package handlers

import (
	"errors"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	projectService *service.ProjectService
	logger         *zap.Logger
}

func NewProjectHandler(projectService *service.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// List godoc
// @Summary List projects
// @Description Retrieve all projects, optionally filtered by type
// @Tags projects
// @Produce json
// @Param project_type query string false "Filter by project type" Enums(personal, professional)
// @Success 200 {array} dto.ProjectResponse
// @Router /api/v1/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projectType := c.Query("project_type")
	switch projectType {
	case "", "personal", "professional":
	default:
		return badRequest(c, "Invalid project type")
	}

	projects, err := h.projectService.List(c.Context(), projectType)
	if err != nil {
		h.logger.Error("Failed to list projects", zap.Error(err))
		return internalError(c, "Failed to list projects")
	}

	return c.JSON(dto.NewProjectResponseList(projects))
}

// Get godoc
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid project ID")
	}

	project, err := h.projectService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Project not found")
		}
		h.logger.Error("Failed to get project", zap.Error(err))
		return internalError(c, "Failed to get project")
	}

	return c.JSON(dto.NewProjectResponse(project))
}

// Create godoc
// @Summary Create project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Project"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validate.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	project, err := h.projectService.Create(c.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to create project", zap.Error(err))
		return internalError(c, "Failed to create project")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewProjectResponse(project))
}

// Update godoc
// @Summary Update project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid project ID")
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validate.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	project, err := h.projectService.Update(c.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Project not found")
		}
		h.logger.Error("Failed to update project", zap.Error(err))
		return internalError(c, "Failed to update project")
	}

	return c.JSON(dto.NewProjectResponse(project))
}

// Delete godoc
// @Summary Delete project
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /api/v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid project ID")
	}

	if err := h.projectService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Project not found")
		}
		h.logger.Error("Failed to delete project", zap.Error(err))
		return internalError(c, "Failed to delete project")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
