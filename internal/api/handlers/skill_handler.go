package handlers

import (
	"errors"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SkillHandler struct {
	skillService *service.SkillService
	logger       *zap.Logger
}

func NewSkillHandler(skillService *service.SkillService, logger *zap.Logger) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
		logger:       logger,
	}
}

// List godoc
// @Summary List skills
// @Description Retrieve all skills, optionally filtered by category
// @Tags skills
// @Produce json
// @Param category query string false "Filter by category" Enums(backend, frontend, devops, other)
// @Success 200 {array} dto.SkillResponse
// @Router /api/v1/skills [get]
func (h *SkillHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")
	switch category {
	case "", "backend", "frontend", "devops", "other":
	default:
		return badRequest(c, "Invalid category")
	}

	skills, err := h.skillService.List(c.Context(), category)
	if err != nil {
		h.logger.Error("Failed to list skills", zap.Error(err))
		return internalError(c, "Failed to list skills")
	}

	return c.JSON(dto.NewSkillResponseList(skills))
}

// Get godoc
// @Summary Get skill by ID
// @Tags skills
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} dto.SkillResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/skills/{id} [get]
func (h *SkillHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid skill ID")
	}

	skill, err := h.skillService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Skill not found")
		}
		h.logger.Error("Failed to get skill", zap.Error(err))
		return internalError(c, "Failed to get skill")
	}

	return c.JSON(dto.NewSkillResponse(skill))
}

// Create godoc
// @Summary Create skill
// @Tags skills
// @Accept json
// @Produce json
// @Param request body dto.CreateSkillRequest true "Skill"
// @Success 201 {object} dto.SkillResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/skills [post]
func (h *SkillHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validate.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	skill, err := h.skillService.Create(c.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to create skill", zap.Error(err))
		return internalError(c, "Failed to create skill")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewSkillResponse(skill))
}

// Update godoc
// @Summary Update skill
// @Tags skills
// @Accept json
// @Produce json
// @Param id path string true "Skill ID"
// @Param request body dto.UpdateSkillRequest true "Fields to update"
// @Success 200 {object} dto.SkillResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/skills/{id} [put]
func (h *SkillHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid skill ID")
	}

	var req dto.UpdateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validate.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	skill, err := h.skillService.Update(c.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Skill not found")
		}
		h.logger.Error("Failed to update skill", zap.Error(err))
		return internalError(c, "Failed to update skill")
	}

	return c.JSON(dto.NewSkillResponse(skill))
}

// Delete godoc
// @Summary Delete skill
// @Tags skills
// @Param id path string true "Skill ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /api/v1/skills/{id} [delete]
func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid skill ID")
	}

	if err := h.skillService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Skill not found")
		}
		h.logger.Error("Failed to delete skill", zap.Error(err))
		return internalError(c, "Failed to delete skill")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
