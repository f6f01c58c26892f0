package handlers

import (
	"errors"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ExperienceHandler struct {
	expService *service.ExperienceService
	logger     *zap.Logger
}

func NewExperienceHandler(expService *service.ExperienceService, logger *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{
		expService: expService,
		logger:     logger,
	}
}

// List godoc
// @Summary List work experience
// @Tags experience
// @Produce json
// @Success 200 {array} dto.ExperienceResponse
// @Router /api/v1/experience [get]
func (h *ExperienceHandler) List(c *fiber.Ctx) error {
	entries, err := h.expService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list experience", zap.Error(err))
		return internalError(c, "Failed to list experience")
	}

	return c.JSON(dto.NewExperienceResponseList(entries))
}

// Get godoc
// @Summary Get experience entry by ID
// @Tags experience
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} dto.ExperienceResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/experience/{id} [get]
func (h *ExperienceHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid experience ID")
	}

	exp, err := h.expService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Experience not found")
		}
		h.logger.Error("Failed to get experience", zap.Error(err))
		return internalError(c, "Failed to get experience")
	}

	return c.JSON(dto.NewExperienceResponse(exp))
}

// Create godoc
// @Summary Create experience entry
// @Tags experience
// @Accept json
// @Produce json
// @Param request body dto.CreateExperienceRequest true "Experience"
// @Success 201 {object} dto.ExperienceResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/experience [post]
func (h *ExperienceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validate.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	exp, err := h.expService.Create(c.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to create experience", zap.Error(err))
		return internalError(c, "Failed to create experience")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewExperienceResponse(exp))
}

// Update godoc
// @Summary Update experience entry
// @Tags experience
// @Accept json
// @Produce json
// @Param id path string true "Experience ID"
// @Param request body dto.UpdateExperienceRequest true "Fields to update"
// @Success 200 {object} dto.ExperienceResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/experience/{id} [put]
func (h *ExperienceHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid experience ID")
	}

	var req dto.UpdateExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validate.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	exp, err := h.expService.Update(c.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Experience not found")
		}
		h.logger.Error("Failed to update experience", zap.Error(err))
		return internalError(c, "Failed to update experience")
	}

	return c.JSON(dto.NewExperienceResponse(exp))
}

// Delete godoc
// @Summary Delete experience entry
// @Tags experience
// @Param id path string true "Experience ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /api/v1/experience/{id} [delete]
func (h *ExperienceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid experience ID")
	}

	if err := h.expService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Experience not found")
		}
		h.logger.Error("Failed to delete experience", zap.Error(err))
		return internalError(c, "Failed to delete experience")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
