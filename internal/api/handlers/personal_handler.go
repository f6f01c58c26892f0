package handlers

import (
	"errors"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PersonalHandler struct {
	personalService *service.PersonalInfoService
	logger          *zap.Logger
}

func NewPersonalHandler(personalService *service.PersonalInfoService, logger *zap.Logger) *PersonalHandler {
	return &PersonalHandler{
		personalService: personalService,
		logger:          logger,
	}
}

// Get godoc
// @Summary Get personal information
// @Description Retrieve the portfolio owner's personal information (single record)
// @Tags personal
// @Produce json
// @Success 200 {object} dto.PersonalInfoResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/personal [get]
func (h *PersonalHandler) Get(c *fiber.Ctx) error {
	info, err := h.personalService.Get(c.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Personal information not found. Please create one first.")
		}
		h.logger.Error("Failed to get personal info", zap.Error(err))
		return internalError(c, "Failed to get personal info")
	}

	return c.JSON(dto.NewPersonalInfoResponse(info))
}

// Create godoc
// @Summary Create personal information
// @Description Create the portfolio owner's personal information. Only one record can exist.
// @Tags personal
// @Accept json
// @Produce json
// @Param request body dto.CreatePersonalInfoRequest true "Personal info"
// @Success 201 {object} dto.PersonalInfoResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/personal [post]
func (h *PersonalHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePersonalInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validate.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	info, err := h.personalService.Create(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyExists) {
			return badRequest(c, "Personal information already exists. Use PUT to update.")
		}
		h.logger.Error("Failed to create personal info", zap.Error(err))
		return internalError(c, "Failed to create personal info")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewPersonalInfoResponse(info))
}

// Update godoc
// @Summary Update personal information
// @Description Partially update the personal info record. Only provided fields are applied.
// @Tags personal
// @Accept json
// @Produce json
// @Param request body dto.UpdatePersonalInfoRequest true "Fields to update"
// @Success 200 {object} dto.PersonalInfoResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/personal [put]
func (h *PersonalHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePersonalInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validate.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	info, err := h.personalService.Update(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Personal information not found. Please create one first.")
		}
		h.logger.Error("Failed to update personal info", zap.Error(err))
		return internalError(c, "Failed to update personal info")
	}

	return c.JSON(dto.NewPersonalInfoResponse(info))
}
