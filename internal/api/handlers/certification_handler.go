package handlers

import (
	"errors"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CertificationHandler struct {
	certService *service.CertificationService
	logger      *zap.Logger
}

func NewCertificationHandler(certService *service.CertificationService, logger *zap.Logger) *CertificationHandler {
	return &CertificationHandler{
		certService: certService,
		logger:      logger,
	}
}

// List godoc
// @Summary List certifications
// @Tags certifications
// @Produce json
// @Success 200 {array} dto.CertificationResponse
// @Router /api/v1/certifications [get]
func (h *CertificationHandler) List(c *fiber.Ctx) error {
	certs, err := h.certService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list certifications", zap.Error(err))
		return internalError(c, "Failed to list certifications")
	}

	return c.JSON(dto.NewCertificationResponseList(certs))
}

// Get godoc
// @Summary Get certification by ID
// @Tags certifications
// @Produce json
// @Param id path string true "Certification ID"
// @Success 200 {object} dto.CertificationResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/certifications/{id} [get]
func (h *CertificationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid certification ID")
	}

	cert, err := h.certService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Certification not found")
		}
		h.logger.Error("Failed to get certification", zap.Error(err))
		return internalError(c, "Failed to get certification")
	}

	return c.JSON(dto.NewCertificationResponse(cert))
}

// Create godoc
// @Summary Create certification
// @Tags certifications
// @Accept json
// @Produce json
// @Param request body dto.CreateCertificationRequest true "Certification"
// @Success 201 {object} dto.CertificationResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/certifications [post]
func (h *CertificationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCertificationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validate.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	cert, err := h.certService.Create(c.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to create certification", zap.Error(err))
		return internalError(c, "Failed to create certification")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewCertificationResponse(cert))
}

// Update godoc
// @Summary Update certification
// @Tags certifications
// @Accept json
// @Produce json
// @Param id path string true "Certification ID"
// @Param request body dto.UpdateCertificationRequest true "Fields to update"
// @Success 200 {object} dto.CertificationResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/certifications/{id} [put]
func (h *CertificationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid certification ID")
	}

	var req dto.UpdateCertificationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validate.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	cert, err := h.certService.Update(c.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Certification not found")
		}
		h.logger.Error("Failed to update certification", zap.Error(err))
		return internalError(c, "Failed to update certification")
	}

	return c.JSON(dto.NewCertificationResponse(cert))
}

// Delete godoc
// @Summary Delete certification
// @Tags certifications
// @Param id path string true "Certification ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /api/v1/certifications/{id} [delete]
func (h *CertificationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid certification ID")
	}

	if err := h.certService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, "Certification not found")
		}
		h.logger.Error("Failed to delete certification", zap.Error(err))
		return internalError(c, "Failed to delete certification")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
