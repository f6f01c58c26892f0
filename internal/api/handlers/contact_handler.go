package handlers

import (
	"portfolio-api/internal/dto"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ContactHandler struct {
	contactService *service.ContactService
	logger         *zap.Logger
}

func NewContactHandler(contactService *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Submit contact request
// @Description Submit a contact request to the portfolio owner. Message must be at least 10 characters.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Contact request"
// @Success 201 {object} dto.ContactRequestResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/contact [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validate.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	request, err := h.contactService.Create(c.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to create contact request", zap.Error(err))
		return internalError(c, "Failed to create contact request")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewContactRequestResponse(request))
}

// List godoc
// @Summary List contact requests
// @Description Retrieve all contact requests, newest first
// @Tags contact
// @Produce json
// @Success 200 {array} dto.ContactRequestResponse
// @Router /api/v1/contact [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	requests, err := h.contactService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list contact requests", zap.Error(err))
		return internalError(c, "Failed to list contact requests")
	}

	return c.JSON(dto.NewContactRequestResponseList(requests))
}
