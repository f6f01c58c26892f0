package handlers

import (
	"portfolio-api/internal/dto"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RyaHandler struct {
	ryaService *service.RyaService
	logger     *zap.Logger
}

func NewRyaHandler(ryaService *service.RyaService, logger *zap.Logger) *RyaHandler {
	return &RyaHandler{
		ryaService: ryaService,
		logger:     logger,
	}
}

// Ask godoc
// @Summary Ask Rya
// @Description Ask Rya, the AI assistant, a question about the portfolio owner. Rya answers only from portfolio data.
// @Tags rya
// @Accept json
// @Produce json
// @Param request body dto.AskRyaRequest true "Question"
// @Success 200 {object} dto.AskRyaResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/rya/ask [post]
func (h *RyaHandler) Ask(c *fiber.Ctx) error {
	var req dto.AskRyaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := validate.Struct(&req); fields != nil {
		return validationFailed(c, fields)
	}

	answer, err := h.ryaService.Ask(c.Context(), req.Question)
	if err != nil {
		h.logger.Error("Failed to answer question", zap.Error(err))
		return internalError(c, "Failed to answer question")
	}

	return c.JSON(dto.AskRyaResponse{Answer: answer})
}
