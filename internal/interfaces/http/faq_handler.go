package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sediba-health/clinic-api/internal/application/dto"
	"github.com/sediba-health/clinic-api/internal/application/usecase"
)

// FAQHandler expone las preguntas frecuentes de la clínica.
type FAQHandler struct {
	uc *usecase.FAQUseCase
}

// NewFAQHandler construye el handler de FAQ.
func NewFAQHandler(uc *usecase.FAQUseCase) *FAQHandler {
	return &FAQHandler{uc: uc}
}

// List godoc
// @Summary      Listar preguntas frecuentes
// @Tags         faq
// @Produce      json
// @Success      200  {array}  dto.FAQResponse
// @Router       /faq [get]
func (h *FAQHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
