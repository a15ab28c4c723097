package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sediba-health/clinic-api/internal/application/dto"
	"github.com/sediba-health/clinic-api/internal/application/usecase"
	"github.com/sediba-health/clinic-api/internal/domain"
)

// AppointmentHandler maneja citas.
type AppointmentHandler struct {
	uc *usecase.AppointmentUseCase
}

// NewAppointmentHandler construye el handler de citas.
func NewAppointmentHandler(uc *usecase.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Create godoc
// @Summary      Agendar una cita
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateAppointmentRequest  true  "patient_name, clinician, starts_at, ends_at"
// @Success      200   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.PatientName == "" || in.Clinician == "" || in.StartsAt.IsZero() || in.EndsAt.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "patient_name, clinician, starts_at and ends_at are required"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTimeRange) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TIME_RANGE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar citas (opcionalmente por clínico y ventana de tiempo)
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        clinician  query  string  false  "clínico"
// @Param        from       query  string  false  "inicio de ventana (RFC 3339)"
// @Param        to         query  string  false  "fin de ventana (RFC 3339)"
// @Success      200  {array}   dto.AppointmentResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	var q dto.AppointmentQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid query parameters"})
	}
	out, err := h.uc.List(q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
