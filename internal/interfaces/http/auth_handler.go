package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sediba-health/clinic-api/internal/application/auth"
	"github.com/sediba-health/clinic-api/internal/application/dto"
	"github.com/sediba-health/clinic-api/internal/domain"
	"github.com/sediba-health/clinic-api/internal/domain/identifier"
)

// AuthHandler maneja registro, login y perfil.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario/paciente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "identifier, identifier_type, password, nombres"
// @Success      200   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Identifier == "" || in.IdentifierType == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "identifier, identifier_type, password, first_name and last_name are required"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIdentifierTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IDENTIFIER_EXISTS", Message: "Identifier already registered"})
		case errors.Is(err, domain.ErrInvalidIdentifier):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IDENTIFIER", Message: err.Error()})
		case errors.Is(err, domain.ErrWeakPassword), errors.Is(err, domain.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión con identifier + password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "identifier, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Identifier == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "identifier and password are required"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid identifier or password"})
		case errors.Is(err, domain.ErrAccountInactive):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "ACCOUNT_INACTIVE", Message: "Account is inactive"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	// AuthMiddleware ya resolvió el usuario; aquí solo proyectamos.
	return c.JSON(auth.ToUserResponse(GetCurrentUser(c)))
}

// ListUsers godoc
// @Summary      Listar usuarios (solo admin)
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query  int  false  "offset"
// @Param        limit  query  int  false  "tamaño de página (máx 100)"
// @Success      200  {array}   dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination parameters"})
	}
	user := GetCurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "could not validate credentials"})
	}
	out, err := h.uc.ListUsers(user.Role, page)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Not enough permissions"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PatientLogin godoc
// @Summary      Login alterno de pacientes por id_number, passport_number o file_number
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PatientLoginRequest  true  "exactamente un identificador + password"
// @Success      200   {object}  dto.PatientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /patient-login [post]
func (h *AuthHandler) PatientLogin(c *fiber.Ctx) error {
	var in dto.PatientLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password is required"})
	}

	// Variante etiquetada construida explícitamente: exactamente uno de los
	// tres campos, sin orden de prioridad implícito entre ellos.
	var lookups []identifier.Lookup
	if in.IDNumber != "" {
		lookups = append(lookups, identifier.Lookup{Kind: identifier.TypeNationalID, Value: in.IDNumber})
	}
	if in.PassportNumber != "" {
		lookups = append(lookups, identifier.Lookup{Kind: identifier.TypePassport, Value: in.PassportNumber})
	}
	if in.FileNumber != "" {
		lookups = append(lookups, identifier.Lookup{Kind: identifier.TypeFileNumber, Value: in.FileNumber})
	}
	if len(lookups) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "No valid identifier provided"})
	}
	if len(lookups) > 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "provide exactly one of id_number, passport_number or file_number"})
	}

	out, err := h.uc.PatientLogin(lookups[0], in.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidIdentifier):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IDENTIFIER", Message: err.Error()})
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrAccountInactive):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
