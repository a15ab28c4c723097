package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sediba-health/clinic-api/internal/application/dto"
	"github.com/sediba-health/clinic-api/internal/domain/entity"
	"github.com/sediba-health/clinic-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	localUser = "current_user"
	localRole = "role"
)

// userResolver es el contrato mínimo que necesita el middleware para resolver
// el subject del token contra el store. Lo implementa *postgres.UserRepo; el
// uso de interfaz evita acoplar el middleware a pgx y facilita los tests.
type userResolver interface {
	GetByIdentifier(ident string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token, resuelve el subject contra el store y
// deja el usuario en c.Locals. Token sin firma válida, malformado, expirado,
// sin subject o con subject que ya no existe en la DB → 401.
func AuthMiddleware(jwtSecret string, users userResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "expected format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		ident, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		user, err := users.GetByIdentifier(ident)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "could not resolve user"})
		}
		if user == nil {
			// Subject firmado pero sin registro: token de una cuenta borrada o
			// de otro entorno. Mismo 401 que un token inválido.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "could not validate credentials"})
		}
		c.Locals(localUser, user)
		c.Locals(localRole, role)
		return c.Next()
	}
}

// RequireRole autoriza por rol del usuario resuelto. Debe usarse DESPUÉS de
// AuthMiddleware. Sin rol → 401; rol no permitido → 403.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil || user.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "no role associated with this session"})
		}
		for _, role := range allowed {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "not enough permissions"})
	}
}

// GetCurrentUser devuelve el usuario resuelto por AuthMiddleware, o nil.
func GetCurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(localUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetRole devuelve el claim de rol del token (informativo; la autorización usa
// el rol del usuario resuelto).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(localRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
