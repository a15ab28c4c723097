package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sediba-health/clinic-api/internal/application/auth"
	"github.com/sediba-health/clinic-api/internal/application/usecase"
	"github.com/sediba-health/clinic-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	AppointmentUC *usecase.AppointmentUseCase
	FAQUC         *usecase.FAQUseCase
	Users         userResolver
	JWTSecret     string
}

// Router registra las rutas de la API. Los paths son el contrato histórico del
// frontend: /register, /login, /me, /users, /patient-login.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	apptHandler := NewAppointmentHandler(deps.AppointmentUC)
	faqHandler := NewFAQHandler(deps.FAQUC)

	// Públicas
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Post("/patient-login", authHandler.PatientLogin)
	app.Get("/faq", faqHandler.List)

	// Protegidas (requieren Bearer Token; el middleware resuelve el usuario)
	authed := AuthMiddleware(deps.JWTSecret, deps.Users)
	app.Get("/me", authed, authHandler.Me)
	app.Get("/users", authed, RequireRole(entity.RoleAdmin), authHandler.ListUsers)
	app.Post("/appointments", authed, apptHandler.Create)
	app.Get("/appointments", authed, apptHandler.List)
}
