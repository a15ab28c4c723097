package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los traducen
// al status correspondiente: 400, 401, 403 o 409. Los textos son en inglés
// porque llegan al cliente.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrIdentifierTaken   = errors.New("identifier already registered")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrWeakPassword      = errors.New("password must be at least 6 characters long")
	ErrInvalidRole       = errors.New("role must be patient, staff or admin")
	ErrUnauthorized      = errors.New("invalid credentials")
	ErrAccountInactive   = errors.New("account is inactive")
	ErrForbidden         = errors.New("not enough permissions")
	ErrInvalidTimeRange  = errors.New("starts_at must be before ends_at")
	ErrDuplicate         = errors.New("duplicate resource")
)
