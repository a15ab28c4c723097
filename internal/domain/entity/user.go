package entity

import "time"

// Roles válidos para User.
const (
	RolePatient = "patient"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

// User representa un usuario/paciente de la clínica. El login no es por email:
// el identifier (cédula sudafricana, pasaporte o número de ficha) es la llave
// única de autenticación.
type User struct {
	ID             int64
	Identifier     string
	IdentifierType string // identifier.TypeNationalID | TypePassport | TypeFileNumber
	FirstName      string
	LastName       string
	Phone          string
	Email          string // opcional, puede quedar vacío para pacientes
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Role           string // patient, staff, admin
	Language       string // preferencia de idioma, tag BCP 47 ("en" por defecto)
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName nombre completo para proyecciones públicas.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
