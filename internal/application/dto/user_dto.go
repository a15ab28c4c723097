package dto

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
// identifier_type: "id" | "passport" | "file".
type RegisterRequest struct {
	Identifier     string `json:"identifier"`
	IdentifierType string `json:"identifier_type"`
	Password       string `json:"password"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Role           string `json:"role"`     // por defecto "patient"
	Language       string `json:"language"` // por defecto "en"
}

// RegisterResponse acuse de registro con el id asignado.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// LoginRequest entrada para login con identifier + password.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// UserResponse proyección pública de un usuario (sin el hash de password).
type UserResponse struct {
	ID             int64  `json:"id"`
	Identifier     string `json:"identifier"`
	IdentifierType string `json:"identifier_type"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email,omitempty"`
	Role           string `json:"role"`
	Language       string `json:"language"`
	IsActive       bool   `json:"is_active"`
}

// LoginResponse salida con token bearer + proyección del usuario.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"` // siempre "bearer"
	User        UserResponse `json:"user"`
}

// PatientLoginRequest entrada del login alterno de pacientes. Debe venir
// exactamente uno de los tres campos de identificación.
type PatientLoginRequest struct {
	IDNumber       string `json:"id_number"`
	PassportNumber string `json:"passport_number"`
	FileNumber     string `json:"file_number"`
	Password       string `json:"password"`
}

// PatientResponse proyección pública del paciente para el login alterno.
type PatientResponse struct {
	PatientID      int64  `json:"patient_id"`
	FullName       string `json:"full_name"`
	Identifier     string `json:"identifier"`
	IdentifierType string `json:"identifier_type"`
	Email          string `json:"email,omitempty"`
}
