package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/language"

	"github.com/sediba-health/clinic-api/internal/application/dto"
	"github.com/sediba-health/clinic-api/internal/domain"
	"github.com/sediba-health/clinic-api/internal/domain/entity"
	"github.com/sediba-health/clinic-api/internal/domain/identifier"
	"github.com/sediba-health/clinic-api/internal/domain/repository"
	"github.com/sediba-health/clinic-api/pkg/jwt"
)

// Longitud mínima de password (política heredada del contrato de la API).
const minPasswordLen = 6

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, login de pacientes
// y listado de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: valida el formato del identifier para su tipo
// declarado, hashea el password con bcrypt y persiste. Devuelve
// ErrIdentifierTaken si el identifier ya existe.
//
// El pre-check de duplicado es solo el camino amable; el guard autoritativo es
// la constraint única de la DB, que el repo mapea al mismo error.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if len(in.Password) < minPasswordLen {
		return nil, domain.ErrWeakPassword
	}
	if err := identifier.Validate(in.IdentifierType, in.Identifier); err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RolePatient
	}
	if role != entity.RolePatient && role != entity.RoleStaff && role != entity.RoleAdmin {
		return nil, domain.ErrInvalidRole
	}

	existing, err := uc.userRepo.GetByIdentifier(in.Identifier)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrIdentifierTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Identifier:     in.Identifier,
		IdentifierType: in.IdentifierType,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Phone:          in.Phone,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Role:           role,
		Language:       canonicalLanguage(in.Language),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	id, err := uc.userRepo.Create(user)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{Message: "User registered successfully", UserID: id}, nil
}

// Login verifica identifier/password, genera el JWT y retorna token + proyección.
// Usuario inexistente, password incorrecto y cuenta inactiva fallan todos con
// errores que el handler traduce a 401.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByIdentifier(in.Identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Identifier, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *ToUserResponse(user),
	}, nil
}

// PatientLogin resuelve el lookup etiquetado (tipo + valor) restringido a
// pacientes y verifica el password contra el hash almacenado. La versión
// histórica aceptaba cualquier password; eso era una implementación incompleta
// y aquí se verifica siempre.
func (uc *AuthUseCase) PatientLogin(lookup identifier.Lookup, password string) (*dto.PatientResponse, error) {
	if !lookup.Valid() {
		return nil, domain.ErrInvalidIdentifier
	}
	patient, err := uc.userRepo.GetPatientByIdentifier(lookup)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !patient.IsActive {
		return nil, domain.ErrAccountInactive
	}
	return &dto.PatientResponse{
		PatientID:      patient.ID,
		FullName:       patient.FullName(),
		Identifier:     patient.Identifier,
		IdentifierType: patient.IdentifierType,
		Email:          patient.Email,
	}, nil
}

// ListUsers devuelve una página de proyecciones. Solo admin.
func (uc *AuthUseCase) ListUsers(requesterRole string, page dto.PageRequest) ([]*dto.UserResponse, error) {
	if requesterRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	users, err := uc.userRepo.List(page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out, nil
}

// ToUserResponse proyección pública de un usuario (excluye el hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Identifier:     u.Identifier,
		IdentifierType: u.IdentifierType,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Phone:          u.Phone,
		Email:          u.Email,
		Role:           u.Role,
		Language:       u.Language,
		IsActive:       u.IsActive,
	}
}

// canonicalLanguage normaliza la preferencia de idioma a un tag BCP 47.
// Valores vacíos o imparseables caen a "en".
func canonicalLanguage(pref string) string {
	if pref == "" {
		return "en"
	}
	tag, err := language.Parse(pref)
	if err != nil {
		return "en"
	}
	return tag.String()
}
