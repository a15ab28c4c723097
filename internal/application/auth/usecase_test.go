package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sediba-health/clinic-api/internal/application/auth"
	"github.com/sediba-health/clinic-api/internal/application/dto"
	"github.com/sediba-health/clinic-api/internal/domain"
	"github.com/sediba-health/clinic-api/internal/domain/entity"
	"github.com/sediba-health/clinic-api/internal/domain/identifier"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory del puerto UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  []*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (r *fakeUserRepo) Create(user *entity.User) (int64, error) {
	// Igual que la constraint única de la DB: el duplicado se rechaza aquí,
	// no solo en el pre-check del use case.
	for _, u := range r.users {
		if u.Identifier == user.Identifier {
			return 0, domain.ErrIdentifierTaken
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users = append(r.users, &cp)
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByIdentifier(ident string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Identifier == ident {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetPatientByIdentifier(lookup identifier.Lookup) (*entity.User, error) {
	for _, u := range r.users {
		if u.Identifier == lookup.Value && u.IdentifierType == lookup.Kind && u.Role == entity.RolePatient {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	if offset >= len(r.users) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.users) {
		end = len(r.users)
	}
	out := make([]*entity.User, 0, end-offset)
	for _, u := range r.users[offset:end] {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			cp := *user
			r.users[i] = &cp
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func newUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 30,
		Issuer:     "clinic-api-test",
	})
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Identifier:     "8001015009087",
		IdentifierType: identifier.TypeNationalID,
		Password:       "secret1",
		FirstName:      "Jane",
		LastName:       "Doe",
		Phone:          "0820000000",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CaminoFeliz(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	out, err := uc.Register(registerReq())
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.UserID)
	assert.Equal(t, "User registered successfully", out.Message)

	stored, err := repo.GetByIdentifier("8001015009087")
	require.NoError(t, err)
	require.NotNil(t, stored)

	// Defaults y hash real (nunca el password en claro).
	assert.Equal(t, entity.RolePatient, stored.Role)
	assert.Equal(t, "en", stored.Language)
	assert.True(t, stored.IsActive)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegister_DuplicadoRetornaConflict(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, err = uc.Register(registerReq())
	assert.ErrorIs(t, err, domain.ErrIdentifierTaken)
}

func TestRegister_IdentifierInvalido(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	in := registerReq()
	in.Identifier = "12345" // no son 13 dígitos
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)

	// Tipo desconocido ya no salta la validación.
	in = registerReq()
	in.IdentifierType = "drivers-license"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}

func TestRegister_PasswordCorto(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	in := registerReq()
	in.Password = "ab123"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
}

func TestRegister_RoleInvalido(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	in := registerReq()
	in.Role = "superuser"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestRegister_NormalizaLanguage(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	in := registerReq()
	in.Language = "EN-us"
	_, err := uc.Register(in)
	require.NoError(t, err)

	stored, _ := repo.GetByIdentifier(in.Identifier)
	assert.Equal(t, "en-US", stored.Language)

	in = registerReq()
	in.Identifier = "9001015009081"
	in.Language = "not a language!"
	_, err = uc.Register(in)
	require.NoError(t, err)

	stored, _ = repo.GetByIdentifier("9001015009081")
	assert.Equal(t, "en", stored.Language, "idioma imparseable cae a en")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CaminoFeliz(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Identifier: "8001015009087", Password: "secret1"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, "patient", out.User.Role)
	assert.Equal(t, "8001015009087", out.User.Identifier)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Identifier: "8001015009087", Password: "wrongpass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	_, err := uc.Login(dto.LoginRequest{Identifier: "0000000000000", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	stored, _ := repo.GetByIdentifier("8001015009087")
	stored.IsActive = false
	require.NoError(t, repo.Update(stored))

	_, err = uc.Login(dto.LoginRequest{Identifier: "8001015009087", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

// ──────────────────────────────────────────────────────────────────────────────
// PatientLogin — el password SIEMPRE se verifica
// ──────────────────────────────────────────────────────────────────────────────

func TestPatientLogin_CaminoFeliz(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	out, err := uc.PatientLogin(
		identifier.Lookup{Kind: identifier.TypeNationalID, Value: "8001015009087"},
		"secret1",
	)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.PatientID)
	assert.Equal(t, "Jane Doe", out.FullName)
	assert.Equal(t, identifier.TypeNationalID, out.IdentifierType)
}

func TestPatientLogin_PasswordIncorrectoRechaza(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, err = uc.PatientLogin(
		identifier.Lookup{Kind: identifier.TypeNationalID, Value: "8001015009087"},
		"wrongpass",
	)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPatientLogin_SoloPacientes(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	in := registerReq()
	in.Role = entity.RoleStaff
	_, err := uc.Register(in)
	require.NoError(t, err)

	_, err = uc.PatientLogin(
		identifier.Lookup{Kind: identifier.TypeNationalID, Value: "8001015009087"},
		"secret1",
	)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPatientLogin_TipoNoCoincide(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	// Mismo valor pero declarado como file number: no matchea.
	_, err = uc.PatientLogin(
		identifier.Lookup{Kind: identifier.TypeFileNumber, Value: "8001015009087"},
		"secret1",
	)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPatientLogin_LookupInvalido(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	_, err := uc.PatientLogin(identifier.Lookup{}, "secret1")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListUsers
// ──────────────────────────────────────────────────────────────────────────────

func seedUsers(t *testing.T, uc *auth.AuthUseCase, n int) {
	t.Helper()
	identifiers := []string{
		"8001015009087", "9001015009081", "7001015009085",
		"6001015009089", "5001015009083",
	}
	require.LessOrEqual(t, n, len(identifiers))
	for i := 0; i < n; i++ {
		in := registerReq()
		in.Identifier = identifiers[i]
		_, err := uc.Register(in)
		require.NoError(t, err)
	}
}

func TestListUsers_NoAdminRecibeForbidden(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	_, err := uc.ListUsers(entity.RolePatient, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ListUsers(entity.RoleStaff, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListUsers_AdminPaginado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	seedUsers(t, uc, 5)

	page, err := uc.ListUsers(entity.RoleAdmin, dto.PageRequest{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)

	// Orden de inserción: la página arranca en el segundo registrado.
	assert.Equal(t, int64(2), page[0].ID)
	assert.Equal(t, int64(3), page[1].ID)

	// La proyección nunca expone el hash: el DTO ni siquiera tiene el campo.
	assert.Equal(t, "9001015009081", page[0].Identifier)
}

func TestListUsers_DefaultsDePagina(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	seedUsers(t, uc, 3)

	page, err := uc.ListUsers(entity.RoleAdmin, dto.PageRequest{Skip: -5, Limit: 0})
	require.NoError(t, err)
	assert.Len(t, page, 3, "skip negativo y limit cero caen a 0/100")
}
