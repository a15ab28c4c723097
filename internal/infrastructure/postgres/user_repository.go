package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sediba-health/clinic-api/internal/domain"
	"github.com/sediba-health/clinic-api/internal/domain/entity"
	"github.com/sediba-health/clinic-api/internal/domain/identifier"
	"github.com/sediba-health/clinic-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, identifier, identifier_type, first_name, last_name, phone,
		email, hashed_password, role, language, is_active, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario y devuelve el id asignado por la DB.
// La constraint única sobre identifier es el guard autoritativo contra
// registros duplicados concurrentes: 23505 se mapea a ErrIdentifierTaken.
func (r *UserRepo) Create(user *entity.User) (int64, error) {
	query := `
		INSERT INTO users (identifier, identifier_type, first_name, last_name, phone,
			email, hashed_password, role, language, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		user.Identifier, user.IdentifierType, user.FirstName, user.LastName, user.Phone,
		user.Email, user.PasswordHash, user.Role, user.Language, user.IsActive,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrIdentifierTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	user.ID = id
	return id, nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByIdentifier obtiene un usuario por identifier (llave de login).
func (r *UserRepo) GetByIdentifier(ident string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE identifier = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, ident), "get user by identifier")
}

// GetPatientByIdentifier resuelve el lookup etiquetado del patient login:
// identifier + tipo, restringido a role patient.
func (r *UserRepo) GetPatientByIdentifier(lookup identifier.Lookup) (*entity.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users WHERE identifier = $1 AND identifier_type = $2 AND role = $3`
	row := r.q.QueryRow(context.Background(), query, lookup.Value, lookup.Kind, entity.RolePatient)
	return r.scanOne(row, "get patient by identifier")
}

// List pagina usuarios en orden de inserción (id ascendente).
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables de un usuario (incluye is_active; la
// desactivación no tiene superficie HTTP, solo acceso directo al store).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET first_name = $2, last_name = $3, phone = $4, email = $5,
			hashed_password = $6, role = $7, language = $8, is_active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.FirstName, user.LastName, user.Phone, user.Email,
		user.PasswordHash, user.Role, user.Language, user.IsActive, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	if err := scanUser(row, &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

func scanUser(row pgx.Row, u *entity.User) error {
	return row.Scan(
		&u.ID, &u.Identifier, &u.IdentifierType, &u.FirstName, &u.LastName, &u.Phone,
		&u.Email, &u.PasswordHash, &u.Role, &u.Language, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
}
