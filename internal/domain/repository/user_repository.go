package repository

import (
	"github.com/sediba-health/clinic-api/internal/domain/entity"
	"github.com/sediba-health/clinic-api/internal/domain/identifier"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila; la constraint única
// de la DB es la fuente de verdad para duplicados (Create retorna
// domain.ErrIdentifierTaken al violarse).
type UserRepository interface {
	Create(user *entity.User) (int64, error)
	GetByID(id int64) (*entity.User, error)
	GetByIdentifier(ident string) (*entity.User, error)
	// GetPatientByIdentifier resuelve el lookup etiquetado del patient login:
	// identifier + tipo, restringido a role patient.
	GetPatientByIdentifier(lookup identifier.Lookup) (*entity.User, error)
	// List pagina en orden de inserción (id ascendente).
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
}
