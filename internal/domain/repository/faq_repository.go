package repository

import "github.com/sediba-health/clinic-api/internal/domain/entity"

// FAQRepository puerto de persistencia para preguntas frecuentes.
type FAQRepository interface {
	List() ([]*entity.FAQEntry, error)
	Count() (int, error)
	// Seed inserta las entradas por defecto; se invoca solo cuando Count() == 0.
	Seed(entries []*entity.FAQEntry) error
}
