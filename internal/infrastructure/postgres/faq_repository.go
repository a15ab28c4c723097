package postgres

import (
	"context"
	"fmt"

	"github.com/sediba-health/clinic-api/internal/domain"
	"github.com/sediba-health/clinic-api/internal/domain/entity"
	"github.com/sediba-health/clinic-api/internal/domain/repository"
)

var _ repository.FAQRepository = (*FAQRepo)(nil)

// FAQRepo implementación de FAQRepository sobre PostgreSQL.
type FAQRepo struct {
	q Querier
}

// NewFAQRepository construye el adaptador de persistencia para FAQ.
func NewFAQRepository(q Querier) *FAQRepo {
	return &FAQRepo{q: q}
}

// List devuelve todas las preguntas frecuentes en orden de inserción.
func (r *FAQRepo) List() ([]*entity.FAQEntry, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, question, answer FROM faq ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list faq: %w", err)
	}
	defer rows.Close()
	var list []*entity.FAQEntry
	for rows.Next() {
		var e entity.FAQEntry
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Count cuenta las entradas existentes.
func (r *FAQRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM faq`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count faq: %w", err)
	}
	return n, nil
}

// Seed inserta las entradas por defecto. Question es única: un duplicado se
// mapea a ErrDuplicate.
func (r *FAQRepo) Seed(entries []*entity.FAQEntry) error {
	for _, e := range entries {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO faq (question, answer) VALUES ($1, $2)`, e.Question, e.Answer)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("seed faq: %w", err)
		}
	}
	return nil
}
