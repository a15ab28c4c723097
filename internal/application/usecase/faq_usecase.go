package usecase

import (
	"github.com/sediba-health/clinic-api/internal/application/dto"
	"github.com/sediba-health/clinic-api/internal/domain/entity"
	"github.com/sediba-health/clinic-api/internal/domain/repository"
)

// Entradas por defecto del FAQ, sembradas en el arranque si la tabla está vacía.
var defaultFAQ = []*entity.FAQEntry{
	{Question: "Clinic hours?", Answer: "Mon–Fri 08:00–16:00"},
	{Question: "Do I need my ID?", Answer: "Bring SA ID or passport and any referral notes."},
}

// FAQUseCase listado y seed de preguntas frecuentes.
type FAQUseCase struct {
	repo repository.FAQRepository
}

// NewFAQUseCase construye el caso de uso con el puerto de persistencia.
func NewFAQUseCase(repo repository.FAQRepository) *FAQUseCase {
	return &FAQUseCase{repo: repo}
}

// List devuelve todas las entradas.
func (uc *FAQUseCase) List() ([]*dto.FAQResponse, error) {
	entries, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FAQResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, &dto.FAQResponse{ID: e.ID, Question: e.Question, Answer: e.Answer})
	}
	return out, nil
}

// SeedDefaults inserta las entradas por defecto solo si la tabla está vacía.
func (uc *FAQUseCase) SeedDefaults() error {
	n, err := uc.repo.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return uc.repo.Seed(defaultFAQ)
}
