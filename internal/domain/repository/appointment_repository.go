package repository

import (
	"time"

	"github.com/sediba-health/clinic-api/internal/domain/entity"
)

// AppointmentRepository puerto de persistencia para citas.
type AppointmentRepository interface {
	Create(appt *entity.Appointment) (int64, error)
	GetByID(id int64) (*entity.Appointment, error)
	// ListByClinician lista citas del clínico que se solapan con [from, to),
	// apoyado en el índice (clinician, starts_at, ends_at).
	ListByClinician(clinician string, from, to time.Time) ([]*entity.Appointment, error)
	List(limit, offset int) ([]*entity.Appointment, error)
}
