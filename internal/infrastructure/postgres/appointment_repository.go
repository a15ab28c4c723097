package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sediba-health/clinic-api/internal/domain"
	"github.com/sediba-health/clinic-api/internal/domain/entity"
	"github.com/sediba-health/clinic-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación de AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador de persistencia para citas.
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste una cita. El CHECK starts_at < ends_at de la tabla se mapea
// a ErrInvalidTimeRange.
func (r *AppointmentRepo) Create(appt *entity.Appointment) (int64, error) {
	query := `
		INSERT INTO appointments (patient_name, clinician, starts_at, ends_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		appt.PatientName, appt.Clinician, appt.StartsAt, appt.EndsAt,
	).Scan(&id)
	if err != nil {
		if isCheckViolation(err) {
			return 0, domain.ErrInvalidTimeRange
		}
		return 0, fmt.Errorf("insert appointment: %w", err)
	}
	appt.ID = id
	return id, nil
}

// GetByID obtiene una cita por ID.
func (r *AppointmentRepo) GetByID(id int64) (*entity.Appointment, error) {
	query := `
		SELECT id, patient_name, clinician, starts_at, ends_at
		FROM appointments WHERE id = $1`
	var a entity.Appointment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.PatientName, &a.Clinician, &a.StartsAt, &a.EndsAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

// ListByClinician lista citas del clínico que se solapan con [from, to),
// apoyado en el índice (clinician, starts_at, ends_at).
func (r *AppointmentRepo) ListByClinician(clinician string, from, to time.Time) ([]*entity.Appointment, error) {
	query := `
		SELECT id, patient_name, clinician, starts_at, ends_at
		FROM appointments
		WHERE clinician = $1 AND starts_at < $3 AND ends_at > $2
		ORDER BY starts_at`
	rows, err := r.q.Query(context.Background(), query, clinician, from, to)
	if err != nil {
		return nil, fmt.Errorf("list appointments by clinician: %w", err)
	}
	defer rows.Close()
	return collectAppointments(rows)
}

// List pagina citas por orden de inicio.
func (r *AppointmentRepo) List(limit, offset int) ([]*entity.Appointment, error) {
	query := `
		SELECT id, patient_name, clinician, starts_at, ends_at
		FROM appointments ORDER BY starts_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func collectAppointments(rows pgx.Rows) ([]*entity.Appointment, error) {
	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(&a.ID, &a.PatientName, &a.Clinician, &a.StartsAt, &a.EndsAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
