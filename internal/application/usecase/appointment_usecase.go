package usecase

import (
	"github.com/sediba-health/clinic-api/internal/application/dto"
	"github.com/sediba-health/clinic-api/internal/domain"
	"github.com/sediba-health/clinic-api/internal/domain/entity"
	"github.com/sediba-health/clinic-api/internal/domain/repository"
)

// AppointmentUseCase operaciones sobre citas. Pass-through fino: la única regla
// es starts_at < ends_at, duplicada aquí para dar un error legible antes de que
// el CHECK de la DB lo rechace.
type AppointmentUseCase struct {
	repo repository.AppointmentRepository
}

// NewAppointmentUseCase construye el caso de uso con el puerto de persistencia.
func NewAppointmentUseCase(repo repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo}
}

// Create agenda una cita.
func (uc *AppointmentUseCase) Create(in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if !in.StartsAt.Before(in.EndsAt) {
		return nil, domain.ErrInvalidTimeRange
	}
	appt := &entity.Appointment{
		PatientName: in.PatientName,
		Clinician:   in.Clinician,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
	}
	id, err := uc.repo.Create(appt)
	if err != nil {
		return nil, err
	}
	appt.ID = id
	return toAppointmentResponse(appt), nil
}

// List lista citas; con clinician + ventana usa el índice por clínico, si no
// pagina el total.
func (uc *AppointmentUseCase) List(q dto.AppointmentQuery) ([]*dto.AppointmentResponse, error) {
	var (
		appts []*entity.Appointment
		err   error
	)
	if q.Clinician != "" && !q.From.IsZero() && !q.To.IsZero() {
		appts, err = uc.repo.ListByClinician(q.Clinician, q.From, q.To)
	} else {
		q.DefaultPage()
		appts, err = uc.repo.List(q.Limit, q.Skip)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, toAppointmentResponse(a))
	}
	return out, nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:          a.ID,
		PatientName: a.PatientName,
		Clinician:   a.Clinician,
		StartsAt:    a.StartsAt,
		EndsAt:      a.EndsAt,
	}
}
