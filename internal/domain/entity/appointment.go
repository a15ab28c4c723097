package entity

import "time"

// Appointment cita de un paciente con un clínico. La DB garantiza
// starts_at < ends_at con un CHECK; el use case valida antes para dar
// un error legible.
type Appointment struct {
	ID          int64
	PatientName string
	Clinician   string
	StartsAt    time.Time
	EndsAt      time.Time
}
