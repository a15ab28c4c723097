package dto

import "time"

// CreateAppointmentRequest entrada para agendar una cita. Tiempos en RFC 3339.
type CreateAppointmentRequest struct {
	PatientName string    `json:"patient_name"`
	Clinician   string    `json:"clinician"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

// AppointmentResponse proyección de una cita.
type AppointmentResponse struct {
	ID          int64     `json:"id"`
	PatientName string    `json:"patient_name"`
	Clinician   string    `json:"clinician"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

// AppointmentQuery filtros del listado: por clínico y ventana de tiempo.
type AppointmentQuery struct {
	Clinician string    `query:"clinician"`
	From      time.Time `query:"from"`
	To        time.Time `query:"to"`
	PageRequest
}
