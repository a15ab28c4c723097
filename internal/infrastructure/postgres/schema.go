package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DDL de las tres tablas. Se ejecuta en el arranque (idempotente); las
// constraints de la DB son la fuente de verdad: identifier único, tipos y roles
// cerrados por CHECK, starts_at < ends_at por CHECK.
const (
	createUsersTable = `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			identifier TEXT UNIQUE NOT NULL,
			identifier_type TEXT NOT NULL CHECK (identifier_type IN ('id', 'passport', 'file')),
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone TEXT,
			email TEXT,
			hashed_password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'patient' CHECK (role IN ('patient', 'staff', 'admin')),
			language TEXT NOT NULL DEFAULT 'en',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	createUsersIndex = `
		CREATE INDEX IF NOT EXISTS idx_users_identifier ON users (identifier)`

	createAppointmentsTable = `
		CREATE TABLE IF NOT EXISTS appointments (
			id BIGSERIAL PRIMARY KEY,
			patient_name TEXT NOT NULL,
			clinician TEXT NOT NULL,
			starts_at TIMESTAMPTZ NOT NULL,
			ends_at TIMESTAMPTZ NOT NULL,
			CHECK (starts_at < ends_at)
		)`

	createAppointmentsIndex = `
		CREATE INDEX IF NOT EXISTS idx_appointments_clinician_start_end
		ON appointments (clinician, starts_at, ends_at)`

	createFAQTable = `
		CREATE TABLE IF NOT EXISTS faq (
			id BIGSERIAL PRIMARY KEY,
			question TEXT NOT NULL UNIQUE,
			answer TEXT NOT NULL
		)`
)

// InitSchema crea las tablas e índices si no existen.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		createUsersTable,
		createUsersIndex,
		createAppointmentsTable,
		createAppointmentsIndex,
		createFAQTable,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
