// Package bootstrap выполняет подготовку базы данных при старте сервиса:
// создание схемы и загрузку начальных данных салона. Вызывается один раз
// из main до запуска HTTP сервера и не участвует в обработке запросов.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/schnittwerk/SW-SchedulingService/pkg/dbmetrics"
)

// migrations упорядоченный список DDL операций. Каждая идемпотентна.
var migrations = []struct {
	name string
	stmt string
}{
	{
		name: "create_salons",
		stmt: `CREATE TABLE IF NOT EXISTS salons (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT,
			phone TEXT,
			email TEXT,
			opening_hours TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "create_stylists",
		stmt: `CREATE TABLE IF NOT EXISTS stylists (
			id TEXT PRIMARY KEY,
			salon_id TEXT NOT NULL REFERENCES salons (id),
			name TEXT NOT NULL,
			email TEXT,
			phone TEXT,
			specialties TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "create_services",
		stmt: `CREATE TABLE IF NOT EXISTS services (
			id TEXT PRIMARY KEY,
			salon_id TEXT NOT NULL REFERENCES salons (id),
			name TEXT NOT NULL,
			description TEXT,
			duration INTEGER NOT NULL CHECK (duration > 0),
			price NUMERIC(10,2) NOT NULL,
			category TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "create_appointments",
		stmt: `CREATE TABLE IF NOT EXISTS appointments (
			id TEXT PRIMARY KEY,
			salon_id TEXT NOT NULL REFERENCES salons (id),
			stylist_id TEXT NOT NULL REFERENCES stylists (id),
			service_id TEXT NOT NULL REFERENCES services (id),
			customer_name TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			customer_phone TEXT,
			appointment_date DATE NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'confirmed',
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "create_working_hours",
		stmt: `CREATE TABLE IF NOT EXISTS working_hours (
			id TEXT PRIMARY KEY,
			salon_id TEXT NOT NULL REFERENCES salons (id),
			day_of_week INTEGER NOT NULL CHECK (day_of_week BETWEEN 1 AND 7),
			open_time TEXT NOT NULL,
			close_time TEXT NOT NULL,
			is_working_day BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (salon_id, day_of_week)
		)`,
	},
	{
		// Страховка от двойного бронирования: даже если два запроса
		// одновременно пройдут проверку пересечений, второй INSERT упадёт
		name: "unique_stylist_slot",
		stmt: `CREATE UNIQUE INDEX IF NOT EXISTS uq_appointments_stylist_slot
			ON appointments (stylist_id, appointment_date, start_time)
			WHERE status != 'cancelled'`,
	},
	{
		name: "index_appointments_day",
		stmt: `CREATE INDEX IF NOT EXISTS idx_appointments_salon_date
			ON appointments (salon_id, appointment_date)`,
	},
	{
		name: "index_appointments_stylist_day",
		stmt: `CREATE INDEX IF NOT EXISTS idx_appointments_stylist_date
			ON appointments (stylist_id, appointment_date)`,
	},
}

// Migrate применяет все миграции по порядку
func Migrate(ctx context.Context, db dbmetrics.DBExecutor) error {
	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m.stmt); err != nil {
			return fmt.Errorf("bootstrap: migration %s: %w", m.name, err)
		}
	}
	return nil
}
