package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	"github.com/schnittwerk/SW-SchedulingService/pkg/dbmetrics"
	"github.com/schnittwerk/SW-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями на приём
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет новую запись. Если в контексте передана активная
// транзакция (через context.Value), использует её — так проверка коллизий
// и вставка выполняются единой атомарной операцией.
//
// Уникальный индекс (stylist_id, appointment_date, start_time) служит
// страховкой на случай, если два запроса одновременно пройдут проверку
// пересечений: второй INSERT завершится ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"salon_id",
			"stylist_id",
			"service_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"appointment_date",
			"start_time",
			"end_time",
			"status",
			"notes",
		).
		Values(
			appt.ID,
			appt.SalonID,
			appt.StylistID,
			appt.ServiceID,
			appt.CustomerName,
			appt.CustomerEmail,
			appt.CustomerPhone,
			appt.Date,
			appt.StartTime,
			appt.EndTime,
			appt.Status,
			appt.Notes,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetDaySchedule получает все блокирующие записи на дату.
// Отменённые записи не блокируют календарь и всегда исключаются;
// завершённые продолжают занимать свой интервал.
//
// Внутри транзакции выборка выполняется с FOR UPDATE — создание записи
// блокирует расписание мастера на день до конца проверки пересечений.
func (r *Repository) GetDaySchedule(ctx context.Context, filter domain.DayScheduleFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"salon_id": filter.SalonID}).
		Where(squirrel.Eq{"appointment_date": filter.Date.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		OrderBy("start_time ASC")

	if filter.StylistID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"stylist_id": *filter.StylistID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDaySchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDaySchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListBySalon получает записи салона с данными услуги и мастера.
// Сортировка: по дате, затем по времени начала.
func (r *Repository) ListBySalon(ctx context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"a.id",
		"a.salon_id",
		"a.stylist_id",
		"a.service_id",
		"a.customer_name",
		"a.customer_email",
		"a.customer_phone",
		"a.appointment_date",
		"a.start_time",
		"a.end_time",
		"a.status",
		"a.notes",
		"a.created_at",
		"s.name AS service_name",
		"s.price AS service_price",
		"st.name AS stylist_name",
	).
		From("appointments a").
		Join("services s ON a.service_id = s.id").
		Join("stylists st ON a.stylist_id = st.id").
		Where(squirrel.Eq{"a.salon_id": filter.SalonID}).
		OrderBy("a.appointment_date ASC", "a.start_time ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.appointment_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": string(*filter.Status)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	details := make([]*domain.AppointmentDetails, 0)
	for rows.Next() {
		var d domain.AppointmentDetails
		var createdAt sql.NullTime

		err := rows.Scan(
			&d.ID,
			&d.SalonID,
			&d.StylistID,
			&d.ServiceID,
			&d.CustomerName,
			&d.CustomerEmail,
			&d.CustomerPhone,
			&d.Date,
			&d.StartTime,
			&d.EndTime,
			&d.Status,
			&d.Notes,
			&createdAt,
			&d.ServiceName,
			&d.ServicePrice,
			&d.StylistName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBySalon - scan row: %v", ErrScanRow, err)
		}

		d.CreatedAt = createdAt.Time
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}

// UpdateStatus обновляет статус записи и, опционально, заметки.
// Проверка допустимости перехода выполняется на уровне сервиса.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, notes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id})

	if notes != nil {
		updateBuilder = updateBuilder.Set("notes", *notes)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

var appointmentColumns = []string{
	"id",
	"salon_id",
	"stylist_id",
	"service_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"appointment_date",
	"start_time",
	"end_time",
	"status",
	"notes",
	"created_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует одну строку в domain.Appointment
func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.SalonID,
		&appt.StylistID,
		&appt.ServiceID,
		&appt.CustomerName,
		&appt.CustomerEmail,
		&appt.CustomerPhone,
		&appt.Date,
		&appt.StartTime,
		&appt.EndTime,
		&appt.Status,
		&appt.Notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
