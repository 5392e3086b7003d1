package salon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	"github.com/schnittwerk/SW-SchedulingService/pkg/dbmetrics"
	"github.com/schnittwerk/SW-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с салоном и его рабочими часами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория салона
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает салон по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"address",
		"phone",
		"email",
		"opening_hours",
		"created_at",
	).
		From("salons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Salon
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.Address,
		&s.Phone,
		&s.Email,
		&s.OpeningHours,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan salon: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	return &s, nil
}

// GetWorkingHours получает рабочие часы салона на день недели (ISO: Пн=1..Вс=7).
// Отсутствие строки означает, что салон в этот день закрыт — возвращается
// ErrHoursNotConfigured.
func (r *Repository) GetWorkingHours(ctx context.Context, salonID string, isoWeekday int) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"day_of_week",
		"open_time",
		"close_time",
		"is_working_day",
		"created_at",
	).
		From("working_hours").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.Eq{"day_of_week": isoWeekday}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.WorkingHours
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&wh.SalonID,
		&wh.DayOfWeek,
		&wh.OpenTime,
		&wh.CloseTime,
		&wh.IsWorkingDay,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHoursNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - scan working hours: %v", ErrScanRow, err)
	}

	wh.CreatedAt = createdAt.Time
	return &wh, nil
}
