package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	"github.com/schnittwerk/SW-SchedulingService/pkg/dbmetrics"
	"github.com/schnittwerk/SW-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с каталогом мастеров и услуг
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var stylistColumns = []string{
	"id",
	"salon_id",
	"name",
	"email",
	"phone",
	"specialties",
	"is_active",
	"created_at",
}

var serviceColumns = []string{
	"id",
	"salon_id",
	"name",
	"description",
	"duration",
	"price",
	"category",
	"is_active",
	"created_at",
}

// GetStylist получает мастера по ID
func (r *Repository) GetStylist(ctx context.Context, id string) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stylistColumns...).
		From("stylists").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStylist - build select query: %v", ErrBuildQuery, err)
	}

	st, err := scanStylist(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStylist - scan stylist: %v", ErrScanRow, err)
	}

	return st, nil
}

// ListActiveStylists получает всех активных мастеров салона
func (r *Repository) ListActiveStylists(ctx context.Context, salonID string) ([]*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stylistColumns...).
		From("stylists").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveStylists - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveStylists - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stylists := make([]*domain.Stylist, 0)
	for rows.Next() {
		st, err := scanStylist(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveStylists - scan row: %v", ErrScanRow, err)
		}
		stylists = append(stylists, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveStylists - rows error: %v", ErrScanRow, err)
	}

	return stylists, nil
}

// CreateStylist добавляет нового мастера в салон
func (r *Repository) CreateStylist(ctx context.Context, st *domain.Stylist) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("stylists").
		Columns("id", "salon_id", "name", "email", "phone", "specialties", "is_active").
		Values(st.ID, st.SalonID, st.Name, st.Email, st.Phone, st.Specialties, st.IsActive).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateStylist - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateStylist - execute insert: %v", ErrExecQuery, err)
	}

	st.CreatedAt = createdAt.Time
	return st, nil
}

// GetService получает услугу по ID
func (r *Repository) GetService(ctx context.Context, id string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// ListActiveServices получает все активные услуги салона
func (r *Repository) ListActiveServices(ctx context.Context, salonID string) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("category ASC", "name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// CreateService добавляет новую услугу в салон
func (r *Repository) CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("id", "salon_id", "name", "description", "duration", "price", "category", "is_active").
		Values(svc.ID, svc.SalonID, svc.Name, svc.Description, svc.DurationMinutes, svc.Price, svc.Category, svc.IsActive).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	svc.CreatedAt = createdAt.Time
	return svc, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStylist(row rowScanner) (*domain.Stylist, error) {
	var st domain.Stylist
	var createdAt sql.NullTime

	err := row.Scan(
		&st.ID,
		&st.SalonID,
		&st.Name,
		&st.Email,
		&st.Phone,
		&st.Specialties,
		&st.IsActive,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	st.CreatedAt = createdAt.Time
	return &st, nil
}

func scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	var createdAt sql.NullTime

	err := row.Scan(
		&svc.ID,
		&svc.SalonID,
		&svc.Name,
		&svc.Description,
		&svc.DurationMinutes,
		&svc.Price,
		&svc.Category,
		&svc.IsActive,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	svc.CreatedAt = createdAt.Time
	return &svc, nil
}
