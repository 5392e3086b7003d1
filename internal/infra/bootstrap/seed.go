package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/schnittwerk/SW-SchedulingService/pkg/dbmetrics"
	"github.com/schnittwerk/SW-SchedulingService/pkg/psqlbuilder"
)

// DefaultSalonID идентификатор салона по умолчанию
const DefaultSalonID = "default-salon"

type seedStylist struct {
	name        string
	email       string
	phone       string
	specialties string
}

type seedService struct {
	name        string
	description string
	duration    int
	price       float64
	category    string
}

var defaultWorkingHours = []struct {
	day   int // ISO: Пн=1..Вс=7
	open  string
	close string
}{
	{1, "09:00", "18:00"},
	{2, "09:00", "18:00"},
	{3, "09:00", "18:00"},
	{4, "09:00", "18:00"},
	{5, "09:00", "18:00"},
	{6, "09:00", "16:00"},
	// Воскресенье (7) отсутствует — салон закрыт
}

var defaultStylists = []seedStylist{
	{
		name:        "Vanessa Müller",
		email:       "vanessa@schnittwerk-your-style.de",
		phone:       "+49 123 456789",
		specialties: "Haarschnitte, Färben, Styling",
	},
	{
		name:        "Sarah Schmidt",
		email:       "sarah@schnittwerk-your-style.de",
		phone:       "+49 123 456790",
		specialties: "Haarschnitte, Extensions, Hochsteckfrisuren",
	},
}

var defaultServices = []seedService{
	{"Haarschnitt Damen", "Professioneller Haarschnitt für Damen inkl. Waschen und Föhnen", 60, 45.00, "Haarschnitt"},
	{"Haarschnitt Herren", "Professioneller Haarschnitt für Herren inkl. Waschen und Styling", 45, 35.00, "Haarschnitt"},
	{"Haarfärben", "Professionelle Haarfarbe inkl. Waschen und Föhnen", 120, 85.00, "Färben"},
	{"Strähnen", "Professionelle Strähnen inkl. Waschen und Föhnen", 150, 95.00, "Färben"},
	{"Hochsteckfrisur", "Elegante Hochsteckfrisur für besondere Anlässe", 90, 75.00, "Styling"},
}

// Seed загружает данные салона по умолчанию, если их ещё нет.
// Повторный запуск ничего не меняет.
func Seed(ctx context.Context, db dbmetrics.DBExecutor) error {
	exists, err := salonExists(ctx, db, DefaultSalonID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := seedSalon(ctx, db); err != nil {
		return err
	}
	if err := seedWorkingHours(ctx, db); err != nil {
		return err
	}
	if err := seedStylists(ctx, db); err != nil {
		return err
	}
	if err := seedServices(ctx, db); err != nil {
		return err
	}

	return nil
}

func salonExists(ctx context.Context, db dbmetrics.DBExecutor, id string) (bool, error) {
	query, args, err := psqlbuilder.Select("id").
		From("salons").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("bootstrap: seed - build salon check: %w", err)
	}

	var found string
	err = db.QueryRowContext(ctx, query, args...).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("bootstrap: seed - check salon: %w", err)
	}
	return true, nil
}

func seedSalon(ctx context.Context, db dbmetrics.DBExecutor) error {
	query, args, err := psqlbuilder.Insert("salons").
		Columns("id", "name", "address", "phone", "email", "opening_hours").
		Values(
			DefaultSalonID,
			"Schnittwerk Your Style",
			"Musterstraße 123, 12345 Musterstadt",
			"+49 123 456789",
			"info@schnittwerk-your-style.de",
			`{"monday": {"open": "09:00", "close": "18:00"}, "tuesday": {"open": "09:00", "close": "18:00"}, "wednesday": {"open": "09:00", "close": "18:00"}, "thursday": {"open": "09:00", "close": "18:00"}, "friday": {"open": "09:00", "close": "18:00"}, "saturday": {"open": "09:00", "close": "16:00"}}`,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("bootstrap: seed - build salon insert: %w", err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("bootstrap: seed - insert salon: %w", err)
	}
	return nil
}

func seedWorkingHours(ctx context.Context, db dbmetrics.DBExecutor) error {
	for _, wh := range defaultWorkingHours {
		query, args, err := psqlbuilder.Insert("working_hours").
			Columns("id", "salon_id", "day_of_week", "open_time", "close_time", "is_working_day").
			Values(uuid.NewString(), DefaultSalonID, wh.day, wh.open, wh.close, true).
			ToSql()
		if err != nil {
			return fmt.Errorf("bootstrap: seed - build working hours insert: %w", err)
		}

		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("bootstrap: seed - insert working hours for day %d: %w", wh.day, err)
		}
	}
	return nil
}

func seedStylists(ctx context.Context, db dbmetrics.DBExecutor) error {
	for _, st := range defaultStylists {
		query, args, err := psqlbuilder.Insert("stylists").
			Columns("id", "salon_id", "name", "email", "phone", "specialties", "is_active").
			Values(uuid.NewString(), DefaultSalonID, st.name, st.email, st.phone, st.specialties, true).
			ToSql()
		if err != nil {
			return fmt.Errorf("bootstrap: seed - build stylist insert: %w", err)
		}

		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("bootstrap: seed - insert stylist %s: %w", st.name, err)
		}
	}
	return nil
}

func seedServices(ctx context.Context, db dbmetrics.DBExecutor) error {
	for _, svc := range defaultServices {
		query, args, err := psqlbuilder.Insert("services").
			Columns("id", "salon_id", "name", "description", "duration", "price", "category", "is_active").
			Values(uuid.NewString(), DefaultSalonID, svc.name, svc.description, svc.duration, svc.price, svc.category, true).
			ToSql()
		if err != nil {
			return fmt.Errorf("bootstrap: seed - build service insert: %w", err)
		}

		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("bootstrap: seed - insert service %s: %w", svc.name, err)
		}
	}
	return nil
}
