package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	apptRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/appointment"
	catalogRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/catalog"
	salonRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/salon"
	"github.com/schnittwerk/SW-SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeApptRepo struct {
	schedule  []*domain.Appointment
	createErr error
	created   *domain.Appointment
}

func (f *fakeApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	appt.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f.created = appt
	return appt, nil
}

func (f *fakeApptRepo) GetDaySchedule(_ context.Context, _ domain.DayScheduleFilter) ([]*domain.Appointment, error) {
	return f.schedule, nil
}

type fakeSalonRepo struct {
	hours map[int]*domain.WorkingHours
}

func (f *fakeSalonRepo) GetWorkingHours(_ context.Context, _ string, isoWeekday int) (*domain.WorkingHours, error) {
	h, ok := f.hours[isoWeekday]
	if !ok {
		return nil, salonRepo.ErrHoursNotConfigured
	}
	return h, nil
}

type fakeCatalogRepo struct {
	stylists map[string]*domain.Stylist
	services map[string]*domain.Service
}

func (f *fakeCatalogRepo) GetStylist(_ context.Context, id string) (*domain.Stylist, error) {
	st, ok := f.stylists[id]
	if !ok {
		return nil, catalogRepo.ErrStylistNotFound
	}
	return st, nil
}

func (f *fakeCatalogRepo) GetService(_ context.Context, id string) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return svc, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixture struct {
	uc      *UseCase
	appts   *fakeApptRepo
	txMgr   *fakeTxManager
	catalog *fakeCatalogRepo
}

// Понедельник
var testDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	appts := &fakeApptRepo{}
	txMgr := &fakeTxManager{}
	catalog := &fakeCatalogRepo{
		stylists: map[string]*domain.Stylist{
			"stylist-1": {ID: "stylist-1", SalonID: "salon-1", Name: "Vanessa", IsActive: true},
			"inactive":  {ID: "inactive", SalonID: "salon-1", Name: "Gone", IsActive: false},
		},
		services: map[string]*domain.Service{
			"service-1": {ID: "service-1", SalonID: "salon-1", Name: "Haircut", DurationMinutes: 60, Price: 35, IsActive: true},
		},
	}
	salons := &fakeSalonRepo{
		hours: map[int]*domain.WorkingHours{
			1: {SalonID: "salon-1", DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00", IsWorkingDay: true},
		},
	}

	uc := NewUseCase(appts, salons, catalog, txMgr, nopLogger{})
	uc.idGenerator = &staticIDGenerator{id: "appt-1"}

	return &fixture{uc: uc, appts: appts, txMgr: txMgr, catalog: catalog}
}

type staticIDGenerator struct{ id string }

func (g *staticIDGenerator) NewID() string { return g.id }

func validRequest() *Request {
	return &Request{
		SalonID:       "salon-1",
		StylistID:     "stylist-1",
		ServiceID:     "service-1",
		CustomerName:  "Anna Beispiel",
		CustomerEmail: "anna@example.com",
		Date:          testDate,
		StartTime:     "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	// Конец = начало + длительность услуги
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, 35.0, resp.ServicePrice)

	// Проверка и вставка выполнены внутри транзакции
	assert.Equal(t, 1, f.txMgr.calls)
	require.NotNil(t, f.appts.created)
	assert.Equal(t, domain.StatusConfirmed, f.appts.created.Status)
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture()
	f.appts.schedule = []*domain.Appointment{
		{ID: "other", StylistID: "stylist-1", StartTime: "10:30", EndTime: "11:30", Status: domain.StatusConfirmed},
	}

	// [10:00, 11:00) пересекается с [10:30, 11:30)
	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, f.appts.created)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	f := newFixture()
	f.appts.schedule = []*domain.Appointment{
		{ID: "other", StylistID: "stylist-1", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
	}

	// Запись встык: существующая кончается ровно в 10:00
	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.appts.schedule = []*domain.Appointment{
		{ID: "other", StylistID: "stylist-1", StartTime: "10:00", EndTime: "11:00", Status: domain.StatusCancelled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CompletedAppointmentBlocks(t *testing.T) {
	f := newFixture()
	f.appts.schedule = []*domain.Appointment{
		{ID: "other", StylistID: "stylist-1", StartTime: "10:00", EndTime: "11:00", Status: domain.StatusCompleted},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_UniqueConstraintMapsToConflict(t *testing.T) {
	// Гонка, пойманная уникальным индексом, неотличима для клиента от
	// обычного конфликта слота
	f := newFixture()
	f.appts.createErr = apptRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_SalonClosed(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Date = time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC) // воскресенье

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_OffGridStartTime(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartTime = "10:15"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_StartOutsideWorkingWindow(t *testing.T) {
	f := newFixture()

	for _, start := range []types.TimeString{"08:30", "18:00", "18:30"} {
		req := validRequest()
		req.StartTime = start
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot, "start=%s", start)
	}

	// Последний слот сетки бронируется, даже если конец за закрытием
	req := validRequest()
	req.StartTime = "17:30"
	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.ServiceID = "missing"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveStylist(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StylistID = "inactive"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStylistNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture()

	mutations := map[string]func(*Request){
		"missing name":     func(r *Request) { r.CustomerName = "" },
		"missing email":    func(r *Request) { r.CustomerEmail = "" },
		"malformed email":  func(r *Request) { r.CustomerEmail = "not-an-email" },
		"missing stylist":  func(r *Request) { r.StylistID = "" },
		"missing service":  func(r *Request) { r.ServiceID = "" },
		"zero date":        func(r *Request) { r.Date = time.Time{} },
		"empty start time": func(r *Request) { r.StartTime = "" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
