package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	salonRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/salon"
	"github.com/schnittwerk/SW-SchedulingService/pkg/ptr"
	"github.com/schnittwerk/SW-SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSalonRepo struct {
	salon *domain.Salon
	hours map[int]*domain.WorkingHours
}

func (f *fakeSalonRepo) GetByID(_ context.Context, id string) (*domain.Salon, error) {
	if f.salon == nil || f.salon.ID != id {
		return nil, salonRepo.ErrSalonNotFound
	}
	return f.salon, nil
}

func (f *fakeSalonRepo) GetWorkingHours(_ context.Context, _ string, isoWeekday int) (*domain.WorkingHours, error) {
	h, ok := f.hours[isoWeekday]
	if !ok {
		return nil, salonRepo.ErrHoursNotConfigured
	}
	return h, nil
}

type fakeCatalogRepo struct {
	stylists []*domain.Stylist
	services []*domain.Service
}

func (f *fakeCatalogRepo) ListActiveStylists(_ context.Context, _ string) ([]*domain.Stylist, error) {
	return f.stylists, nil
}

func (f *fakeCatalogRepo) ListActiveServices(_ context.Context, _ string) ([]*domain.Service, error) {
	return f.services, nil
}

type fakeApptRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeApptRepo) GetDaySchedule(_ context.Context, _ domain.DayScheduleFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

// Понедельник
var testDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func newFixture(appointments []*domain.Appointment) *UseCase {
	salons := &fakeSalonRepo{
		salon: &domain.Salon{ID: "salon-1", Name: "Schnittwerk"},
		hours: map[int]*domain.WorkingHours{
			1: {SalonID: "salon-1", DayOfWeek: 1, OpenTime: "09:00", CloseTime: "12:00", IsWorkingDay: true},
		},
	}
	catalog := &fakeCatalogRepo{
		stylists: []*domain.Stylist{
			{ID: "stylist-1", SalonID: "salon-1", Name: "Vanessa", IsActive: true},
			{ID: "stylist-2", SalonID: "salon-1", Name: "Sarah", IsActive: true},
		},
		services: []*domain.Service{
			{ID: "service-1", SalonID: "salon-1", Name: "Haircut", DurationMinutes: 60, IsActive: true},
			{ID: "service-2", SalonID: "salon-1", Name: "Styling", DurationMinutes: 30, IsActive: true},
		},
	}
	return NewUseCase(salons, catalog, &fakeApptRepo{appointments: appointments}, nopLogger{})
}

func TestExecute_OpenDayNoAppointments(t *testing.T) {
	uc := newFixture(nil)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: "salon-1", Date: testDate})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	require.NotNil(t, resp.WorkingHours)
	assert.Equal(t, types.TimeString("09:00"), resp.WorkingHours.Open)
	assert.Equal(t, types.TimeString("12:00"), resp.WorkingHours.Close)
	// 09:00..11:30 с шагом 30 минут
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, resp.AvailableSlots)
	assert.Len(t, resp.Stylists, 2)
	assert.Len(t, resp.Services, 2)
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := newFixture(nil)
	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: "salon-1", Date: sunday})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, "Salon is closed on this date", resp.Message)
	assert.Nil(t, resp.WorkingHours)
	assert.Empty(t, resp.AvailableSlots)
}

func TestExecute_SalonNotFound(t *testing.T) {
	uc := newFixture(nil)

	_, err := uc.Execute(context.Background(), &Request{SalonID: "missing", Date: testDate})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_SlotFreeWhileAnyStylistIsFree(t *testing.T) {
	// stylist-1 занят 09:00-10:00, stylist-2 свободен: слоты остаются
	uc := newFixture([]*domain.Appointment{
		{ID: "a1", StylistID: "stylist-1", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
	})

	resp, err := uc.Execute(context.Background(), &Request{SalonID: "salon-1", Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, resp.AvailableSlots)
}

func TestExecute_SlotDropsWhenAllStylistsBusy(t *testing.T) {
	uc := newFixture([]*domain.Appointment{
		{ID: "a1", StylistID: "stylist-1", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
		{ID: "a2", StylistID: "stylist-2", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
	})

	resp, err := uc.Execute(context.Background(), &Request{SalonID: "salon-1", Date: testDate})
	require.NoError(t, err)
	// 09:00 и 09:30 заняты у обоих (минимальная услуга 30 минут)
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, resp.AvailableSlots)
}

func TestExecute_CompletedAppointmentStillBlocks(t *testing.T) {
	uc := newFixture([]*domain.Appointment{
		{ID: "a1", StylistID: "stylist-1", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusCompleted},
		{ID: "a2", StylistID: "stylist-2", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
	})

	resp, err := uc.Execute(context.Background(), &Request{SalonID: "salon-1", Date: testDate})
	require.NoError(t, err)
	assert.NotContains(t, resp.AvailableSlots, types.TimeString("09:00"))
}

func TestExecute_CancelledAppointmentReleasesSlot(t *testing.T) {
	uc := newFixture([]*domain.Appointment{
		{ID: "a1", StylistID: "stylist-1", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusCancelled},
		{ID: "a2", StylistID: "stylist-2", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
	})

	resp, err := uc.Execute(context.Background(), &Request{SalonID: "salon-1", Date: testDate})
	require.NoError(t, err)
	assert.Contains(t, resp.AvailableSlots, types.TimeString("09:00"))
}

func TestExecute_ServiceDurationNarrowsSlots(t *testing.T) {
	// Под часовую услугу слот 10:30 у занятого с 11:00 мастера недоступен
	uc := newFixture([]*domain.Appointment{
		{ID: "a1", StylistID: "stylist-1", StartTime: "11:00", EndTime: "12:00", Status: domain.StatusConfirmed},
		{ID: "a2", StylistID: "stylist-2", StartTime: "09:00", EndTime: "12:00", Status: domain.StatusConfirmed},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:   "salon-1",
		Date:      testDate,
		ServiceID: ptr.Ptr("service-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, resp.AvailableSlots)
}

func TestExecute_StylistFilter(t *testing.T) {
	uc := newFixture([]*domain.Appointment{
		{ID: "a1", StylistID: "stylist-1", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:   "salon-1",
		Date:      testDate,
		StylistID: ptr.Ptr("stylist-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, resp.AvailableSlots)

	_, err = uc.Execute(context.Background(), &Request{
		SalonID:   "salon-1",
		Date:      testDate,
		StylistID: ptr.Ptr("missing"),
	})
	assert.ErrorIs(t, err, ErrStylistNotFound)
}

func TestExecute_UnknownServiceFilter(t *testing.T) {
	uc := newFixture(nil)

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:   "salon-1",
		Date:      testDate,
		ServiceID: ptr.Ptr("missing"),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_BackToBackAppointmentsAdmissible(t *testing.T) {
	// Записи встык не пересекаются: слот, начинающийся ровно в конец
	// существующей записи, доступен
	uc := newFixture([]*domain.Appointment{
		{ID: "a1", StylistID: "stylist-1", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:   "salon-1",
		Date:      testDate,
		StylistID: ptr.Ptr("stylist-1"),
	})
	require.NoError(t, err)
	assert.Contains(t, resp.AvailableSlots, types.TimeString("10:00"))
	assert.NotContains(t, resp.AvailableSlots, types.TimeString("09:30"))
}
