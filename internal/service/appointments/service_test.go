package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	apptRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/appointment"
	salonRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/salon"
	"github.com/schnittwerk/SW-SchedulingService/internal/service/appointments/models"
	"github.com/schnittwerk/SW-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeApptRepo struct {
	byID          map[string]*domain.Appointment
	details       []*domain.AppointmentDetails
	updatedStatus *domain.AppointmentStatus
	updatedNotes  *string
}

func (f *fakeApptRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeApptRepo) ListBySalon(_ context.Context, _ domain.SalonAppointmentsFilter) ([]*domain.AppointmentDetails, error) {
	return f.details, nil
}

func (f *fakeApptRepo) UpdateStatus(_ context.Context, _ string, status domain.AppointmentStatus, notes *string) error {
	f.updatedStatus = &status
	f.updatedNotes = notes
	return nil
}

type fakeSalonRepo struct {
	exists bool
}

func (f *fakeSalonRepo) GetByID(_ context.Context, id string) (*domain.Salon, error) {
	if !f.exists {
		return nil, salonRepo.ErrSalonNotFound
	}
	return &domain.Salon{ID: id, Name: "Schnittwerk"}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(appts *fakeApptRepo, salonExists bool) *Service {
	return NewService(appts, &fakeSalonRepo{exists: salonExists}, fakeTxManager{}, nopLogger{})
}

func TestUpdateStatus_ConfirmedToCompleted(t *testing.T) {
	appts := &fakeApptRepo{byID: map[string]*domain.Appointment{
		"appt-1": {ID: "appt-1", Status: domain.StatusConfirmed},
	}}
	svc := newService(appts, true)

	resp, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		AppointmentID: "appt-1",
		Status:        "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, appts.updatedStatus)
	assert.Equal(t, domain.StatusCompleted, *appts.updatedStatus)
}

func TestUpdateStatus_ConfirmedToCancelledWithNotes(t *testing.T) {
	appts := &fakeApptRepo{byID: map[string]*domain.Appointment{
		"appt-1": {ID: "appt-1", Status: domain.StatusConfirmed},
	}}
	svc := newService(appts, true)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		AppointmentID: "appt-1",
		Status:        "cancelled",
		Notes:         ptr.Ptr("customer called to cancel"),
	})
	require.NoError(t, err)
	require.NotNil(t, appts.updatedNotes)
	assert.Equal(t, "customer called to cancel", *appts.updatedNotes)
}

func TestUpdateStatus_TerminalStatesAreImmutable(t *testing.T) {
	for _, current := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusCancelled} {
		appts := &fakeApptRepo{byID: map[string]*domain.Appointment{
			"appt-1": {ID: "appt-1", Status: current},
		}}
		svc := newService(appts, true)

		for _, next := range []string{"confirmed", "completed", "cancelled"} {
			_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
				AppointmentID: "appt-1",
				Status:        next,
			})
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", current, next)
		}
		assert.Nil(t, appts.updatedStatus)
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := newService(&fakeApptRepo{}, true)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		AppointmentID: "appt-1",
		Status:        "pending",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newService(&fakeApptRepo{byID: map[string]*domain.Appointment{}}, true)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		AppointmentID: "missing",
		Status:        "completed",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListBySalon(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	appts := &fakeApptRepo{details: []*domain.AppointmentDetails{
		{
			Appointment: domain.Appointment{
				ID: "appt-1", SalonID: "salon-1", Status: domain.StatusConfirmed,
				Date: date, StartTime: "10:00", EndTime: "11:00",
			},
			ServiceName:  "Haircut",
			ServicePrice: 35,
			StylistName:  "Vanessa",
		},
	}}
	svc := newService(appts, true)

	resp, err := svc.ListBySalon(context.Background(), &models.ListSalonAppointmentsRequest{SalonID: "salon-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Haircut", resp.Appointments[0].ServiceName)
	assert.Equal(t, "2025-06-02", resp.Appointments[0].Date)
}

func TestListBySalon_SalonNotFound(t *testing.T) {
	svc := newService(&fakeApptRepo{}, false)

	_, err := svc.ListBySalon(context.Background(), &models.ListSalonAppointmentsRequest{SalonID: "missing"})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestListBySalon_InvalidStatusFilter(t *testing.T) {
	svc := newService(&fakeApptRepo{}, true)

	_, err := svc.ListBySalon(context.Background(), &models.ListSalonAppointmentsRequest{
		SalonID: "salon-1",
		Status:  ptr.Ptr("pending"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
