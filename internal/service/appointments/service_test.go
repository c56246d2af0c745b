package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonConsole/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonConsole/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SalonConsole/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonConsole/pkg/ptr"
)

const (
	managerID  int64 = 100
	strangerID int64 = 200
)

var now = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

type fakeRepo struct {
	items         map[int64]*domain.Appointment
	cancelledInTx bool
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeRepo) Cancel(ctx context.Context, id int64, status domain.AppointmentStatus, reason string) error {
	f.cancelledInTx = ctx.Value(txKey{}) != nil
	a, ok := f.items[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	a.CancellationReason = ptr.Ptr(reason)
	a.CancelledAt = ptr.Ptr(now)
	return nil
}

type fakeSettings struct{}

func (fakeSettings) Resolve(ctx context.Context, companyID int64) (*domain.ConsoleSettings, error) {
	return domain.DefaultConsoleSettings(companyID), nil
}

type fakeCatalog struct{}

func (fakeCatalog) GetCompany(ctx context.Context, companyID int64) (*catalogservice.Company, error) {
	if companyID != 1 {
		return nil, catalogservice.ErrCompanyNotFound
	}
	return &catalogservice.Company{ID: 1, ManagerIDs: []int64{managerID}}, nil
}

type txKey struct{}

type fakeTx struct{}

func (fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(context.WithValue(ctx, txKey{}, true))
}

type fixedTime struct{}

func (fixedTime) Now() time.Time { return now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeRepo) {
	repo := &fakeRepo{items: map[int64]*domain.Appointment{
		// Через 48 часов
		1: {ID: 1, CompanyID: 1, StartsAt: now.Add(48 * time.Hour), DurationMinutes: 60, Status: domain.StatusConfirmed,
			ClientName: "Mia", ClientPhone: ptr.Ptr("555-123-4567")},
		// Через 3 часа
		2: {ID: 2, CompanyID: 1, StartsAt: now.Add(3 * time.Hour), Status: domain.StatusPending},
		3: {ID: 3, CompanyID: 1, StartsAt: now.Add(72 * time.Hour), Status: domain.StatusCompleted},
	}}
	svc := NewService(repo, fakeSettings{}, fakeCatalog{}, fakeTx{}, nopLogger{})
	svc.timeProvider = fixedTime{}
	return svc, repo
}

func TestGetByID(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetByID(context.Background(), 1, managerID)
	require.NoError(t, err)

	assert.Equal(t, "(555) 123-4567", *resp.ClientPhone)
	assert.Equal(t, now.Add(49*time.Hour), resp.EndsAt)
	assert.NotNil(t, resp.FormAnswers)
	assert.True(t, resp.Active)

	_, err = svc.GetByID(context.Background(), 1, strangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 42, managerID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_ByClientBeforeCutoff(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		UserID:             managerID,
		CancellationReason: "  feeling unwell ",
		ByClient:           true,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelledByClient), resp.Status)
	assert.False(t, resp.Active)
	assert.Equal(t, "feeling unwell", *repo.items[1].CancellationReason)
	require.NotNil(t, resp.CancelledAt)
	assert.True(t, repo.cancelledInTx)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	svc, repo := newService()
	repo.items[4] = &domain.Appointment{ID: 4, CompanyID: 1, StartsAt: now.Add(48 * time.Hour), Status: domain.StatusCancelledBySalon}

	_, err := svc.Cancel(context.Background(), 4, &models.CancelAppointmentRequest{UserID: managerID, ByClient: true})

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Contains(t, err.Error(), "already cancelled")
}

func TestCancel_ByClientAfterCutoff(t *testing.T) {
	svc, repo := newService()

	_, err := svc.Cancel(context.Background(), 2, &models.CancelAppointmentRequest{UserID: managerID, ByClient: true})

	assert.ErrorIs(t, err, ErrCutoffPassed)
	assert.Equal(t, domain.StatusPending, repo.items[2].Status)
}

func TestCancel_BySalonIgnoresCutoff(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Cancel(context.Background(), 2, &models.CancelAppointmentRequest{UserID: managerID})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelledBySalon), resp.Status)
}

func TestCancel_Errors(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Cancel(context.Background(), 3, &models.CancelAppointmentRequest{UserID: managerID})
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: strangerID})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: managerID})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	long := make([]rune, domain.MaxCancellationReasonLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err = svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: managerID, CancellationReason: string(long)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
