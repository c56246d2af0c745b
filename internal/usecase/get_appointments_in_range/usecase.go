package get_appointments_in_range

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonConsole/internal/daterange"
	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// UseCase use case получения записей компании за именованный период
type UseCase struct {
	appointmentRepo AppointmentRepository
	settings        SettingsProvider
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, settings SettingsProvider, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute вычисляет интервал периода и возвращает записи, попадающие в него
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAppointmentsInRange: company=%d, period=%q", req.CompanyID, req.Period)

	period := req.Period
	if !period.IsKnown() {
		if period != "" {
			uc.logger.Warn("GetAppointmentsInRange: unknown period %q, using %q", period, domain.TokenToday)
		}
		period = domain.TokenToday
	}

	// 1. Валидация входных данных
	if err := validateRequest(req, period); err != nil {
		uc.logger.Warn("GetAppointmentsInRange: validation failed: %v", err)
		return nil, err
	}

	// 2. Настройки консоли: первый день недели и часовой пояс
	settings, err := uc.settings.Resolve(ctx, req.CompanyID)
	if err != nil {
		uc.logger.Error("GetAppointmentsInRange: failed to get settings for company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	loc := settings.Location()
	now := uc.timeProvider.Now().In(loc)

	// 3. Интервал периода
	r := daterange.NewResolver(settings.WeekStart).Resolve(period, now, customRange(req, loc))

	// Custom без дат дает вырожденный интервал: записей нет
	if r.IsZeroWidth() {
		uc.logger.Info("GetAppointmentsInRange: company=%d, period=%s, empty range at %s",
			req.CompanyID, period, r.Start.Format(time.RFC3339))
		return &Response{
			Period:       period,
			Range:        r,
			Timezone:     loc.String(),
			Appointments: make([]*domain.Appointment, 0),
		}, nil
	}

	// 4. Записи из хранилища, ограниченные интервалом
	filter := domain.AppointmentsFilter{
		CompanyID:       req.CompanyID,
		LocationID:      req.LocationID,
		StaffID:         req.StaffID,
		Start:           &r.Start,
		End:             &r.End,
		Status:          req.Status,
		IncludeInactive: req.IncludeInactive,
	}

	appointments, err := uc.appointmentRepo.GetByCompanyWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAppointmentsInRange: failed to get appointments for company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Повторная фильтрация по точному интервалу (точность БД и часовые пояса)
	appointments = daterange.FilterByRange(appointments, r)

	uc.logger.Info("GetAppointmentsInRange: company=%d, period=%s, range=[%s, %s], found=%d",
		req.CompanyID, period, r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339), len(appointments))

	return &Response{
		Period:       period,
		Range:        r,
		Timezone:     loc.String(),
		Appointments: appointments,
	}, nil
}
