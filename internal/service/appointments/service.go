package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonConsole/internal/infra/storage/appointment"
	catalogClient "github.com/m04kA/SMC-SalonConsole/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SalonConsole/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	settings        SettingsProvider
	catalogClient   CatalogClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	settings SettingsProvider,
	catalogClient CatalogClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		settings:        settings,
		catalogClient:   catalogClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Доступно только менеджерам компании, которой принадлежит запись
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkManagerAccess(ctx, appointment.CompanyID, userID); err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// Cancel отменяет запись
// Менеджер отменяет от имени салона (cancelled_by_salon) или от имени клиента (cancelled_by_client).
// Отмена от имени клиента невозможна позже срока отмены из настроек компании.
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d, by_client=%t", appointmentID, req.UserID, req.ByClient)

	reason := strings.TrimSpace(req.CancellationReason)
	if utf8.RuneCountInString(reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is longer than %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var result *domain.Appointment

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appointment, err := s.appointmentRepo.GetByID(txCtx, appointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
				return ErrAppointmentNotFound
			}
			s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if err := s.checkManagerAccess(txCtx, appointment.CompanyID, req.UserID); err != nil {
			return err
		}

		if !appointment.CanBeCancelled() {
			if appointment.IsCancelled() {
				s.logger.Warn("Cancel: appointment id=%d is already cancelled, status=%s", appointmentID, appointment.Status)
				return fmt.Errorf("%w: appointment is already cancelled", ErrCannotCancel)
			}
			s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appointment.Status)
			return ErrCannotCancel
		}

		cancelStatus := domain.StatusCancelledBySalon
		if req.ByClient {
			settings, err := s.settings.Resolve(txCtx, appointment.CompanyID)
			if err != nil {
				s.logger.Error("Cancel: failed to get settings for company id=%d: %v", appointment.CompanyID, err)
				return fmt.Errorf("%w: Cancel - settings error: %v", ErrInternal, err)
			}

			now := s.timeProvider.Now()
			if !appointment.CanBeCancelledAt(now, settings.CancellationCutoffHours) {
				s.logger.Warn("Cancel: cutoff of %dh passed for appointment id=%d starting at %s",
					settings.CancellationCutoffHours, appointmentID, appointment.StartsAt)
				return fmt.Errorf("%w: must cancel at least %d hours in advance", ErrCutoffPassed, settings.CancellationCutoffHours)
			}
			cancelStatus = domain.StatusCancelledByClient
		}

		if err := s.appointmentRepo.Cancel(txCtx, appointmentID, cancelStatus, reason); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
				return ErrAppointmentNotFound
			}
			s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		updated, err := s.appointmentRepo.GetByID(txCtx, appointmentID)
		if err != nil {
			s.logger.Error("Cancel: failed to reload appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: Cancel - reload error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d with status=%s", appointmentID, result.Status)
	return models.FromDomainAppointment(result), nil
}

// checkManagerAccess проверяет, что пользователь является менеджером компании
func (s *Service) checkManagerAccess(ctx context.Context, companyID int64, userID int64) error {
	company, err := s.catalogClient.GetCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCompanyNotFound) {
			s.logger.Warn("checkManagerAccess: company id=%d not found", companyID)
			return ErrCompanyNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get company id=%d: %v", companyID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get company: %v", ErrInternal, err)
	}

	if !company.IsManager(userID) {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of company=%d", userID, companyID)
		return ErrAccessDenied
	}

	return nil
}
