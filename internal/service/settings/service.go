package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	settingsRepo "github.com/m04kA/SMC-SalonConsole/internal/infra/storage/settings"
	catalogClient "github.com/m04kA/SMC-SalonConsole/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SalonConsole/internal/service/settings/models"
)

// Service сервис настроек консоли
type Service struct {
	settingsRepo  SettingsRepository
	catalogClient CatalogClient
	txManager     TransactionManager
	defaults      Defaults
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	catalogClient CatalogClient,
	txManager TransactionManager,
	defaults Defaults,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo:  settingsRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		defaults:      defaults,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Resolve возвращает настройки компании или значения по умолчанию, если компания их не сохраняла
func (s *Service) Resolve(ctx context.Context, companyID int64) (*domain.ConsoleSettings, error) {
	settings, err := s.settingsRepo.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return s.defaults.For(companyID), nil
		}
		s.logger.Error("Resolve: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	return settings, nil
}

// Get возвращает настройки компании для отображения
// Публичный метод - доступен всем
func (s *Service) Get(ctx context.Context, companyID int64) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for company=%d", companyID)

	settings, err := s.Resolve(ctx, companyID)
	if err != nil {
		return nil, err
	}

	next := nextDigestAt(settings.DigestRRule, s.timeProvider.Now(), settings.Location())
	return models.FromDomainSettings(settings, next), nil
}

// Update частично обновляет настройки компании
// Доступно только менеджерам компании
func (s *Service) Update(ctx context.Context, companyID int64, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for company=%d by user=%d", companyID, req.UserID)

	// 1. Проверяем права доступа (только менеджер компании)
	company, err := s.catalogClient.GetCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCompanyNotFound) {
			s.logger.Warn("Update: company id=%d not found", companyID)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("Update: failed to get company id=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	if !company.IsManager(req.UserID) {
		s.logger.Warn("Update: user=%d is not a manager of company=%d", req.UserID, companyID)
		return nil, ErrAccessDenied
	}

	now := s.timeProvider.Now()
	var saved *domain.ConsoleSettings

	// 2. Читаем текущие настройки под блокировкой, применяем изменения и сохраняем
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.Resolve(txCtx, companyID)
		if err != nil {
			return err
		}

		updated, err := applyUpdate(current, req)
		if err != nil {
			return err
		}

		if err := validateSettings(updated, now); err != nil {
			return err
		}

		saved, err = s.settingsRepo.Upsert(txCtx, updated)
		if err != nil {
			s.logger.Error("Update: repository error for company=%d: %v", companyID, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			s.logger.Warn("Update: validation failed for company=%d: %v", companyID, err)
		}
		return nil, err
	}

	s.logger.Info("Update: successfully updated settings id=%d for company=%d", saved.ID, companyID)

	next := nextDigestAt(saved.DigestRRule, now, saved.Location())
	return models.FromDomainSettings(saved, next), nil
}
