package settings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	"github.com/m04kA/SMC-SalonConsole/internal/integrations/catalogservice"
)

// SettingsRepository интерфейс репозитория настроек консоли
type SettingsRepository interface {
	GetByCompany(ctx context.Context, companyID int64) (*domain.ConsoleSettings, error)
	Upsert(ctx context.Context, s *domain.ConsoleSettings) (*domain.ConsoleSettings, error)
}

// CatalogClient интерфейс клиента каталога
type CatalogClient interface {
	GetCompany(ctx context.Context, companyID int64) (*catalogservice.Company, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
