package resolve_group_staff

import (
	"context"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	"github.com/m04kA/SMC-SalonConsole/internal/integrations/catalogservice"
)

// RosterProvider источник состава сотрудников (кеш или репозиторий)
type RosterProvider interface {
	GetRoster(ctx context.Context, companyID int64) ([]*domain.StaffMember, error)
}

// SettingsProvider возвращает настройки консоли (дефолтные, если компания их не сохраняла)
type SettingsProvider interface {
	Resolve(ctx context.Context, companyID int64) (*domain.ConsoleSettings, error)
}

// CatalogClient интерфейс клиента каталога
type CatalogClient interface {
	GetCompany(ctx context.Context, companyID int64) (*catalogservice.Company, error)
	GetService(ctx context.Context, companyID, serviceID int64) (*domain.Service, error)
}

// Metrics учет результатов подбора
type Metrics interface {
	ObserveStaffResolution(mode string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
