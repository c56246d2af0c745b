package commands

import (
	"context"
	"io"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// RosterSource источник состава сотрудников компании
type RosterSource interface {
	GetRoster(ctx context.Context, companyID int64) ([]*domain.StaffMember, error)
}

// RosterCache кеш состава сотрудников
type RosterCache interface {
	Invalidate(ctx context.Context, companyID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AppContext зависимости команд
type AppContext struct {
	Out    io.Writer
	Logger Logger

	// OpenRoster открывает источник сотрудников и возвращает функцию закрытия
	OpenRoster func() (RosterSource, func() error, error)

	// OpenRosterCache открывает кеш сотрудников и возвращает функцию закрытия
	OpenRosterCache func() (RosterCache, func() error, error)
}
