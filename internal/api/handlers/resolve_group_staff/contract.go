package resolve_group_staff

import (
	"context"

	"github.com/m04kA/SMC-SalonConsole/internal/usecase/resolve_group_staff"
)

type UseCase interface {
	Execute(ctx context.Context, req *resolve_group_staff.Request) (*resolve_group_staff.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
