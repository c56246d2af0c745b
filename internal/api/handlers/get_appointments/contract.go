package get_appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonConsole/internal/usecase/get_appointments_in_range"
)

type UseCase interface {
	Execute(ctx context.Context, req *get_appointments_in_range.Request) (*get_appointments_in_range.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
