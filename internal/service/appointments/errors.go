package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("company not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером компании
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда статус записи не допускает отмену
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrCutoffPassed возвращается, когда до начала записи осталось меньше допустимого времени отмены
	ErrCutoffPassed = errors.New("cancellation cutoff has passed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
