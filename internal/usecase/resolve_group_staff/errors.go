package resolve_group_staff

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("resolve_group_staff: company not found")

	// ErrLocationNotFound возвращается, когда точка не принадлежит компании
	ErrLocationNotFound = errors.New("resolve_group_staff: location not found")

	// ErrServiceNotFound возвращается, когда выбранная услуга не найдена
	ErrServiceNotFound = errors.New("resolve_group_staff: service not found")

	// ErrServiceNotAvailableAtLocation возвращается, когда услуга не оказывается на точке
	ErrServiceNotAvailableAtLocation = errors.New("resolve_group_staff: service is not available at this location")

	// ErrExtraNotFound возвращается, когда дополнительная опция не относится к услуге
	ErrExtraNotFound = errors.New("resolve_group_staff: extra not found for service")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_group_staff: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_group_staff: internal error")
)
