package get_appointments_in_range

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, period domain.FilterToken) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if (req.CustomStart == nil) != (req.CustomEnd == nil) {
		return fmt.Errorf("%w: start and end must be provided together", ErrInvalidInput)
	}

	if req.CustomStart != nil && period != domain.TokenCustom {
		return fmt.Errorf("%w: start and end are only allowed for period %q", ErrInvalidInput, domain.TokenCustom)
	}

	if req.CustomStart != nil && req.CustomEnd.Before(*req.CustomStart) {
		return fmt.Errorf("%w: end must not be before start", ErrInvalidInput)
	}

	return nil
}

// customRange строит интервал Custom из дат запроса в часовом поясе loc
// Возвращает nil, если даты не переданы
func customRange(req *Request, loc *time.Location) *domain.DateRange {
	if req.CustomStart == nil || req.CustomEnd == nil {
		return nil
	}

	sy, sm, sd := req.CustomStart.Date()
	ey, em, ed := req.CustomEnd.Date()

	start := time.Date(sy, sm, sd, 0, 0, 0, 0, loc)
	end := time.Date(ey, em, ed, 0, 0, 0, 0, loc).AddDate(0, 0, 1).Add(-time.Millisecond)

	return &domain.DateRange{Start: start, End: end}
}
