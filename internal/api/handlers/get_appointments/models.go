package get_appointments

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonConsole/internal/daterange"
	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	"github.com/m04kA/SMC-SalonConsole/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonConsole/internal/usecase/get_appointments_in_range"
)

// AppointmentsInRangeResponse HTTP response model
type AppointmentsInRangeResponse struct {
	Period       string                       `json:"period"`
	Timezone     string                       `json:"timezone"`
	Start        time.Time                    `json:"start"`
	End          time.Time                    `json:"end"`
	Appointments []models.AppointmentResponse `json:"appointments"`
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(companyID int64, query url.Values) (*get_appointments_in_range.Request, error) {
	req := &get_appointments_in_range.Request{
		CompanyID: companyID,
		Period:    daterange.ParseToken(query.Get("period")),
	}

	if v := query.Get("start"); v != "" {
		start, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid start: %w", err)
		}
		req.CustomStart = &start
	}

	if v := query.Get("end"); v != "" {
		end, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid end: %w", err)
		}
		req.CustomEnd = &end
	}

	if v := query.Get("locationId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid locationId: %w", err)
		}
		req.LocationID = &id
	}

	if v := query.Get("staffId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid staffId: %w", err)
		}
		req.StaffID = &id
	}

	if v := query.Get("status"); v != "" {
		status, ok := domain.ParseAppointmentStatus(v)
		if !ok {
			return nil, fmt.Errorf("invalid status %q", v)
		}
		req.Status = &status
	}

	if v := query.Get("includeInactive"); v != "" {
		includeInactive, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *get_appointments_in_range.Response) *AppointmentsInRangeResponse {
	return &AppointmentsInRangeResponse{
		Period:       string(resp.Period),
		Timezone:     resp.Timezone,
		Start:        resp.Range.Start,
		End:          resp.Range.End,
		Appointments: models.FromDomainAppointmentList(resp.Appointments).Appointments,
	}
}
