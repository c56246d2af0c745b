package models

import (
	"time"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	"github.com/m04kA/SMC-SalonConsole/pkg/contact"
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
	ByClient           bool   `json:"byClient"` // Клиент сам попросил отменить запись (учитывается срок отмены)
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	CompanyID       int64     `json:"companyId"`
	LocationID      int64     `json:"locationId"`
	StaffID         int64     `json:"staffId"`
	ServiceID       int64     `json:"serviceId"`
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Active          bool      `json:"active"` // Не отменена и не no-show

	ClientName  string  `json:"clientName"`
	ClientPhone *string `json:"clientPhone,omitempty"` // В отображаемом формате
	ClientEmail *string `json:"clientEmail,omitempty"`

	FormAnswers []domain.FormAnswer `json:"formAnswers"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		CompanyID:          a.CompanyID,
		LocationID:         a.LocationID,
		StaffID:            a.StaffID,
		ServiceID:          a.ServiceID,
		StartsAt:           a.StartsAt,
		EndsAt:             a.EndsAt(),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		Active:             a.IsActive(),
		ClientName:         a.ClientName,
		ClientEmail:        a.ClientEmail,
		FormAnswers:        a.FormAnswers,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if resp.FormAnswers == nil {
		resp.FormAnswers = []domain.FormAnswer{}
	}

	if a.ClientPhone != nil {
		phone := contact.FormatPhone(*a.ClientPhone)
		resp.ClientPhone = &phone
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}
