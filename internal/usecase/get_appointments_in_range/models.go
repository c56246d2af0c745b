package get_appointments_in_range

import (
	"time"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// Request модель запроса записей за период
type Request struct {
	CompanyID       int64
	Period          domain.FilterToken        // Пустой - "Today"
	CustomStart     *time.Time                // Первый день периода Custom (учитывается только дата)
	CustomEnd       *time.Time                // Последний день периода Custom включительно
	LocationID      *int64
	StaffID         *int64
	Status          *domain.AppointmentStatus
	IncludeInactive bool
}

// Response модель ответа
type Response struct {
	Period       domain.FilterToken
	Range        domain.DateRange // В часовом поясе компании
	Timezone     string
	Appointments []*domain.Appointment // По возрастанию времени начала
}
