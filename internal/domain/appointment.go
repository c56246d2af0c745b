package domain

import "time"

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending           AppointmentStatus = "pending"
	StatusConfirmed         AppointmentStatus = "confirmed"
	StatusInProgress        AppointmentStatus = "in_progress"
	StatusCompleted         AppointmentStatus = "completed"
	StatusCancelledByClient AppointmentStatus = "cancelled_by_client"
	StatusCancelledBySalon  AppointmentStatus = "cancelled_by_salon"
	StatusNoShow            AppointmentStatus = "no_show"
)

// Appointment represents a booked visit at a salon location
type Appointment struct {
	ID              int64
	CompanyID       int64
	LocationID      int64
	StaffID         int64
	ServiceID       int64
	StartsAt        time.Time
	DurationMinutes int
	Status          AppointmentStatus

	// Client contact, denormalized for the console
	ClientName  string
	ClientPhone *string
	ClientEmail *string

	FormAnswers []FormAnswer

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Timestamp returns the instant used for date-range filtering
func (a *Appointment) Timestamp() time.Time {
	return a.StartsAt
}

// EndsAt returns the end of the appointment
func (a *Appointment) EndsAt() time.Time {
	return a.StartsAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// IsActive returns true if the appointment is in an active state
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByClient &&
		a.Status != StatusCancelledBySalon &&
		a.Status != StatusNoShow
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByClient || a.Status == StatusCancelledBySalon
}

// CanBeCancelled returns true if the status allows cancellation
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsBeforeCutoff returns true if at least cutoffHours remain before the start.
// A non-positive cutoff never blocks.
func (a *Appointment) IsBeforeCutoff(now time.Time, cutoffHours int) bool {
	if cutoffHours <= 0 {
		return true
	}
	return a.StartsAt.Sub(now) >= time.Duration(cutoffHours)*time.Hour
}

// CanBeCancelledAt combines the status check with the cancellation cutoff
func (a *Appointment) CanBeCancelledAt(now time.Time, cutoffHours int) bool {
	return a.CanBeCancelled() && a.IsBeforeCutoff(now, cutoffHours)
}

// AppointmentsFilter filter for listing company appointments
type AppointmentsFilter struct {
	CompanyID       int64              // Required
	LocationID      *int64             // nil - all locations
	StaffID         *int64             // nil - all staff
	Start           *time.Time         // Inclusive lower bound on StartsAt
	End             *time.Time         // Inclusive upper bound on StartsAt
	Status          *AppointmentStatus // Optional status filter
	IncludeInactive bool               // Include cancelled and no-show appointments
}

// ParseAppointmentStatus validates a status label
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	status := AppointmentStatus(s)
	for _, valid := range AllStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}
