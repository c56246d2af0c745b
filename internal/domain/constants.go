package domain

// Default console settings
const (
	DefaultTimezone                = "UTC"
	DefaultCancellationCutoffHours = 24
	DefaultRescheduleCutoffHours   = 24
)

// Business validation constants
const (
	MaxCutoffHours              = 720 // 30 days
	MaxCancellationReasonLength = 500
	MaxGroupMembers             = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses every known appointment status
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
}

// InactiveStatuses statuses excluded from active listings
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
}
