package domain

import "time"

// SameStaffFallback policy applied when a group asked for one employee but nobody can serve every selected service
type SameStaffFallback string

const (
	FallbackDifferentStaff SameStaffFallback = "different_staff" // Switch the group to individually chosen staff
	FallbackNone           SameStaffFallback = "none"            // Leave the group unresolved
)

// IsValid returns true for a known policy
func (f SameStaffFallback) IsValid() bool {
	return f == FallbackDifferentStaff || f == FallbackNone
}

// ConsoleSettings per-company settings of the management console.
// Loaded once at the boundary and passed explicitly into the logic.
type ConsoleSettings struct {
	ID                      int64
	CompanyID               int64
	WeekStart               time.Weekday
	Timezone                string // IANA name
	SameStaffFallback       SameStaffFallback
	CancellationCutoffHours int
	RescheduleCutoffHours   int
	NotificationEmail       *string
	DigestRRule             *string // Schedule of the daily digest e-mail (RFC 5545 RRULE)
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DefaultConsoleSettings settings used when a company has not saved any
func DefaultConsoleSettings(companyID int64) *ConsoleSettings {
	return &ConsoleSettings{
		CompanyID:               companyID,
		WeekStart:               time.Sunday,
		Timezone:                DefaultTimezone,
		SameStaffFallback:       FallbackDifferentStaff,
		CancellationCutoffHours: DefaultCancellationCutoffHours,
		RescheduleCutoffHours:   DefaultRescheduleCutoffHours,
	}
}

// IsPersisted returns true if the settings were loaded from storage
func (s *ConsoleSettings) IsPersisted() bool {
	return s.ID > 0
}

// Location returns the company time zone, falling back to UTC for unknown names
func (s *ConsoleSettings) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
