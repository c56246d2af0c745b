package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_CanBeCancelledAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		status   AppointmentStatus
		startsAt time.Time
		cutoff   int
		want     bool
	}{
		{name: "confirmed well before cutoff", status: StatusConfirmed, startsAt: now.Add(48 * time.Hour), cutoff: 24, want: true},
		{name: "exactly at cutoff", status: StatusPending, startsAt: now.Add(24 * time.Hour), cutoff: 24, want: true},
		{name: "inside cutoff window", status: StatusConfirmed, startsAt: now.Add(23 * time.Hour), cutoff: 24, want: false},
		{name: "zero cutoff never blocks", status: StatusConfirmed, startsAt: now.Add(time.Minute), cutoff: 0, want: true},
		{name: "completed cannot be cancelled", status: StatusCompleted, startsAt: now.Add(72 * time.Hour), cutoff: 24, want: false},
		{name: "already cancelled", status: StatusCancelledByClient, startsAt: now.Add(72 * time.Hour), cutoff: 24, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.status, StartsAt: tt.startsAt}
			assert.Equal(t, tt.want, a.CanBeCancelledAt(now, tt.cutoff))
		})
	}
}

func TestAppointment_IsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusInProgress}).IsActive())
	assert.False(t, (&Appointment{Status: StatusNoShow}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelledBySalon}).IsActive())
}

func TestParseAppointmentStatus(t *testing.T) {
	status, ok := ParseAppointmentStatus("cancelled_by_client")
	assert.True(t, ok)
	assert.Equal(t, StatusCancelledByClient, status)

	_, ok = ParseAppointmentStatus("archived")
	assert.False(t, ok)
}

func TestDateRange_Contains(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	r := DateRange{Start: start, End: start.Add(24*time.Hour - time.Millisecond)}

	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(r.End))
	assert.False(t, r.Contains(start.Add(-time.Nanosecond)))
	assert.False(t, r.Contains(start.Add(24*time.Hour)))
	assert.False(t, r.IsZeroWidth())
	assert.True(t, DateRange{Start: start, End: start}.IsZeroWidth())
}

func TestConsoleSettings_Location(t *testing.T) {
	s := DefaultConsoleSettings(1)
	assert.Equal(t, time.UTC, s.Location())
	assert.Equal(t, time.Sunday, s.WeekStart)
	assert.Equal(t, FallbackDifferentStaff, s.SameStaffFallback)

	s.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, s.Location())
}
