package settings

import (
	"time"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// Defaults настройки для компаний, которые еще ничего не сохраняли
type Defaults struct {
	WeekStart               time.Weekday
	Timezone                string
	SameStaffFallback       domain.SameStaffFallback
	CancellationCutoffHours int
	RescheduleCutoffHours   int
}

// BuiltinDefaults значения по умолчанию без конфигурации
func BuiltinDefaults() Defaults {
	d := domain.DefaultConsoleSettings(0)
	return Defaults{
		WeekStart:               d.WeekStart,
		Timezone:                d.Timezone,
		SameStaffFallback:       d.SameStaffFallback,
		CancellationCutoffHours: d.CancellationCutoffHours,
		RescheduleCutoffHours:   d.RescheduleCutoffHours,
	}
}

// For строит несохраненные настройки компании
func (d Defaults) For(companyID int64) *domain.ConsoleSettings {
	s := domain.DefaultConsoleSettings(companyID)
	s.WeekStart = d.WeekStart
	if d.Timezone != "" {
		s.Timezone = d.Timezone
	}
	if d.SameStaffFallback.IsValid() {
		s.SameStaffFallback = d.SameStaffFallback
	}
	s.CancellationCutoffHours = d.CancellationCutoffHours
	s.RescheduleCutoffHours = d.RescheduleCutoffHours
	return s
}
