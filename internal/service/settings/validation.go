package settings

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SalonConsole/internal/daterange"
	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	"github.com/m04kA/SMC-SalonConsole/internal/service/settings/models"
	"github.com/m04kA/SMC-SalonConsole/pkg/contact"
)

var validate = validator.New()

// settingsRules ограничения на сохраняемые настройки
type settingsRules struct {
	WeekStart               int    `validate:"min=0,max=6"`
	Timezone                string `validate:"required,timezone"`
	SameStaffFallback       string `validate:"oneof=different_staff none"`
	CancellationCutoffHours int    `validate:"min=0,max=720"`
	RescheduleCutoffHours   int    `validate:"min=0,max=720"`
}

// applyUpdate применяет переданные поля запроса к копии настроек
func applyUpdate(current *domain.ConsoleSettings, req *models.UpdateSettingsRequest) (*domain.ConsoleSettings, error) {
	updated := *current

	if req.WeekStart != nil {
		day, ok := daterange.ParseWeekday(*req.WeekStart)
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekStart %q", ErrInvalidInput, *req.WeekStart)
		}
		updated.WeekStart = day
	}
	if req.Timezone != nil {
		updated.Timezone = strings.TrimSpace(*req.Timezone)
	}
	if req.SameStaffFallback != nil {
		updated.SameStaffFallback = domain.SameStaffFallback(*req.SameStaffFallback)
	}
	if req.CancellationCutoffHours != nil {
		updated.CancellationCutoffHours = *req.CancellationCutoffHours
	}
	if req.RescheduleCutoffHours != nil {
		updated.RescheduleCutoffHours = *req.RescheduleCutoffHours
	}
	if req.NotificationEmail != nil {
		updated.NotificationEmail = optionalString(*req.NotificationEmail)
	}
	if req.DigestRRule != nil {
		updated.DigestRRule = optionalString(*req.DigestRRule)
	}

	return &updated, nil
}

// validateSettings проверяет итоговые настройки перед сохранением
func validateSettings(s *domain.ConsoleSettings, now time.Time) error {
	rules := settingsRules{
		WeekStart:               int(s.WeekStart),
		Timezone:                s.Timezone,
		SameStaffFallback:       string(s.SameStaffFallback),
		CancellationCutoffHours: s.CancellationCutoffHours,
		RescheduleCutoffHours:   s.RescheduleCutoffHours,
	}
	if err := validate.Struct(rules); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if s.NotificationEmail != nil && !contact.IsValidEmail(*s.NotificationEmail) {
		return fmt.Errorf("%w: invalid notificationEmail", ErrInvalidInput)
	}

	if s.DigestRRule != nil {
		if _, err := parseDigestRule(*s.DigestRRule, now, s.Location()); err != nil {
			return fmt.Errorf("%w: invalid digestRRule: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
