package models

import (
	"time"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек консоли
// Все поля опциональны - обновляются только переданные значения.
// Пустая строка в NotificationEmail и DigestRRule сбрасывает значение.
type UpdateSettingsRequest struct {
	UserID                  int64   `json:"userId"`
	WeekStart               *string `json:"weekStart,omitempty"` // "sunday", "monday", ...
	Timezone                *string `json:"timezone,omitempty"`  // IANA, например "Europe/Moscow"
	SameStaffFallback       *string `json:"sameStaffFallback,omitempty"`
	CancellationCutoffHours *int    `json:"cancellationCutoffHours,omitempty"`
	RescheduleCutoffHours   *int    `json:"rescheduleCutoffHours,omitempty"`
	NotificationEmail       *string `json:"notificationEmail,omitempty"`
	DigestRRule             *string `json:"digestRRule,omitempty"`
}

// Response модели

// SettingsResponse ответ с настройками консоли
type SettingsResponse struct {
	CompanyID               int64      `json:"companyId"`
	WeekStart               string     `json:"weekStart"`
	Timezone                string     `json:"timezone"`
	SameStaffFallback       string     `json:"sameStaffFallback"`
	CancellationCutoffHours int        `json:"cancellationCutoffHours"`
	RescheduleCutoffHours   int        `json:"rescheduleCutoffHours"`
	NotificationEmail       *string    `json:"notificationEmail,omitempty"`
	DigestRRule             *string    `json:"digestRRule,omitempty"`
	NextDigestAt            *time.Time `json:"nextDigestAt,omitempty"`
	IsDefault               bool       `json:"isDefault"` // Компания еще не сохраняла настройки
	UpdatedAt               *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.ConsoleSettings, nextDigestAt *time.Time) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{
		CompanyID:               s.CompanyID,
		WeekStart:               s.WeekStart.String(),
		Timezone:                s.Timezone,
		SameStaffFallback:       string(s.SameStaffFallback),
		CancellationCutoffHours: s.CancellationCutoffHours,
		RescheduleCutoffHours:   s.RescheduleCutoffHours,
		NotificationEmail:       s.NotificationEmail,
		DigestRRule:             s.DigestRRule,
		NextDigestAt:            nextDigestAt,
		IsDefault:               !s.IsPersisted(),
	}

	if s.IsPersisted() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
