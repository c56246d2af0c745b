package update_settings

import (
	"github.com/m04kA/SMC-SalonConsole/internal/service/settings/models"
)

// UpdateSettingsRequest HTTP request model
type UpdateSettingsRequest struct {
	WeekStart               *string `json:"weekStart,omitempty"`
	Timezone                *string `json:"timezone,omitempty"`
	SameStaffFallback       *string `json:"sameStaffFallback,omitempty"`
	CancellationCutoffHours *int    `json:"cancellationCutoffHours,omitempty"`
	RescheduleCutoffHours   *int    `json:"rescheduleCutoffHours,omitempty"`
	NotificationEmail       *string `json:"notificationEmail,omitempty"`
	DigestRRule             *string `json:"digestRRule,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSettingsRequest) ToServiceRequest(userID int64) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		UserID:                  userID,
		WeekStart:               r.WeekStart,
		Timezone:                r.Timezone,
		SameStaffFallback:       r.SameStaffFallback,
		CancellationCutoffHours: r.CancellationCutoffHours,
		RescheduleCutoffHours:   r.RescheduleCutoffHours,
		NotificationEmail:       r.NotificationEmail,
		DigestRRule:             r.DigestRRule,
	}
}
