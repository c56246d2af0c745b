package resolve_group_staff

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonConsole/internal/usecase/resolve_group_staff"
)

// ResolveGroupStaffRequest HTTP request model
type ResolveGroupStaffRequest struct {
	PreferSameStaff bool            `json:"preferSameStaff"`
	Members         []MemberRequest `json:"members"`
}

// MemberRequest участник группы
type MemberRequest struct {
	ID        string  `json:"id,omitempty"` // UUID, пустой для нового участника
	Name      string  `json:"name"`
	ServiceID *int64  `json:"serviceId,omitempty"`
	StaffID   *int64  `json:"staffId,omitempty"`
	ExtraIDs  []int64 `json:"extraIds,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *ResolveGroupStaffRequest) ToUseCaseRequest(companyID, locationID int64) (*resolve_group_staff.Request, error) {
	members := make([]resolve_group_staff.MemberInput, 0, len(r.Members))
	for i, m := range r.Members {
		id := uuid.Nil
		if m.ID != "" {
			parsed, err := uuid.Parse(m.ID)
			if err != nil {
				return nil, fmt.Errorf("members[%d].id: %w", i, err)
			}
			id = parsed
		}

		members = append(members, resolve_group_staff.MemberInput{
			ID:        id,
			Name:      m.Name,
			ServiceID: m.ServiceID,
			StaffID:   m.StaffID,
			ExtraIDs:  m.ExtraIDs,
		})
	}

	return &resolve_group_staff.Request{
		CompanyID:       companyID,
		LocationID:      locationID,
		PreferSameStaff: r.PreferSameStaff,
		Members:         members,
	}, nil
}

// StaffOptionResponse сотрудник, доступный для выбора
type StaffOptionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MemberResponse итог подбора для участника
type MemberResponse struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	ServiceID       *int64                `json:"serviceId,omitempty"`
	ServiceName     *string               `json:"serviceName,omitempty"`
	StaffID         *int64                `json:"staffId,omitempty"`
	StaffValid      bool                  `json:"staffValid"`
	AvailableStaff  []StaffOptionResponse `json:"availableStaff"`
	Price           float64               `json:"price"`
	DurationMinutes int                   `json:"durationMinutes"`
}

// ResolveGroupStaffResponse HTTP response model
type ResolveGroupStaffResponse struct {
	StaffMode       string                `json:"staffMode"`
	CanUseSameStaff bool                  `json:"canUseSameStaff"`
	CommonStaff     []StaffOptionResponse `json:"commonStaff"`
	Members         []MemberResponse      `json:"members"`
	Total           float64               `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *resolve_group_staff.Response) *ResolveGroupStaffResponse {
	result := &ResolveGroupStaffResponse{
		StaffMode:       string(resp.Mode),
		CanUseSameStaff: resp.CanUseSameStaff,
		CommonStaff:     toStaffOptions(resp.CommonStaff),
		Members:         make([]MemberResponse, 0, len(resp.Members)),
		Total:           resp.Total,
	}

	for _, m := range resp.Members {
		result.Members = append(result.Members, MemberResponse{
			ID:              m.ID.String(),
			Name:            m.Name,
			ServiceID:       m.ServiceID,
			ServiceName:     m.ServiceName,
			StaffID:         m.StaffID,
			StaffValid:      m.StaffValid,
			AvailableStaff:  toStaffOptions(m.Options),
			Price:           m.Price,
			DurationMinutes: m.DurationMinutes,
		})
	}

	return result
}

func toStaffOptions(options []resolve_group_staff.StaffOption) []StaffOptionResponse {
	result := make([]StaffOptionResponse, 0, len(options))
	for _, o := range options {
		result = append(result, StaffOptionResponse{ID: o.ID, Name: o.Name})
	}
	return result
}
