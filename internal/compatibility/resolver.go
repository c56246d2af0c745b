// Package compatibility подбирает сотрудников для участников группового бронирования.
//
// Все функции чистые: не изменяют входные данные, возвращают новые срезы
// и не возвращают ошибок. Отсутствие подходящих сотрудников - пустой результат.
package compatibility

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// StaffForService возвращает сотрудников, которые работают на точке locationID и оказывают услугу serviceID
func StaffForService(roster []*domain.StaffMember, locationID, serviceID int64) []*domain.StaffMember {
	result := make([]*domain.StaffMember, 0)
	if serviceID <= 0 {
		return result
	}

	for _, staff := range roster {
		if staff == nil {
			continue
		}
		if staff.WorksAt(locationID) && staff.OffersService(serviceID) {
			result = append(result, staff)
		}
	}

	return result
}

// StaffForAllServices возвращает сотрудников точки, которые оказывают каждую из услуг serviceIDs (пересечение)
// Пустой список услуг дает пустой результат: без выбранных услуг общего мастера нет
func StaffForAllServices(roster []*domain.StaffMember, locationID int64, serviceIDs []int64) []*domain.StaffMember {
	result := make([]*domain.StaffMember, 0)
	if len(serviceIDs) == 0 {
		return result
	}

	for _, staff := range roster {
		if staff == nil {
			continue
		}
		if staff.WorksAt(locationID) && staff.OffersAll(serviceIDs) {
			result = append(result, staff)
		}
	}

	return result
}

// CanUseSameStaff проверяет, может ли один сотрудник обслужить всех участников группы
func CanUseSameStaff(members []*domain.GroupMember, roster []*domain.StaffMember, locationID int64) bool {
	serviceIDs := SelectedServiceIDs(members)
	if len(serviceIDs) == 0 {
		return false
	}
	return len(StaffForAllServices(roster, locationID, serviceIDs)) > 0
}

// SelectedServiceIDs возвращает уникальные выбранные услуги в порядке первого появления
// Участники без выбранной услуги пропускаются
func SelectedServiceIDs(members []*domain.GroupMember) []int64 {
	ids := make([]int64, 0, len(members))
	seen := make(map[int64]struct{}, len(members))

	for _, m := range members {
		if m == nil || !m.HasService() {
			continue
		}
		id := *m.ServiceID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

// StaffForMember возвращает сотрудников, доступных участнику по его услуге
func StaffForMember(member *domain.GroupMember, roster []*domain.StaffMember, locationID int64) []*domain.StaffMember {
	if member == nil || !member.HasService() {
		return make([]*domain.StaffMember, 0)
	}
	return StaffForService(roster, locationID, *member.ServiceID)
}

// MemberOptions варианты сотрудников для одного участника
type MemberOptions struct {
	MemberID uuid.UUID
	Staff    []*domain.StaffMember
}

// InvalidAssignment назначенный сотрудник, который не может обслужить участника
type InvalidAssignment struct {
	MemberID uuid.UUID
	StaffID  int64
}

// Plan итог подбора сотрудников для группы
type Plan struct {
	Mode               domain.StaffMode
	CanUseSameStaff    bool
	CommonStaff        []*domain.StaffMember // Сотрудники, способные обслужить всю группу
	Members            []MemberOptions       // В порядке участников
	InvalidAssignments []InvalidAssignment
}

// PlanAssignment подбирает сотрудников для группы с учетом политики перехода
// от "одного мастера" к "разным мастерам"
func PlanAssignment(
	members []*domain.GroupMember,
	roster []*domain.StaffMember,
	locationID int64,
	preferSame bool,
	fallback domain.SameStaffFallback,
) Plan {
	serviceIDs := SelectedServiceIDs(members)
	common := StaffForAllServices(roster, locationID, serviceIDs)
	canSame := len(common) > 0

	plan := Plan{
		CanUseSameStaff:    canSame,
		CommonStaff:        common,
		Members:            make([]MemberOptions, 0, len(members)),
		InvalidAssignments: make([]InvalidAssignment, 0),
	}

	switch {
	case !preferSame:
		plan.Mode = domain.StaffModeDifferent
	case canSame:
		plan.Mode = domain.StaffModeSame
	case fallback == domain.FallbackNone:
		plan.Mode = domain.StaffModeUnresolved
	default:
		plan.Mode = domain.StaffModeDifferent
	}

	for _, m := range members {
		if m == nil {
			continue
		}

		options := StaffForMember(m, roster, locationID)
		if plan.Mode == domain.StaffModeSame && m.HasService() {
			options = append(make([]*domain.StaffMember, 0, len(common)), common...)
		}

		plan.Members = append(plan.Members, MemberOptions{MemberID: m.ID, Staff: options})

		// Участник без услуги не участвует в проверке совместимости
		if m.HasService() && m.HasStaff() && !containsStaff(options, *m.StaffID) {
			plan.InvalidAssignments = append(plan.InvalidAssignments, InvalidAssignment{
				MemberID: m.ID,
				StaffID:  *m.StaffID,
			})
		}
	}

	return plan
}

func containsStaff(staff []*domain.StaffMember, id int64) bool {
	for _, s := range staff {
		if s.ID == id {
			return true
		}
	}
	return false
}
