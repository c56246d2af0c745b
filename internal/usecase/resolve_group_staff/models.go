package resolve_group_staff

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// Request модель запроса на подбор сотрудников для группы
type Request struct {
	CompanyID       int64         // ID компании
	LocationID      int64         // ID точки
	PreferSameStaff bool          // Группа хочет одного мастера на всех
	Members         []MemberInput // Участники в порядке добавления
}

// MemberInput участник группы
type MemberInput struct {
	ID        uuid.UUID // uuid.Nil - новый участник, идентификатор будет сгенерирован
	Name      string
	ServiceID *int64
	StaffID   *int64
	ExtraIDs  []int64
}

// StaffOption сотрудник, доступный для выбора
type StaffOption struct {
	ID   int64
	Name string
}

// MemberResult итог подбора для участника
type MemberResult struct {
	ID              uuid.UUID
	Name            string
	ServiceID       *int64
	ServiceName     *string
	StaffID         *int64
	StaffValid      bool          // Назначенный сотрудник может обслужить участника (true, если никто не назначен)
	Options         []StaffOption // Сотрудники, из которых можно выбирать
	Price           float64       // Услуга + дополнительные опции
	DurationMinutes int
}

// Response модель ответа
type Response struct {
	Mode            domain.StaffMode
	CanUseSameStaff bool
	CommonStaff     []StaffOption
	Members         []MemberResult
	Total           float64 // Сумма по всем участникам
}
