package catalogservice

import (
	"slices"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// Company модель компании из каталога
type Company struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	ManagerIDs []int64    `json:"manager_ids"`
	Locations  []Location `json:"locations"`
}

// Location точка (салон) компании
type Location struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// IsManager проверяет, является ли пользователь менеджером компании
func (c *Company) IsManager(userID int64) bool {
	return slices.Contains(c.ManagerIDs, userID)
}

// HasLocation проверяет, принадлежит ли точка компании
func (c *Company) HasLocation(locationID int64) bool {
	for _, l := range c.Locations {
		if l.ID == locationID {
			return true
		}
	}
	return false
}

// Service модель услуги из каталога
type Service struct {
	ID              int64   `json:"id"`
	CompanyID       int64   `json:"company_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Extras          []Extra `json:"extras"`
	LocationIDs     []int64 `json:"location_ids"`
}

// Extra дополнительная опция услуги
type Extra struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ToDomain конвертирует услугу каталога в доменную модель
func (s *Service) ToDomain() *domain.Service {
	extras := make([]domain.Extra, 0, len(s.Extras))
	for _, e := range s.Extras {
		extras = append(extras, domain.Extra{ID: e.ID, Name: e.Name, Price: e.Price})
	}

	return &domain.Service{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Extras:          extras,
		LocationIDs:     s.LocationIDs,
	}
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
