package domain

import "slices"

// Extra is a paid add-on for a service
type Extra struct {
	ID    int64
	Name  string
	Price float64
}

// Service is a bookable salon service
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	Extras          []Extra
	LocationIDs     []int64
}

// AvailableAt returns true if the service is offered at the location
func (s *Service) AvailableAt(locationID int64) bool {
	return slices.Contains(s.LocationIDs, locationID)
}

// FindExtra returns the extra with the given id
func (s *Service) FindExtra(id int64) (Extra, bool) {
	for _, e := range s.Extras {
		if e.ID == id {
			return e, true
		}
	}
	return Extra{}, false
}
