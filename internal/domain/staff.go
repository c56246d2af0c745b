package domain

import "slices"

// StaffMember represents an employee who performs services at one or more locations
type StaffMember struct {
	ID          int64
	CompanyID   int64
	Name        string
	IsActive    bool
	ServiceIDs  []int64 // Services the employee can perform
	LocationIDs []int64 // Locations where the employee works
}

// OffersService returns true if the employee performs the service
func (s *StaffMember) OffersService(serviceID int64) bool {
	return slices.Contains(s.ServiceIDs, serviceID)
}

// WorksAt returns true if the employee works at the location
func (s *StaffMember) WorksAt(locationID int64) bool {
	return slices.Contains(s.LocationIDs, locationID)
}

// OffersAll returns true if the employee performs every listed service
func (s *StaffMember) OffersAll(serviceIDs []int64) bool {
	for _, id := range serviceIDs {
		if !s.OffersService(id) {
			return false
		}
	}
	return true
}
