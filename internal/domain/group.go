package domain

import "github.com/google/uuid"

// GroupMember is a participant of a group booking
// Members without a selected service never take part in staff compatibility checks
type GroupMember struct {
	ID        uuid.UUID
	Name      string
	ServiceID *int64 // nil - nothing selected yet
	StaffID   *int64 // nil - no staff assigned
	ExtraIDs  []int64
}

// NewGroupMember creates a participant with a fresh identifier
func NewGroupMember(name string) *GroupMember {
	return &GroupMember{
		ID:   uuid.New(),
		Name: name,
	}
}

// HasService returns true if the member selected a service
func (m *GroupMember) HasService() bool {
	return m.ServiceID != nil && *m.ServiceID > 0
}

// HasStaff returns true if a staff member is assigned
func (m *GroupMember) HasStaff() bool {
	return m.StaffID != nil && *m.StaffID > 0
}

// StaffMode how staff is distributed across a group booking
type StaffMode string

const (
	StaffModeSame       StaffMode = "same"       // One employee serves every member
	StaffModeDifferent  StaffMode = "different"  // Each member picks their own employee
	StaffModeUnresolved StaffMode = "unresolved" // Same staff requested but impossible and no fallback allowed
)
