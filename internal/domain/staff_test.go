package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaffMember_Offers(t *testing.T) {
	s := &StaffMember{ID: 1, ServiceIDs: []int64{10, 20}, LocationIDs: []int64{100}}

	assert.True(t, s.OffersService(10))
	assert.False(t, s.OffersService(30))
	assert.True(t, s.WorksAt(100))
	assert.False(t, s.WorksAt(200))
	assert.True(t, s.OffersAll([]int64{10, 20}))
	assert.False(t, s.OffersAll([]int64{10, 30}))
	assert.True(t, s.OffersAll(nil))
}

func TestGroupMember_HasService(t *testing.T) {
	m := NewGroupMember("Anna")
	assert.NotEqual(t, [16]byte{}, [16]byte(m.ID))
	assert.False(t, m.HasService())

	zero := int64(0)
	m.ServiceID = &zero
	assert.False(t, m.HasService())

	svc := int64(5)
	m.ServiceID = &svc
	assert.True(t, m.HasService())
}
