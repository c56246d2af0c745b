package compatibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	"github.com/m04kA/SMC-SalonConsole/pkg/ptr"
)

const (
	locMain   int64 = 1
	locBranch int64 = 2

	svcCut    int64 = 10
	svcColour int64 = 20
	svcNails  int64 = 30
)

func testRoster() []*domain.StaffMember {
	return []*domain.StaffMember{
		{ID: 1, Name: "S1", ServiceIDs: []int64{svcCut, svcColour}, LocationIDs: []int64{locMain}},
		{ID: 2, Name: "S2", ServiceIDs: []int64{svcCut}, LocationIDs: []int64{locMain}},
		{ID: 3, Name: "S3", ServiceIDs: []int64{svcCut, svcColour, svcNails}, LocationIDs: []int64{locBranch}},
	}
}

func member(serviceID int64) *domain.GroupMember {
	m := domain.NewGroupMember("guest")
	if serviceID > 0 {
		m.ServiceID = ptr.Ptr(serviceID)
	}
	return m
}

func staffIDs(staff []*domain.StaffMember) []int64 {
	ids := make([]int64, 0, len(staff))
	for _, s := range staff {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestStaffForService(t *testing.T) {
	roster := testRoster()

	assert.Equal(t, []int64{1, 2}, staffIDs(StaffForService(roster, locMain, svcCut)))
	assert.Equal(t, []int64{1}, staffIDs(StaffForService(roster, locMain, svcColour)))
	assert.Equal(t, []int64{3}, staffIDs(StaffForService(roster, locBranch, svcCut)))
	assert.Empty(t, StaffForService(roster, locMain, svcNails))
}

func TestStaffForService_EmptyServiceYieldsEmpty(t *testing.T) {
	result := StaffForService(testRoster(), locMain, 0)

	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestStaffForService_SoundAndComplete(t *testing.T) {
	roster := testRoster()

	for _, loc := range []int64{locMain, locBranch, 99} {
		for _, svc := range []int64{svcCut, svcColour, svcNails, 77} {
			got := StaffForService(roster, loc, svc)

			for _, s := range got {
				assert.True(t, s.WorksAt(loc) && s.OffersService(svc), "unsound: staff=%d loc=%d svc=%d", s.ID, loc, svc)
			}

			expected := 0
			for _, s := range roster {
				if s.WorksAt(loc) && s.OffersService(svc) {
					expected++
				}
			}
			assert.Len(t, got, expected, "incomplete: loc=%d svc=%d", loc, svc)
		}
	}
}

func TestStaffForAllServices(t *testing.T) {
	roster := testRoster()

	assert.Equal(t, []int64{1}, staffIDs(StaffForAllServices(roster, locMain, []int64{svcCut, svcColour})))
	assert.Empty(t, StaffForAllServices(roster, locMain, []int64{svcCut, svcNails}))
	assert.Empty(t, StaffForAllServices(roster, locMain, nil))
}

func TestStaffForAllServices_SubsetOfFirstService(t *testing.T) {
	roster := testRoster()
	sets := [][]int64{
		{svcCut},
		{svcCut, svcColour},
		{svcColour, svcCut},
		{svcCut, svcColour, svcNails},
	}

	for _, loc := range []int64{locMain, locBranch} {
		for _, ids := range sets {
			single := staffIDs(StaffForService(roster, loc, ids[0]))
			for _, id := range staffIDs(StaffForAllServices(roster, loc, ids)) {
				assert.Contains(t, single, id)
			}
		}
	}
}

func TestStaffForAllServices_DoesNotMutateInputs(t *testing.T) {
	roster := testRoster()
	ids := []int64{svcCut, svcColour}

	result := StaffForAllServices(roster, locMain, ids)
	result = append(result, &domain.StaffMember{ID: 42})

	assert.Len(t, roster, 3)
	assert.Equal(t, []int64{svcCut, svcColour}, ids)
	assert.Equal(t, []int64{svcCut, svcColour}, roster[0].ServiceIDs)
}

func TestCanUseSameStaff(t *testing.T) {
	roster := testRoster()

	t.Run("no members", func(t *testing.T) {
		assert.False(t, CanUseSameStaff(nil, roster, locMain))
		assert.False(t, CanUseSameStaff([]*domain.GroupMember{}, roster, locMain))
	})

	t.Run("members without services", func(t *testing.T) {
		assert.False(t, CanUseSameStaff([]*domain.GroupMember{member(0), member(0)}, roster, locMain))
	})

	t.Run("A and B served by S1", func(t *testing.T) {
		members := []*domain.GroupMember{member(svcCut), member(svcColour)}
		assert.Equal(t, []int64{1}, staffIDs(StaffForAllServices(roster, locMain, SelectedServiceIDs(members))))
		assert.True(t, CanUseSameStaff(members, roster, locMain))
	})

	t.Run("C not offered at location", func(t *testing.T) {
		members := []*domain.GroupMember{member(svcCut), member(svcNails)}
		assert.Empty(t, StaffForAllServices(roster, locMain, SelectedServiceIDs(members)))
		assert.False(t, CanUseSameStaff(members, roster, locMain))
	})

	t.Run("member without service is ignored", func(t *testing.T) {
		members := []*domain.GroupMember{member(svcCut), member(0)}
		assert.True(t, CanUseSameStaff(members, roster, locMain))
	})
}

func TestSelectedServiceIDs_DistinctInOrder(t *testing.T) {
	members := []*domain.GroupMember{member(svcColour), member(0), member(svcCut), member(svcColour), nil}

	assert.Equal(t, []int64{svcColour, svcCut}, SelectedServiceIDs(members))
}

func TestPlanAssignment_SameStaff(t *testing.T) {
	members := []*domain.GroupMember{member(svcCut), member(svcColour), member(0)}

	plan := PlanAssignment(members, testRoster(), locMain, true, domain.FallbackDifferentStaff)

	assert.Equal(t, domain.StaffModeSame, plan.Mode)
	assert.True(t, plan.CanUseSameStaff)
	assert.Equal(t, []int64{1}, staffIDs(plan.CommonStaff))
	require.Len(t, plan.Members, 3)
	assert.Equal(t, members[0].ID, plan.Members[0].MemberID)
	assert.Equal(t, []int64{1}, staffIDs(plan.Members[0].Staff))
	assert.Equal(t, []int64{1}, staffIDs(plan.Members[1].Staff))
	assert.Empty(t, plan.Members[2].Staff)
}

func TestPlanAssignment_FallbackToDifferentStaff(t *testing.T) {
	members := []*domain.GroupMember{member(svcCut), member(svcNails)}

	plan := PlanAssignment(members, testRoster(), locMain, true, domain.FallbackDifferentStaff)

	assert.Equal(t, domain.StaffModeDifferent, plan.Mode)
	assert.False(t, plan.CanUseSameStaff)
	assert.Equal(t, []int64{1, 2}, staffIDs(plan.Members[0].Staff))
	assert.Empty(t, plan.Members[1].Staff)
}

func TestPlanAssignment_NoFallbackLeavesGroupUnresolved(t *testing.T) {
	members := []*domain.GroupMember{member(svcCut), member(svcNails)}

	plan := PlanAssignment(members, testRoster(), locMain, true, domain.FallbackNone)

	assert.Equal(t, domain.StaffModeUnresolved, plan.Mode)
}

func TestPlanAssignment_ReportsInvalidAssignmentsWithoutMutating(t *testing.T) {
	ok := member(svcColour)
	ok.StaffID = ptr.Ptr(int64(1))
	bad := member(svcColour)
	bad.StaffID = ptr.Ptr(int64(2))

	plan := PlanAssignment([]*domain.GroupMember{ok, bad}, testRoster(), locMain, false, domain.FallbackDifferentStaff)

	assert.Equal(t, domain.StaffModeDifferent, plan.Mode)
	require.Len(t, plan.InvalidAssignments, 1)
	assert.Equal(t, bad.ID, plan.InvalidAssignments[0].MemberID)
	assert.Equal(t, int64(2), plan.InvalidAssignments[0].StaffID)
	assert.Equal(t, int64(2), *bad.StaffID)
}

func TestPlanAssignment_MemberWithoutServiceKeepsAssignment(t *testing.T) {
	noService := member(0)
	noService.StaffID = ptr.Ptr(int64(2))

	plan := PlanAssignment([]*domain.GroupMember{member(svcColour), noService}, testRoster(), locMain, true, domain.FallbackDifferentStaff)

	assert.Equal(t, domain.StaffModeSame, plan.Mode)
	assert.Empty(t, plan.Members[1].Staff)
	assert.Empty(t, plan.InvalidAssignments)
}
