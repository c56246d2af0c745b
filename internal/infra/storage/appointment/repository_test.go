package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	"github.com/m04kA/SMC-SalonConsole/pkg/ptr"
)

func TestBuildListQuery_ActiveOnly(t *testing.T) {
	query, args, err := buildListQuery(domain.AppointmentsFilter{CompanyID: 7}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM appointments WHERE company_id = $1 AND status NOT IN ($2,$3,$4)")
	assert.Contains(t, query, "ORDER BY starts_at ASC, id ASC")
	assert.Equal(t, []interface{}{int64(7), "cancelled_by_client", "cancelled_by_salon", "no_show"}, args)
}

func TestBuildListQuery_AllFilters(t *testing.T) {
	start := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	status := domain.StatusConfirmed

	query, args, err := buildListQuery(domain.AppointmentsFilter{
		CompanyID:  7,
		LocationID: ptr.Ptr(int64(2)),
		StaffID:    ptr.Ptr(int64(3)),
		Start:      &start,
		End:        &end,
		Status:     &status,
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "company_id = $1 AND location_id = $2 AND staff_id = $3 AND starts_at >= $4 AND starts_at <= $5 AND status = $6")
	assert.NotContains(t, query, "NOT IN")
	require.Len(t, args, 6)
	assert.Equal(t, start, args[3])
	assert.Equal(t, end, args[4])
	assert.Equal(t, "confirmed", args[5])
}

func TestBuildListQuery_IncludeInactive(t *testing.T) {
	query, args, err := buildListQuery(domain.AppointmentsFilter{CompanyID: 7, IncludeInactive: true}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "status NOT IN")
	assert.NotContains(t, query, "status =")
	assert.Len(t, args, 1)
}
