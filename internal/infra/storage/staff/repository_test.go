package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRosterQuery(t *testing.T) {
	query, args, err := buildRosterQuery(12).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM staff s LEFT JOIN staff_services ss ON ss.staff_id = s.id LEFT JOIN staff_locations sl ON sl.staff_id = s.id")
	assert.Contains(t, query, "WHERE s.company_id = $1 AND s.is_active = $2")
	assert.Contains(t, query, "GROUP BY s.id ORDER BY s.name ASC, s.id ASC")
	assert.Equal(t, []interface{}{int64(12), true}, args)
}
