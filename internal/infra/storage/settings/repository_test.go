package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

func TestBuildUpsertQuery(t *testing.T) {
	s := domain.DefaultConsoleSettings(5)
	s.WeekStart = time.Monday

	query, args, err := buildUpsertQuery(s).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO console_settings")
	assert.Contains(t, query, "ON CONFLICT (company_id) DO UPDATE SET")
	assert.Contains(t, query, "RETURNING id, created_at, updated_at")
	require.Len(t, args, 8)
	assert.Equal(t, int64(5), args[0])
	assert.Equal(t, 1, args[1])
	assert.Equal(t, "UTC", args[2])
	assert.Equal(t, "different_staff", args[3])
}
