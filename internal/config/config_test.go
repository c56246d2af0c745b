package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8090

[database]
host = "localhost"
user = "console"
password = "secret"
dbname = "salon_console"

[logs]
level = "debug"

[catalog_service]
url = "http://localhost:8081"

[redis]
enabled = true
addr = "localhost:6379"
ttl_seconds = 60

[defaults]
week_start = "monday"
timezone = "Europe/Moscow"
cancellation_cutoff_hours = 24
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 5, cfg.CatalogService.Timeout)
	assert.Equal(t, time.Minute, cfg.Redis.TTL())
	assert.Equal(t, "console:roster", cfg.Redis.Prefix)
	assert.Equal(t, "monday", cfg.Defaults.WeekStart)
	assert.Equal(t, "different_staff", cfg.Defaults.SameStaffFallback)
	assert.Equal(t, 24, cfg.Defaults.CancellationCutoffHours)
	assert.Equal(t,
		"host=localhost port=5432 user=console password=secret dbname=salon_console sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("DB_PORT", "five")

	_, err := Load(writeConfig(t, sampleConfig))
	assert.Error(t, err)
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := map[string]string{
		"missing catalog url": `
[database]
host = "localhost"
user = "console"
dbname = "salon_console"
`,
		"bad timezone": `
[database]
host = "localhost"
user = "console"
dbname = "salon_console"
[catalog_service]
url = "http://localhost:8081"
[defaults]
timezone = "Mars/Olympus"
`,
		"redis without addr": `
[database]
host = "localhost"
user = "console"
dbname = "salon_console"
[catalog_service]
url = "http://localhost:8081"
[redis]
enabled = true
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_DefaultCutoffs(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[database]
host = "localhost"
user = "console"
dbname = "salon_console"
[catalog_service]
url = "http://localhost:8081"
`))
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Defaults.CancellationCutoffHours)
	assert.Equal(t, 24, cfg.Defaults.RescheduleCutoffHours)
	assert.Equal(t, "sunday", cfg.Defaults.WeekStart)
	assert.False(t, cfg.Redis.Enabled)
}
