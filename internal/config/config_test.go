package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 30

[database]
host = "db.local"
port = 5433
user = "booking"
password = "secret"
dbname = "reservations"
sslmode = "require"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "reservation-svc"

[booking]
table_selection = "uniform"
table_count = 12
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, PolicyUniform, cfg.Booking.TableSelection)
	assert.Equal(t, 12, cfg.Booking.TableCount)

	assert.Equal(t,
		"host=db.local port=5433 user=booking password=secret dbname=reservations sslmode=require",
		cfg.Database.DSN())
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "postgres"
dbname = "reservations"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, PolicyCapacity, cfg.Booking.TableSelection)
	assert.Equal(t, 30, cfg.Booking.TableCount)
	assert.Equal(t, 90, cfg.Booking.DefaultDurationMinutes)
	assert.Equal(t, 30, cfg.Booking.SlotStepMinutes)
}

func TestLoad_MissingDatabase(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host")
}

func TestLoad_InvalidPolicy(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "postgres"
dbname = "reservations"

[booking]
table_selection = "round_robin"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table_selection")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
