package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[server]
http_port = 8080
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 15

[database]
host = "localhost"
port = 5432
user = "jbarber"
password = "from-toml"
dbname = "jbarber_booking"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = false
service_name = "jbarber-booking"
path = "/metrics"

[auth]
password_hash = "bcrypt-hash"
jwt_secret = "secret"

[schedule]
slots = ["09:00 AM", "09:30 AM"]

[whatsapp]
barber_phone = "50256927575"
twilio_enabled = false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "from-toml", cfg.Database.Password)
	assert.Equal(t, []string{"09:00 AM", "09:30 AM"}, cfg.Schedule.Slots)
	assert.Equal(t, "50256927575", cfg.WhatsApp.BarberPhone)

	// TTL по умолчанию, если не задан
	assert.Equal(t, 60, cfg.Auth.TokenTTLMinutes)
}

func TestLoad_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=jbarber password=from-toml dbname=jbarber_booking sslmode=disable",
		cfg.Database.DSN(),
	)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestLoad_NoSlots(t *testing.T) {
	_, err := Load(writeConfig(t, `
[auth]
password_hash = "hash"
jwt_secret = "secret"

[schedule]
slots = []
`))
	assert.ErrorIs(t, err, ErrNoSlots)
}

func TestLoad_NoAuthSecrets(t *testing.T) {
	_, err := Load(writeConfig(t, `
[schedule]
slots = ["09:00 AM"]
`))
	assert.ErrorIs(t, err, ErrNoAuthSecrets)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
