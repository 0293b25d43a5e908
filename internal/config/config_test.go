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

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8083

[database]
host = "localhost"
port = 5432
user = "u"
password = "p"
dbname = "rooms"
sslmode = "disable"

[logs]
file = "logs/service.log"
level = "debug"

[email]
from_email = "rooms@example.com"
cancellation_subject = "Booking cancelled"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=rooms sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "rooms@example.com", cfg.Email.FromEmail)
}

func TestLoad_MissingFromEmail(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8083

[database]
host = "localhost"

[logs]
file = "logs/service.log"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from_email")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("does-not-exist.toml")
	assert.Error(t, err)
}
