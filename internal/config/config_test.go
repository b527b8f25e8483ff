package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_DefaultsAndYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
jwt:
  secret: "yaml-secret"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "yaml-secret", cfg.JWT.Secret)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "720h", cfg.Events.RunRetention)
	assert.Equal(t, "UTC", cfg.Events.Timezone)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: "yaml-secret"
database:
  max_open_conns: 3
`)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_MAX_OPEN_CONNS", "42")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("SERVER_MODE", "production")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 42, cfg.Database.MaxOpenConns)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "missing secret", body: "server:\n  port: \"1\"\n"},
		{name: "bad token expiration", body: "jwt:\n  secret: s\n  access_token_expiration: soon\n"},
		{name: "bad retention", body: "jwt:\n  secret: s\nevents:\n  run_retention: forever\n"},
		{name: "bad timezone", body: "jwt:\n  secret: s\nevents:\n  timezone: Mars/Olympus\n"},
		{name: "bad redis ttl", body: "jwt:\n  secret: s\nredis:\n  addr: localhost:6379\n  ttl: x\n"},
		{name: "bad env int", body: "jwt:\n  secret: s\n", env: map[string]string{"REDIS_DB": "zero"}},
		{name: "malformed yaml", body: "jwt: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "u"
	cfg.Database.Password = "p"
	cfg.Database.Host = "h"
	cfg.Database.Port = "5432"
	cfg.Database.DBName = "d"

	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", cfg.GetPostgresConnectionString())
}
