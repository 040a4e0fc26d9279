package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o644))
}

func TestLoad_ReadsFileFromConfigPath(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "planner", `
server:
  port: "9000"
jwt:
  access_token_expiry: 45s
cors:
  allow_origins: ["https://a.example", "https://b.example"]
`)
	t.Setenv("CONFIG_PATH", dir)

	cfg, err := Load("planner")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.GetString("server.port"))
	assert.Equal(t, 45*time.Second, cfg.GetDuration("jwt.access_token_expiry"))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetStringSlice("cors.allow_origins"))
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "planner", `
database:
  host: file-host
`)
	t.Setenv("CONFIG_PATH", dir)
	t.Setenv("PLANNER_DATABASE_HOST", "env-host")

	cfg, err := Load("planner")
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.GetString("database.host"))
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())

	cfg, err := Load("planner-missing", WithEnv("nowhere"), WithDefaults(map[string]interface{}{
		"server.port": "8000",
		"auth.hash_cost": 10,
	}))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.GetString("server.port"))
	assert.Equal(t, 10, cfg.GetInt("auth.hash_cost"))
	assert.True(t, cfg.IsSet("server.port"))
	assert.False(t, cfg.IsSet("server.unknown"))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "planner", "server: [unterminated")
	t.Setenv("CONFIG_PATH", dir)

	_, err := Load("planner")
	assert.Error(t, err)
}
