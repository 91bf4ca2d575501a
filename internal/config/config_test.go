package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Bind)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15, cfg.LLM.TimeoutSeconds)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_path = "/tmp/tutor.db"

[server]
bind = ":9999"

[log]
level = "debug"
format = "json"

[llm]
provider = "mock"
timeout_seconds = 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Bind)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.Equal(t, 5, cfg.LLM.TimeoutSeconds)
	assert.Equal(t, "/tmp/tutor.db", cfg.DBPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nbind = \":9999\"\n"), 0o644))

	t.Setenv("STORYTUTOR_BIND", ":7777")
	t.Setenv("STORYTUTOR_LOG_LEVEL", "warn")
	t.Setenv("STORYTUTOR_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7777", cfg.Server.Bind)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is not toml ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Server.Bind = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LLM.TimeoutSeconds = 0
	assert.Error(t, cfg.Validate())
}

func TestLLMConfig_CarriesFileChoices(t *testing.T) {
	cfg := Default()
	cfg.LLM.Provider = "openrouter"
	cfg.LLM.Model = "openai/gpt-4o"
	cfg.LLM.TimeoutSeconds = 7

	llmCfg := cfg.LLMConfig()
	assert.Equal(t, "openrouter", llmCfg.Provider)
	assert.Equal(t, "openai/gpt-4o", llmCfg.OpenRouter.Model)
	assert.Equal(t, 7*time.Second, llmCfg.Timeout)
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	require.NoError(t, WriteSample(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[server]")

	// Refuses to overwrite.
	assert.Error(t, WriteSample(path))
}
