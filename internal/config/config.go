// Package config loads service configuration from a TOML file with
// environment overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"storytutor/internal/llm"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains HTTP listener configuration.
type Server struct {
	Bind            string   `toml:"bind"`
	AllowedOrigins  []string `toml:"allowed_origins"`
	ShutdownTimeout int      `toml:"shutdown_timeout_seconds"`
}

// Log contains logger configuration.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// LLM contains grading-classifier configuration. API keys are taken
// from the environment only, never from the file.
type LLM struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Config is the root configuration.
type Config struct {
	Server Server `toml:"server"`
	Log    Log    `toml:"log"`
	LLM    LLM    `toml:"llm"`

	// DBPath overrides the default database location.
	DBPath string `toml:"db_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{
			Bind:            ":8080",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		LLM: LLM{
			TimeoutSeconds: 15,
		},
	}
}

// Load reads configuration from path, layering file values over
// defaults and environment overrides over both. A missing file is not
// an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Fall through to defaults.
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath resolves the config file location:
// $XDG_CONFIG_HOME/storytutor/config.toml, falling back to
// ~/.config/storytutor/config.toml.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "storytutor", "config.toml")
}

func (c *Config) applyEnv() {
	if v := os.Getenv("STORYTUTOR_BIND"); v != "" {
		c.Server.Bind = v
	}
	if v := os.Getenv("STORYTUTOR_ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				origins = append(origins, s)
			}
		}
		c.Server.AllowedOrigins = origins
	}
	if v := os.Getenv("STORYTUTOR_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("STORYTUTOR_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("STORYTUTOR_LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("STORYTUTOR_LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("STORYTUTOR_DB"); v != "" {
		c.DBPath = v
	}
}

// Validate checks field values that would otherwise fail later in
// confusing places.
func (c *Config) Validate() error {
	if c.Server.Bind == "" {
		return errors.New("server.bind must not be empty")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout_seconds must be positive")
	}
	if c.LLM.TimeoutSeconds <= 0 {
		return errors.New("llm.timeout_seconds must be positive")
	}
	return nil
}

// LLMConfig builds the provider configuration, layering the file's
// provider and model choice over env-derived defaults.
func (c *Config) LLMConfig() llm.Config {
	llmCfg := llm.ConfigFromEnv()

	if c.LLM.Provider != "" {
		llmCfg.Provider = c.LLM.Provider
	}
	if c.LLM.Model != "" {
		switch llmCfg.Provider {
		case "openrouter":
			llmCfg.OpenRouter.Model = c.LLM.Model
		case "openai":
			llmCfg.OpenAI.Model = c.LLM.Model
		case "anthropic":
			llmCfg.Anthropic.Model = c.LLM.Model
		case "gemini":
			llmCfg.Gemini.Model = c.LLM.Model
		}
	}
	llmCfg.Timeout = time.Duration(c.LLM.TimeoutSeconds) * time.Second

	return llmCfg
}

// WriteSample writes the annotated sample configuration to path,
// refusing to overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
