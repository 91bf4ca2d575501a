package llm

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "openrouter" {
		t.Errorf("default provider = %q, want openrouter", cfg.Provider)
	}
	if cfg.OpenRouter.Model != "openai/gpt-4o-mini" {
		t.Errorf("default openrouter model = %q", cfg.OpenRouter.Model)
	}
	if cfg.Retry.MaxAttempts != 1 {
		t.Errorf("default max attempts = %d, want 1", cfg.Retry.MaxAttempts)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("default timeout = %v, want 15s", cfg.Timeout)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("STORYTUTOR_LLM_PROVIDER", "openai")
	t.Setenv("STORYTUTOR_OPENAI_API_KEY", "sk-test")
	t.Setenv("STORYTUTOR_OPENAI_MODEL", "gpt-4o")
	t.Setenv("STORYTUTOR_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.OpenAI.Model)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestConfigValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for openrouter provider without API key")
	}
}

func TestConfigValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfigValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "watson"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
