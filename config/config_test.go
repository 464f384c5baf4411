package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return path
}

func TestLoadConfig_FileValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
llm:
  provider: ollama
  model: llama3
  timeout: 5s
  ollama:
    host: ollama
    port: "1234"
challenge:
  fallback: N/A
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Address() != "0.0.0.0:9090" {
		t.Errorf("expected address 0.0.0.0:9090, got %s", cfg.Server.Address())
	}
	if cfg.LLM.Provider != ProviderOllama {
		t.Errorf("expected provider ollama, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %s", cfg.LLM.Timeout)
	}
	if cfg.LLM.Ollama.Address() != "http://ollama:1234" {
		t.Errorf("unexpected ollama address %s", cfg.LLM.Ollama.Address())
	}
	if cfg.Challenge.Fallback != "N/A" {
		t.Errorf("expected fallback N/A, got %q", cfg.Challenge.Fallback)
	}
	if cfg.Nats.Subject != "challenges.generated" {
		t.Errorf("expected default nats subject, got %q", cfg.Nats.Subject)
	}
}

func TestLoadConfig_EnvOverridesAPIKey(t *testing.T) {
	path := writeConfig(t, `
llm:
  provider: googleai
  model: gemini-1.5-pro
`)
	t.Setenv("LLM_APIKEY", "secret")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.LLM.APIKey != "secret" {
		t.Errorf("expected api key from env, got %q", cfg.LLM.APIKey)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("LLM_APIKEY", "secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.LLM.Model != "gemini-1.5-pro" {
		t.Errorf("expected default model, got %q", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 60*time.Second {
		t.Errorf("expected default timeout 60s, got %s", cfg.LLM.Timeout)
	}
}

func TestLoadConfig_GoogleAIWithoutKey(t *testing.T) {
	t.Setenv("LLM_APIKEY", "")
	path := writeConfig(t, `
llm:
  provider: googleai
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			LLM: LLM{
				Provider: ProviderOllama,
				Model:    "llama3",
				Timeout:  time.Second,
			},
			Challenge: Challenge{Fallback: "N/A"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown provider", mutate: func(c *Config) { c.LLM.Provider = "bedrock" }, wantErr: true},
		{name: "empty model", mutate: func(c *Config) { c.LLM.Model = "" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.LLM.Timeout = 0 }, wantErr: true},
		{name: "empty fallback", mutate: func(c *Config) { c.Challenge.Fallback = "" }, wantErr: true},
		{name: "googleai with key", mutate: func(c *Config) {
			c.LLM.Provider = ProviderGoogleAI
			c.LLM.APIKey = "key"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
