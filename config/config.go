package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderGoogleAI = "googleai"
	ProviderOllama   = "ollama"
)

type Server struct {
	Port      int    `mapstructure:"port"`
	Host      string `mapstructure:"host"`
	IndexFile string `mapstructure:"indexFile"`
}

func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type Ollama struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

func (o *Ollama) Address() string {
	return fmt.Sprintf("http://%s:%s", o.Host, o.Port)
}

type LLM struct {
	Provider    string        `mapstructure:"provider"`
	APIKey      string        `mapstructure:"apiKey"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Ollama      Ollama        `mapstructure:"ollama"`
}

type Challenge struct {
	Fallback       string `mapstructure:"fallback"`
	AnnotateErrors bool   `mapstructure:"annotateErrors"`
}

type Nats struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	Stream  string `mapstructure:"stream"`
	Subject string `mapstructure:"subject"`
}

func (n Nats) ConnStr() string {
	return fmt.Sprintf("nats://%s:%s", n.Host, n.Port)
}

type Log struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type Config struct {
	Server    Server    `mapstructure:"server"`
	LLM       LLM       `mapstructure:"llm"`
	Challenge Challenge `mapstructure:"challenge"`
	Nats      Nats      `mapstructure:"nats"`
	Log       Log       `mapstructure:"log"`
}

var defaults = map[string]any{
	"server.host":              "0.0.0.0",
	"server.port":              8080,
	"server.indexFile":         "web/index.html",
	"llm.provider":             ProviderGoogleAI,
	"llm.apiKey":               "",
	"llm.model":                "gemini-1.5-pro",
	"llm.temperature":          0.7,
	"llm.timeout":              "60s",
	"llm.ollama.host":          "localhost",
	"llm.ollama.port":          "11434",
	"challenge.fallback":       "AI response unavailable. Please try again later.",
	"challenge.annotateErrors": false,
	"nats.enabled":             false,
	"nats.host":                "localhost",
	"nats.port":                "4222",
	"nats.stream":              "CHALLENGES",
	"nats.subject":             "challenges.generated",
	"log.level":                "info",
	"log.pretty":               true,
}

// LoadConfig reads the yaml file at path and overlays environment variables
// (llm.apiKey -> LLM_APIKEY). A missing file leaves the defaults in place.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigFile(path)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGoogleAI:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.apiKey is required for provider %q", c.LLM.Provider)
		}
	case ProviderOllama:
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}

	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive")
	}
	if c.Challenge.Fallback == "" {
		return fmt.Errorf("challenge.fallback must not be empty")
	}

	return nil
}
