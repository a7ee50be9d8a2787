package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. Provider credentials use the
// variable names the hosted deployment already exports.
type Config struct {
	Port         int   `yaml:"port"           env:"LINKEDINEESE_PORT"`
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"LINKEDINEESE_MAX_BODY_BYTES"`

	GroqAPIKey  string `yaml:"groq_api_key"  env:"GROQ_API_KEY"`
	GroqBaseURL string `yaml:"groq_base_url" env:"GROQ_API_BASE_URL"`

	OpenAIAPIKey  string `yaml:"openai_api_key"  env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `yaml:"openai_base_url" env:"OPENAI_API_BASE_URL"`

	DeepSeekAPIKey  string `yaml:"deepseek_api_key"  env:"DEEPSEEK_API_KEY"`
	DeepSeekBaseURL string `yaml:"deepseek_base_url" env:"DEEPSEEK_API_BASE_URL"`
}

func defaults() Config {
	return Config{
		Port:         8090,
		MaxBodyBytes: 64 * 1024,
	}
}

// Load reads path (if non-empty) over the defaults, then applies environment
// overrides. Unset or empty variables leave the file value in place.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("config: invalid port %d", cfg.Port)
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config: invalid max_body_bytes %d", cfg.MaxBodyBytes)
	}

	return cfg, nil
}

// LoadEnvFile exports the variables in a dotenv file into the process
// environment. Variables that are already set win.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load env file: %w", err)
	}
	return nil
}
