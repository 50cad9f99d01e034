// Package config loads assistant configuration from the environment and an
// optional YAML file. Environment variables use the AUTOPILOT_ prefix
// (AUTOPILOT_PERPLEXITY_API_KEY, ...); file values are overridden by the
// environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey indicates that no LLM provider credential was configured.
var ErrMissingAPIKey = errors.New("config: no LLM provider API key configured")

// Config carries the wiring knobs for the assistant backend.
type Config struct {
	// Provider selects the gateway implementation: "perplexity" or "anthropic".
	Provider string `mapstructure:"provider"`

	// PerplexityAPIKey authenticates against the Perplexity API.
	PerplexityAPIKey string `mapstructure:"perplexity_api_key"`

	// PerplexityBaseURL overrides the Perplexity endpoint (tests, proxies).
	PerplexityBaseURL string `mapstructure:"perplexity_base_url"`

	// AnthropicAPIKey authenticates against the Anthropic API.
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`

	// Model is the provider-specific model identifier.
	Model string `mapstructure:"model"`

	// RequestTimeout bounds a single turn end to end.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// RecordTimeout bounds the detached history recording task.
	RecordTimeout time.Duration `mapstructure:"record_timeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is "json" or "text".
	LogFormat string `mapstructure:"log_format"`
}

// Options configure loading.
type Options struct {
	// ConfigFile is an explicit YAML file path; empty means search the
	// working directory for autopilot.yaml.
	ConfigFile string
}

// Load reads configuration from file and environment.
func Load(optFns ...func(o *Options)) (*Config, error) {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	v := viper.New()
	v.SetEnvPrefix("autopilot")
	v.AutomaticEnv()

	v.SetDefault("provider", "perplexity")
	v.SetDefault("model", "sonar-pro")
	v.SetDefault("request_timeout", 2*time.Minute)
	v.SetDefault("record_timeout", 30*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// AutomaticEnv alone does not surface env-only keys through Unmarshal;
	// bind the ones we read explicitly.
	for _, key := range []string{
		"provider", "perplexity_api_key", "perplexity_base_url",
		"anthropic_api_key", "model", "request_timeout",
		"record_timeout", "log_level", "log_format",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("autopilot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the selected provider has a credential.
func (c *Config) Validate() error {
	switch c.Provider {
	case "perplexity":
		if c.PerplexityAPIKey == "" {
			return ErrMissingAPIKey
		}
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return ErrMissingAPIKey
		}
	default:
		return fmt.Errorf("config: unknown provider %q", c.Provider)
	}
	return nil
}
