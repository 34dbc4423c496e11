// Package config loads runtime settings from the environment. Input file
// paths are positional CLI arguments and are not part of the config.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "COMPUTESALES_"

// Config holds settings for a single run.
type Config struct {
	// LogLevel is the minimum operator log level (default: warn)
	LogLevel string `env:"COMPUTESALES_LOG_LEVEL" validate:"oneof=trace debug info warn error disabled"`

	// LogFormat is console or json (default: console)
	LogFormat string `env:"COMPUTESALES_LOG_FORMAT" validate:"oneof=console json"`
}

var validate = newValidator()

// Load reads configuration from the environment and an optional .env file
// in the working directory. Variables already set take precedence over .env.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		LogLevel:  normalize(k.String(envPrefix+"LOG_LEVEL"), "warn"),
		LogFormat: normalize(k.String(envPrefix+"LOG_FORMAT"), "console"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all failures at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config validation: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s (%q) must be one of: %s",
			fe.Field(), fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", ")))
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(msgs, "; "))
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their environment variable name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

func normalize(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
