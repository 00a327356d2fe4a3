// Package config loads sheetcheck settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environments the batch files are checked against.
var Environments = []string{"DEV", "UAT", "PROD"}

// Config holds runtime settings.
type Config struct {
	Environment      string  `mapstructure:"environment"`
	LogLevel         string  `mapstructure:"log_level"`
	BoldThreshold    float64 `mapstructure:"bold_threshold"`
	TransactionSheet string  `mapstructure:"transaction_sheet"`
	// EnvFileLoaded reports whether a .env file was read.
	EnvFileLoaded bool `mapstructure:"-"`
}

// IsProduction returns true when checking against production.
func (c *Config) IsProduction() bool {
	return c.Environment == "PROD"
}

// Load reads an optional .env file, then environment variables.
// ENVIRONMENT and LOG_LEVEL are read unprefixed; the extraction settings
// use the SHEETCHECK_ prefix.
func Load(envFile string) (*Config, error) {
	files := []string{}
	if envFile != "" {
		files = append(files, envFile)
	}
	envErr := godotenv.Load(files...)
	if envErr != nil && envFile != "" {
		return nil, fmt.Errorf("failed to load env file %s: %w", envFile, envErr)
	}

	v := viper.New()
	v.SetDefault("environment", "DEV")
	v.SetDefault("log_level", "info")
	v.SetDefault("bold_threshold", 0.5)
	v.SetDefault("transaction_sheet", "Transactions")

	v.SetEnvPrefix("SHEETCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("environment", "ENVIRONMENT"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("log_level", "LOG_LEVEL", "LOGLEVEL"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.EnvFileLoaded = envErr == nil

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes and checks the settings.
func (c *Config) Validate() error {
	c.Environment = strings.ToUpper(strings.TrimSpace(c.Environment))
	valid := false
	for _, env := range Environments {
		if c.Environment == env {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid environment: %s (must be one of %s)", c.Environment, strings.Join(Environments, ", "))
	}
	if c.BoldThreshold <= 0 || c.BoldThreshold > 1 {
		return fmt.Errorf("invalid bold threshold: %v (must be in (0, 1])", c.BoldThreshold)
	}
	return nil
}
