package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// AppSettings aggregates every settings section of the application.
type AppSettings struct {
	Logger        LoggerSettings        `mapstructure:"logger"`
	Database      DatabaseSettings      `mapstructure:"database"`
	KeyGeneration KeyGenerationSettings `mapstructure:"key_generation"`
}

// Validate checks every settings section.
func (s *AppSettings) Validate() error {
	if err := s.Logger.Validate(); err != nil {
		return err
	}
	if err := s.Database.Validate(); err != nil {
		return err
	}
	if err := s.KeyGeneration.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeAppConfig reads and validates application settings from a YAML
// file at the given path.
func InitializeAppConfig(configPath string) (*AppSettings, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var settings AppSettings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &settings, nil
}
