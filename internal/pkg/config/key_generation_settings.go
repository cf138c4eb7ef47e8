package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeyGenerationSettings holds the defaults applied to key pair generation
// when a caller does not specify them.
type KeyGenerationSettings struct {
	DefaultKeyBits    uint32 `mapstructure:"default_key_bits" validate:"required,gte=16"`
	AllowSmallKeys    bool   `mapstructure:"allow_small_keys"`
	MillerRabinRounds int    `mapstructure:"miller_rabin_rounds" validate:"required,gte=1,lte=1024"`
}

// Validate checks that all fields in KeyGenerationSettings are valid
func (s *KeyGenerationSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenerationSettings: %w", err)
	}

	// Key sizes below the security floor need the explicit override
	if s.DefaultKeyBits < 1024 && !s.AllowSmallKeys {
		return fmt.Errorf("default key bits %d below 1024 requires allow_small_keys", s.DefaultKeyBits)
	}

	return nil
}
