//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyGenerationSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      KeyGenerationSettings
		expectedError bool
	}{
		{
			name: "secure defaults",
			settings: KeyGenerationSettings{
				DefaultKeyBits:    2048,
				MillerRabinRounds: 128,
			},
		},
		{
			name: "small keys with override",
			settings: KeyGenerationSettings{
				DefaultKeyBits:    128,
				AllowSmallKeys:    true,
				MillerRabinRounds: 128,
			},
		},
		{
			name: "small keys without override",
			settings: KeyGenerationSettings{
				DefaultKeyBits:    512,
				MillerRabinRounds: 128,
			},
			expectedError: true,
		},
		{
			name: "missing rounds",
			settings: KeyGenerationSettings{
				DefaultKeyBits: 2048,
			},
			expectedError: true,
		},
		{
			name: "rounds out of range",
			settings: KeyGenerationSettings{
				DefaultKeyBits:    2048,
				MillerRabinRounds: 5000,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
