//go:build unit
// +build unit

package keys

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationParamsValidation(t *testing.T) {
	tests := []struct {
		name          string
		params        *GenerationParams
		expectedError error
	}{
		{
			name:   "defaults are valid",
			params: NewGenerationParams(),
		},
		{
			name:   "explicit secure size",
			params: &GenerationParams{KeyBits: 4096},
		},
		{
			name:          "below floor without override",
			params:        &GenerationParams{KeyBits: 512},
			expectedError: ErrKeyTooSmall,
		},
		{
			name:   "below floor with override",
			params: &GenerationParams{KeyBits: 512, AllowSmallKeys: true},
		},
		{
			name:          "floor applies at 1023",
			params:        &GenerationParams{KeyBits: 1023},
			expectedError: ErrKeyTooSmall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKeyExport(t *testing.T) {
	public := &PublicKey{
		E:     big.NewInt(7),
		N:     big.NewInt(3233),
		NBits: 12,
	}
	private := &PrivateKey{
		PublicKey: *public,
		P:         big.NewInt(61),
		Q:         big.NewInt(53),
		Phi:       big.NewInt(3120),
		D:         big.NewInt(1783),
	}

	t.Run("PublicOnlyFields", func(t *testing.T) {
		material := public.Export()
		assert.Equal(t, big.NewInt(7), material.E)
		assert.Equal(t, big.NewInt(3233), material.N)
		assert.Equal(t, 12, material.NBits)
		assert.Nil(t, material.P)
		assert.Nil(t, material.Q)
		assert.Nil(t, material.Phi)
		assert.Nil(t, material.D)
	})

	t.Run("PrivateFields", func(t *testing.T) {
		material := private.Export()
		assert.Equal(t, big.NewInt(61), material.P)
		assert.Equal(t, big.NewInt(53), material.Q)
		assert.Equal(t, big.NewInt(3120), material.Phi)
		assert.Equal(t, big.NewInt(1783), material.D)
		assert.Equal(t, big.NewInt(7), material.E)
		assert.Equal(t, big.NewInt(3233), material.N)
		assert.Equal(t, 12, material.NBits)
	})

	t.Run("PublicPartIsShared", func(t *testing.T) {
		assert.Equal(t, 0, private.PublicPart().N.Cmp(public.N))
	})
}

func TestKeyPairMetaValidation(t *testing.T) {
	valid := KeyPairMeta{
		ID:              "8a9c29f3-04f7-4a8c-9a53-2f8cde2f0d7c",
		Algorithm:       AlgorithmRSA,
		KeyBits:         2048,
		Mode:            ModePrivate,
		DateTimeCreated: time.Now(),
	}
	require.NoError(t, valid.Validate())

	t.Run("InvalidID", func(t *testing.T) {
		meta := valid
		meta.ID = "not-a-uuid"
		assert.Error(t, meta.Validate())
	})

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		meta := valid
		meta.Algorithm = "DSA"
		assert.Error(t, meta.Validate())
	})

	t.Run("UnknownMode", func(t *testing.T) {
		meta := valid
		meta.Mode = "hybrid"
		assert.Error(t, meta.Validate())
	})
}

func TestKeyPairQueryValidation(t *testing.T) {
	assert.NoError(t, (&KeyPairQuery{}).Validate())
	assert.NoError(t, (&KeyPairQuery{Mode: ModePublic, Limit: 10, Offset: 5}).Validate())
	assert.Error(t, (&KeyPairQuery{Mode: "hybrid"}).Validate())
	assert.Error(t, (&KeyPairQuery{Limit: -1}).Validate())
}
