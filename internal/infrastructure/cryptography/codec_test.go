//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plain_rsa_service/internal/domain/keys"
)

func TestDecimalCodec(t *testing.T) {
	codec, err := NewDecimalCodec()
	require.NoError(t, err)

	t.Run("RoundTrip", func(t *testing.T) {
		tests := []string{
			"",
			"A",
			"Hello, RSA!",
			"Mixed CASE with punctuation?! (and spaces)",
			"ümlauts and ßharp s",
		}

		for _, text := range tests {
			encoded, err := codec.Encode(text)
			require.NoError(t, err)

			decoded, err := codec.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, text, decoded)
		}
	})

	t.Run("KnownEncodings", func(t *testing.T) {
		encoded, err := codec.Encode("")
		require.NoError(t, err)
		assert.Equal(t, "1421", encoded.String())

		encoded, err = codec.Encode("A")
		require.NoError(t, err)
		assert.Equal(t, "14210065", encoded.String())

		encoded, err = codec.Encode("Hi")
		require.NoError(t, err)
		assert.Equal(t, "142100720105", encoded.String())
	})

	t.Run("LeadingZeroCodePointSurvives", func(t *testing.T) {
		// "\n" has code point 10; without the marker its leading zeros
		// would vanish in the integer form.
		encoded, err := codec.Encode("\n")
		require.NoError(t, err)
		assert.Equal(t, "14210010", encoded.String())

		decoded, err := codec.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, "\n", decoded)
	})

	t.Run("RejectsWideCodePoints", func(t *testing.T) {
		_, err := codec.Encode("ok 日")
		assert.ErrorIs(t, err, keys.ErrUnsupportedCharacter)
	})

	t.Run("DecodeWithoutMarker", func(t *testing.T) {
		// Values too short for a full code point group decode to nothing.
		decoded, err := codec.Decode(big.NewInt(65))
		require.NoError(t, err)
		assert.Equal(t, "", decoded)

		// Only a leading "1421" is treated as the marker.
		decoded, err = codec.Decode(big.NewInt(842100720105))
		require.NoError(t, err)
		assert.Equal(t, string(rune(8421))+"Hi", decoded)
	})
}
