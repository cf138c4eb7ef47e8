package cryptography

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"plain_rsa_service/internal/domain/cryptoalg"
	"plain_rsa_service/internal/domain/keys"
)

// codecMarker prefixes every encoded value so that leading zeros of the
// first code point survive the round trip through an integer.
const codecMarker = "1421"

// codePointDigits is the fixed frame width per character. Code points
// needing more decimal digits cannot be represented.
const codePointDigits = 4

// decimalCodec struct that implements the Codec interface
type decimalCodec struct{}

// NewDecimalCodec creates the fixed-width decimal text codec.
func NewDecimalCodec() (cryptoalg.Codec, error) {
	return &decimalCodec{}, nil
}

// Encode maps text to a single integer: each character's code point is
// zero-padded to exactly four decimal digits, the groups are concatenated
// behind the marker and the whole digit string is parsed in base 10.
func (c *decimalCodec) Encode(text string) (*big.Int, error) {
	var digits strings.Builder
	digits.WriteString(codecMarker)

	for _, r := range text {
		if r >= 10000 {
			return nil, fmt.Errorf("character %q has code point %d: %w", r, r, keys.ErrUnsupportedCharacter)
		}
		fmt.Fprintf(&digits, "%04d", r)
	}

	value, ok := new(big.Int).SetString(digits.String(), 10)
	if !ok {
		return nil, fmt.Errorf("failed to parse encoded digit string %q", digits.String())
	}
	return value, nil
}

// Decode reverses Encode: it strips the marker when present and reads the
// remaining digits in non-overlapping groups of four, each group being one
// code point. Trailing digits that do not fill a group are ignored.
func (c *decimalCodec) Decode(value *big.Int) (string, error) {
	digits := value.String()
	digits = strings.TrimPrefix(digits, codecMarker)

	var text strings.Builder
	for i := 0; i+codePointDigits <= len(digits); i += codePointDigits {
		codePoint, err := strconv.Atoi(digits[i : i+codePointDigits])
		if err != nil {
			return "", fmt.Errorf("invalid code point group %q: %w", digits[i:i+codePointDigits], err)
		}
		text.WriteRune(rune(codePoint))
	}

	return text.String(), nil
}
