//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitLength(t *testing.T) {
	tests := []struct {
		value    *big.Int
		expected int
	}{
		{value: big.NewInt(0), expected: 0},
		{value: big.NewInt(1), expected: 1},
		{value: big.NewInt(2), expected: 2},
		{value: big.NewInt(3), expected: 2},
		{value: big.NewInt(255), expected: 8},
		{value: big.NewInt(256), expected: 9},
		{value: new(big.Int).Lsh(big.NewInt(1), 4096), expected: 4097},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, bitLength(tt.value), "bit length of %s", tt.value)
	}
}
