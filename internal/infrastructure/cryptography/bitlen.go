package cryptography

import "math/big"

// Small constants shared across the numeric engine.
var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// bitLength returns the number of bits required to represent the
// non-negative integer n; zero requires zero bits. Valid for
// arbitrary-precision values.
func bitLength(n *big.Int) int {
	return n.BitLen()
}
