package cryptography

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"plain_rsa_service/internal/domain/cryptoalg"
	"plain_rsa_service/internal/pkg/logger"
)

// millerRabinTester struct that implements the PrimalityTester interface
type millerRabinTester struct {
	rand   io.Reader
	logger logger.Logger
}

// NewMillerRabinTester creates a Miller-Rabin primality tester drawing
// witnesses from the given source. A nil source falls back to crypto/rand;
// witness draws only affect test soundness, not secrecy, so a seeded
// deterministic source is acceptable in tests.
func NewMillerRabinTester(rand io.Reader, logger logger.Logger) (cryptoalg.PrimalityTester, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}
	return &millerRabinTester{
		rand:   rand,
		logger: logger,
	}, nil
}

// IsProbablyPrime reports whether n is prime with false-positive probability
// at most 4^-rounds. Composites are never misreported as composite.
func (t *millerRabinTester) IsProbablyPrime(n *big.Int, rounds int) bool {
	if n.Cmp(bigTwo) == 0 || n.Cmp(bigThree) == 0 {
		return true
	}
	if n.Cmp(bigOne) <= 0 || n.Bit(0) == 0 {
		return false
	}

	// Write n-1 = 2^s * r with r odd.
	nMinusOne := new(big.Int).Sub(n, bigOne)
	r := new(big.Int).Set(nMinusOne)
	s := 0
	for r.Bit(0) == 0 {
		r.Rsh(r, 1)
		s++
	}

	// witnessSpan = n-3, so witnesses land uniformly in [2, n-2]
	witnessSpan := new(big.Int).Sub(n, bigThree)

	x := new(big.Int)
	for round := 0; round < rounds; round++ {
		a, err := cryptorand.Int(t.rand, witnessSpan)
		if err != nil {
			t.logger.Panic("failed to draw Miller-Rabin witness: ", err)
		}
		a.Add(a, bigTwo)

		x.Exp(a, r, n)
		if x.Cmp(bigOne) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}

		witnessed := true
		for j := 1; j < s; j++ {
			x.Exp(x, bigTwo, n)
			if x.Cmp(bigOne) == 0 {
				return false
			}
			if x.Cmp(nMinusOne) == 0 {
				witnessed = false
				break
			}
		}
		if witnessed {
			return false
		}
	}

	return true
}
