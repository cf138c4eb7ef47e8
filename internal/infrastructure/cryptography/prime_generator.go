package cryptography

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
	"math/big"

	"plain_rsa_service/internal/domain/cryptoalg"
	"plain_rsa_service/internal/domain/keys"
	"plain_rsa_service/internal/pkg/logger"
)

// candidateAttemptsPerBit bounds the search loop. The expected number of
// candidates for a b-bit prime is roughly 0.35*b once even numbers are
// excluded, so the cap is hit only when the randomness source is broken.
const candidateAttemptsPerBit = 10000

// primeGenerator struct that implements the PrimeGenerator interface
type primeGenerator struct {
	rand   io.Reader
	tester cryptoalg.PrimalityTester
	rounds int
	logger logger.Logger
}

// NewPrimeGenerator creates a prime generator drawing candidates from the
// given source, which must be cryptographically secure in production. A nil
// source falls back to crypto/rand. Non-positive rounds select the default
// Miller-Rabin operating point.
func NewPrimeGenerator(rand io.Reader, tester cryptoalg.PrimalityTester, rounds int, logger logger.Logger) (cryptoalg.PrimeGenerator, error) {
	if tester == nil {
		return nil, fmt.Errorf("primality tester cannot be nil")
	}
	if rand == nil {
		rand = cryptorand.Reader
	}
	if rounds <= 0 {
		rounds = cryptoalg.DefaultMillerRabinRounds
	}
	return &primeGenerator{
		rand:   rand,
		tester: tester,
		rounds: rounds,
		logger: logger,
	}, nil
}

// Candidate draws a uniformly random integer of exactly bits bits with the
// top and bottom bit forced to 1, guaranteeing the bit length and oddness.
func (g *primeGenerator) Candidate(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("candidate bit length must be at least 2, got %d", bits)
	}

	limit := new(big.Int).Lsh(bigOne, uint(bits))
	candidate, err := cryptorand.Int(g.rand, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to draw prime candidate: %w", err)
	}

	candidate.SetBit(candidate, bits-1, 1)
	candidate.SetBit(candidate, 0, 1)
	return candidate, nil
}

// GeneratePrime draws candidates until one passes the primality test.
func (g *primeGenerator) GeneratePrime(bits int) (*big.Int, error) {
	maxAttempts := candidateAttemptsPerBit * bits
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate, err := g.Candidate(bits)
		if err != nil {
			return nil, err
		}
		if g.tester.IsProbablyPrime(candidate, g.rounds) {
			g.logger.Info("Generated ", bits, "-bit prime after ", attempt, " candidates")
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("no %d-bit prime in %d candidates: %w", bits, maxAttempts, keys.ErrPrimeSearchExhausted)
}
