package cryptography

import (
	"fmt"
	"math/big"

	"plain_rsa_service/internal/domain/cryptoalg"
	"plain_rsa_service/internal/domain/keys"
	"plain_rsa_service/internal/pkg/logger"
)

// Search range for the public exponent: odd integers in [3, 9999].
const maxPublicExponent = 9999

// exponentSelector struct that implements the PublicExponentSelector interface
type exponentSelector struct {
	logger logger.Logger
}

// NewPublicExponentSelector creates a selector for small public exponents.
func NewPublicExponentSelector(logger logger.Logger) (cryptoalg.PublicExponentSelector, error) {
	return &exponentSelector{
		logger: logger,
	}, nil
}

// SelectPublicExponent returns the smallest odd integer in [3, 9999] that is
// coprime to phi. Coprimality is established by enumerating the candidate's
// divisors greater than 1: any common factor of the candidate and phi must
// appear among them.
func (s *exponentSelector) SelectPublicExponent(phi *big.Int) (*big.Int, error) {
	mod := new(big.Int)
	divisor := new(big.Int)

	for i := 3; i <= maxPublicExponent; i += 2 {
		coprime := true
		for _, d := range divisorsAboveOne(i) {
			divisor.SetInt64(int64(d))
			if mod.Mod(phi, divisor).Sign() == 0 {
				coprime = false
				break
			}
		}
		if coprime {
			return big.NewInt(int64(i)), nil
		}
	}

	return nil, fmt.Errorf("no odd exponent in [3, %d] coprime to totient: %w", maxPublicExponent, keys.ErrExponentSearchExhausted)
}

// divisorsAboveOne returns every divisor of n greater than 1, collecting both
// members of each divisor pair found by trial division up to the square root.
func divisorsAboveOne(n int) []int {
	var divisors []int
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		if i > 1 {
			divisors = append(divisors, i)
		}
		if pair := n / i; pair > 1 && pair != i {
			divisors = append(divisors, pair)
		}
	}
	return divisors
}
