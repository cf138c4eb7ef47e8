package cryptography

import (
	"fmt"
	"math/big"

	"plain_rsa_service/internal/domain/cryptoalg"
	"plain_rsa_service/internal/domain/keys"
	"plain_rsa_service/internal/pkg/logger"
)

// modularInverter struct that implements the ModularInverter interface
type modularInverter struct {
	logger logger.Logger
}

// NewModularInverter creates a modular inverter for private exponent
// derivation.
func NewModularInverter(logger logger.Logger) (cryptoalg.ModularInverter, error) {
	return &modularInverter{
		logger: logger,
	}, nil
}

// ModularInverse computes d with (e*d) mod phi == 1 via an extended-Euclid
// recurrence over the parallel state pairs (phi, e) and (phi, 1). The gcd
// precheck is required: without it the recurrence never terminates when no
// inverse exists.
func (m *modularInverter) ModularInverse(phi, e *big.Int) (*big.Int, error) {
	if phi == nil || e == nil {
		return nil, fmt.Errorf("totient and exponent cannot be nil")
	}

	gcd := new(big.Int).GCD(nil, nil, e, phi)
	if gcd.Cmp(bigOne) != 0 {
		return nil, fmt.Errorf("gcd(e, phi) = %s: %w", gcd, keys.ErrNoInverseExists)
	}

	t1a := new(big.Int).Set(phi)
	t1b := new(big.Int).Set(e)
	t2a := new(big.Int).Set(phi)
	t2b := big.NewInt(1)

	quotient := new(big.Int)
	product := new(big.Int)
	for t1b.Cmp(bigOne) != 0 {
		quotient.Div(t1a, t1b)

		next1 := new(big.Int).Sub(t1a, product.Mul(quotient, t1b))
		next2 := new(big.Int).Sub(t2a, product.Mul(quotient, t2b))
		for next2.Sign() < 0 {
			next2.Add(next2, phi)
		}

		t1a, t1b = t1b, next1
		t2a, t2b = t2b, next2
	}

	return t2b, nil
}
