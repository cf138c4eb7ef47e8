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

// blindingThresholdBits is the modulus size from which the private operation
// is blinded.
const blindingThresholdBits = 1023

// Blinding factors are drawn uniformly from [10^46, 10^49].
var (
	blindingLower, _ = new(big.Int).SetString("10000000000000000000000000000000000000000000000", 10)
	blindingUpper, _ = new(big.Int).SetString("10000000000000000000000000000000000000000000000000", 10)
)

// cipherEngine struct that implements the CipherEngine interface
type cipherEngine struct {
	rand   io.Reader
	logger logger.Logger
}

// NewCipherEngine creates the raw encrypt/decrypt engine. The random source
// feeds the blinding factor draw and must be cryptographically secure in
// production; nil falls back to crypto/rand.
func NewCipherEngine(rand io.Reader, logger logger.Logger) (cryptoalg.CipherEngine, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}
	return &cipherEngine{
		rand:   rand,
		logger: logger,
	}, nil
}

// Encrypt computes msg^e mod n. The message must fit strictly under the
// modulus bit length; the bound is conservative rather than bit-exact.
func (e *cipherEngine) Encrypt(msg *big.Int, key *keys.PublicKey) (*big.Int, error) {
	if key == nil {
		return nil, fmt.Errorf("public key cannot be nil")
	}
	if bitLength(msg) >= key.NBits {
		return nil, fmt.Errorf("message of %d bits does not fit under %d-bit modulus: %w",
			bitLength(msg), key.NBits, keys.ErrMessageTooLarge)
	}

	return new(big.Int).Exp(msg, key.E, key.N), nil
}

// Decrypt computes cipher^d mod n. For moduli of blindingThresholdBits and
// above the exponentiation input is blinded with a random factor r first.
//
// The unblinding step divides the result by r (integer floor division)
// instead of multiplying by the modular inverse of r mod n. That recovers
// the plaintext only while r*msg does not wrap modulo n, which holds for
// the short framed messages this engine produces but is unsound for
// arbitrary inputs. The behavior is kept as-is; callers must not treat the
// blinded path as deterministic or as a side-channel guarantee.
func (e *cipherEngine) Decrypt(cipher *big.Int, key *keys.PrivateKey) (*big.Int, error) {
	if key == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	if key.NBits < blindingThresholdBits {
		return new(big.Int).Exp(cipher, key.D, key.N), nil
	}

	span := new(big.Int).Sub(blindingUpper, blindingLower)
	span.Add(span, bigOne)
	r, err := cryptorand.Int(e.rand, span)
	if err != nil {
		return nil, fmt.Errorf("failed to draw blinding factor: %w", err)
	}
	r.Add(r, blindingLower)

	s := new(big.Int).Exp(r, key.E, key.N)
	x := new(big.Int).Mul(cipher, s)
	x.Mod(x, key.N)
	y := x.Exp(x, key.D, key.N)
	y.Div(y, r)
	return y.Mod(y, key.N), nil
}
