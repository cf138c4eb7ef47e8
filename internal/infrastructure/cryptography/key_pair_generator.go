package cryptography

import (
	"fmt"
	"math/big"

	"plain_rsa_service/internal/domain/cryptoalg"
	"plain_rsa_service/internal/domain/keys"
	"plain_rsa_service/internal/pkg/config"
	"plain_rsa_service/internal/pkg/logger"
)

// selfTestSentinel is the fixed plaintext round-tripped after construction.
const selfTestSentinel = 12

// keyPairGenerator struct that implements the KeyPairGenerator interface
type keyPairGenerator struct {
	primes    cryptoalg.PrimeGenerator
	exponents cryptoalg.PublicExponentSelector
	inverter  cryptoalg.ModularInverter
	codec     cryptoalg.Codec
	engine    cryptoalg.CipherEngine
	logger    logger.Logger

	// applied when generation parameters leave KeyBits unset
	defaultKeyBits uint32
	allowSmallKeys bool
}

// NewKeyPairGenerator creates a key pair generator from its numeric
// components.
func NewKeyPairGenerator(
	primes cryptoalg.PrimeGenerator,
	exponents cryptoalg.PublicExponentSelector,
	inverter cryptoalg.ModularInverter,
	codec cryptoalg.Codec,
	engine cryptoalg.CipherEngine,
	logger logger.Logger,
) (cryptoalg.KeyPairGenerator, error) {
	if primes == nil || exponents == nil || inverter == nil || codec == nil || engine == nil {
		return nil, fmt.Errorf("all numeric engine components are required")
	}
	return &keyPairGenerator{
		primes:         primes,
		exponents:      exponents,
		inverter:       inverter,
		codec:          codec,
		engine:         engine,
		logger:         logger,
		defaultKeyBits: keys.DefaultKeyBits,
	}, nil
}

// newGenerator wires the numeric components over crypto/rand with the given
// Miller-Rabin operating point.
func newGenerator(rounds int, logger logger.Logger) (*keyPairGenerator, error) {
	tester, err := NewMillerRabinTester(nil, logger)
	if err != nil {
		return nil, err
	}
	primes, err := NewPrimeGenerator(nil, tester, rounds, logger)
	if err != nil {
		return nil, err
	}
	exponents, err := NewPublicExponentSelector(logger)
	if err != nil {
		return nil, err
	}
	inverter, err := NewModularInverter(logger)
	if err != nil {
		return nil, err
	}
	codec, err := NewDecimalCodec()
	if err != nil {
		return nil, err
	}
	engine, err := NewCipherEngine(nil, logger)
	if err != nil {
		return nil, err
	}
	return &keyPairGenerator{
		primes:         primes,
		exponents:      exponents,
		inverter:       inverter,
		codec:          codec,
		engine:         engine,
		logger:         logger,
		defaultKeyBits: keys.DefaultKeyBits,
	}, nil
}

// NewDefaultKeyPairGenerator wires a generator over crypto/rand with the
// default Miller-Rabin operating point.
func NewDefaultKeyPairGenerator(logger logger.Logger) (cryptoalg.KeyPairGenerator, error) {
	g, err := newGenerator(cryptoalg.DefaultMillerRabinRounds, logger)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// NewKeyPairGeneratorFromSettings wires a generator over crypto/rand using
// the configured Miller-Rabin operating point and key size defaults.
func NewKeyPairGeneratorFromSettings(settings *config.KeyGenerationSettings, logger logger.Logger) (cryptoalg.KeyPairGenerator, error) {
	if settings == nil {
		return nil, fmt.Errorf("key generation settings are required")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid key generation settings: %w", err)
	}

	g, err := newGenerator(settings.MillerRabinRounds, logger)
	if err != nil {
		return nil, err
	}
	g.defaultKeyBits = settings.DefaultKeyBits
	g.allowSmallKeys = settings.AllowSmallKeys
	return g, nil
}

// GeneratePrivateKey builds a private key, deriving every component the
// parameters do not supply: p and a distinct q at KeyBits/2 bits each,
// phi = (p-1)(q-1), e from the exponent search, n = p*q and d from the
// modular inverse. A zero KeyBits takes the generator's configured default.
// The key is released only after the self-test passes.
func (g *keyPairGenerator) GeneratePrivateKey(params *keys.GenerationParams) (*keys.PrivateKey, error) {
	if params == nil {
		params = &keys.GenerationParams{}
	}
	if params.KeyBits == 0 {
		defaulted := *params
		defaulted.KeyBits = g.defaultKeyBits
		defaulted.AllowSmallKeys = defaulted.AllowSmallKeys || g.allowSmallKeys
		params = &defaulted
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	halfBits := int(params.KeyBits) / 2

	p := params.P
	if p == nil {
		generated, err := g.primes.GeneratePrime(halfBits)
		if err != nil {
			return nil, fmt.Errorf("failed to generate p: %w", err)
		}
		p = generated
	}

	q := params.Q
	if q == nil {
		for {
			generated, err := g.primes.GeneratePrime(halfBits)
			if err != nil {
				return nil, fmt.Errorf("failed to generate q: %w", err)
			}
			if generated.Cmp(p) != 0 {
				q = generated
				break
			}
		}
	}

	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, bigOne),
		new(big.Int).Sub(q, bigOne),
	)

	e := params.E
	if e == nil {
		selected, err := g.exponents.SelectPublicExponent(phi)
		if err != nil {
			return nil, fmt.Errorf("failed to derive public exponent: %w", err)
		}
		e = selected
	}

	n := params.N
	if n == nil {
		n = new(big.Int).Mul(p, q)
	}

	d := params.D
	if d == nil {
		inverse, err := g.inverter.ModularInverse(phi, e)
		if err != nil {
			return nil, fmt.Errorf("failed to derive private exponent: %w", err)
		}
		d = inverse
	}

	key := &keys.PrivateKey{
		PublicKey: keys.PublicKey{
			E:     e,
			N:     n,
			NBits: bitLength(n),
		},
		P:   p,
		Q:   q,
		Phi: phi,
		D:   d,
	}

	if err := g.selfTest(key); err != nil {
		return nil, err
	}

	g.logger.Info("Generated ", key.NBits, "-bit RSA key pair")
	return key, nil
}

// NewPublicKey wraps externally supplied public components into a
// public-only key.
func (g *keyPairGenerator) NewPublicKey(e, n *big.Int) (*keys.PublicKey, error) {
	if e == nil || n == nil {
		return nil, fmt.Errorf("e and n must both be supplied: %w", keys.ErrMissingPublicParameters)
	}
	return &keys.PublicKey{
		E:     e,
		N:     n,
		NBits: bitLength(n),
	}, nil
}

// selfTest verifies (e*d) mod phi == 1 and round-trips the sentinel
// plaintext through the engine. Failure aborts construction.
func (g *keyPairGenerator) selfTest(key *keys.PrivateKey) error {
	check := new(big.Int).Mul(key.E, key.D)
	check.Mod(check, key.Phi)
	if check.Cmp(bigOne) != 0 {
		return fmt.Errorf("(e*d) mod phi != 1: %w", keys.ErrKeyConsistency)
	}

	sentinel := big.NewInt(selfTestSentinel)
	cipher, err := g.engine.Encrypt(sentinel, key.PublicPart())
	if err != nil {
		return fmt.Errorf("self-test encrypt failed: %w", keys.ErrKeyConsistency)
	}
	plain, err := g.engine.Decrypt(cipher, key)
	if err != nil {
		return fmt.Errorf("self-test decrypt failed: %w", keys.ErrKeyConsistency)
	}
	if plain.Cmp(sentinel) != 0 {
		return fmt.Errorf("self-test round trip mismatch: %w", keys.ErrKeyConsistency)
	}
	return nil
}

// EncryptText encodes text and encrypts it with the key's public half. With
// a private key the ciphertext is additionally decrypted internally and
// compared against the encoded input, catching misconfigured custom keys.
func (g *keyPairGenerator) EncryptText(text string, key keys.Key) (*big.Int, error) {
	encoded, err := g.codec.Encode(text)
	if err != nil {
		return nil, err
	}

	cipher, err := g.engine.Encrypt(encoded, key.PublicPart())
	if err != nil {
		return nil, err
	}

	if priv, ok := key.(*keys.PrivateKey); ok {
		roundTrip, err := g.engine.Decrypt(cipher, priv)
		if err != nil {
			return nil, fmt.Errorf("verification decrypt failed: %w", err)
		}
		if roundTrip.Cmp(encoded) != 0 {
			return nil, fmt.Errorf("ciphertext does not decrypt back to input: %w", keys.ErrEncryptionVerification)
		}
	}

	return cipher, nil
}

// DecryptText decrypts an integer ciphertext and decodes the original text.
func (g *keyPairGenerator) DecryptText(cipher *big.Int, key keys.Key) (string, error) {
	priv, ok := key.(*keys.PrivateKey)
	if !ok {
		return "", fmt.Errorf("decrypt with public-only key: %w", keys.ErrPrivateKeyRequired)
	}

	plain, err := g.engine.Decrypt(cipher, priv)
	if err != nil {
		return "", err
	}

	return g.codec.Decode(plain)
}
