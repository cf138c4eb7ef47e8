package cryptoalg

import (
	"math/big"

	"plain_rsa_service/internal/domain/keys"
)

// DefaultMillerRabinRounds is the operating point for production-grade
// confidence: the false-positive probability is at most 4^-128.
const DefaultMillerRabinRounds = 128

// PrimalityTester decides whether an integer is (very probably) prime.
type PrimalityTester interface {
	// IsProbablyPrime runs the given number of Miller-Rabin rounds against n.
	// A false result is always correct; a true result is wrong with
	// probability at most 4^-rounds.
	IsProbablyPrime(n *big.Int, rounds int) bool
}

// PrimeGenerator produces random primes of a requested bit length.
type PrimeGenerator interface {
	// Candidate draws a uniformly random odd integer of exactly the given bit
	// length (top and bottom bit forced to 1).
	Candidate(bits int) (*big.Int, error)

	// GeneratePrime draws candidates until one passes the primality test.
	// This is a blocking, CPU-bound operation whose expected duration grows
	// with the bit length; callers needing bounded latency must impose an
	// external deadline.
	GeneratePrime(bits int) (*big.Int, error)
}

// PublicExponentSelector finds a small public exponent coprime to a totient.
type PublicExponentSelector interface {
	// SelectPublicExponent returns the smallest odd integer in [3, 9999] none
	// of whose divisors greater than 1 divides phi, or
	// keys.ErrExponentSearchExhausted if the range holds no such integer.
	SelectPublicExponent(phi *big.Int) (*big.Int, error)
}

// ModularInverter derives the private exponent from the public one.
type ModularInverter interface {
	// ModularInverse returns d with (e*d) mod phi == 1, or
	// keys.ErrNoInverseExists when gcd(e, phi) != 1.
	ModularInverse(phi, e *big.Int) (*big.Int, error)
}

// Codec is a reversible mapping between a text message and a single large
// integer.
type Codec interface {
	// Encode maps text to an integer. Characters with code points of five or
	// more decimal digits cannot be framed and yield
	// keys.ErrUnsupportedCharacter.
	Encode(text string) (*big.Int, error)

	// Decode maps an integer produced by Encode back to the original text.
	Decode(value *big.Int) (string, error)
}

// CipherEngine performs the raw modular-exponentiation transforms.
type CipherEngine interface {
	// Encrypt computes msg^e mod n. The message bit length must be strictly
	// below the modulus bit length (keys.ErrMessageTooLarge otherwise).
	Encrypt(msg *big.Int, key *keys.PublicKey) (*big.Int, error)

	// Decrypt computes cipher^d mod n, applying a blinding transform first
	// for keys of 1023 bits and above.
	Decrypt(cipher *big.Int, key *keys.PrivateKey) (*big.Int, error)
}

// KeyPairGenerator constructs key pairs and exposes the text-level
// encrypt/decrypt operations on them.
type KeyPairGenerator interface {
	// GeneratePrivateKey builds a private key from the given parameters,
	// deriving every component not supplied as an override, and runs the
	// construction self-test before releasing the key.
	GeneratePrivateKey(params *keys.GenerationParams) (*keys.PrivateKey, error)

	// NewPublicKey wraps public components into a public-only key. Both
	// arguments are required (keys.ErrMissingPublicParameters otherwise).
	NewPublicKey(e, n *big.Int) (*keys.PublicKey, error)

	// EncryptText encodes text and encrypts it with the key's public half.
	// With a private key the result is additionally decrypted internally and
	// compared against the encoded input.
	EncryptText(text string, key keys.Key) (*big.Int, error)

	// DecryptText decrypts an integer ciphertext and decodes it back to text.
	// Requires a private key (keys.ErrPrivateKeyRequired otherwise).
	DecryptText(cipher *big.Int, key keys.Key) (string, error)
}
