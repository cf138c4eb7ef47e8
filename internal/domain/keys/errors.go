package keys

import "errors"

// Error taxonomy for key construction and the raw cryptographic transforms.
// All of these are immediate, synchronous failures: an operation either fully
// succeeds or reports one of them and leaves no partial state behind.
var (
	// ErrKeyTooSmall indicates a requested key size below the 1024-bit floor
	// without the explicit small-key override.
	ErrKeyTooSmall = errors.New("key size below the 1024-bit security floor")

	// ErrMissingPublicParameters indicates a public-only key construction
	// without both the public exponent and the modulus.
	ErrMissingPublicParameters = errors.New("public-only key requires both e and n")

	// ErrKeyConsistency indicates that the post-construction self-test failed,
	// typically because custom key components do not match.
	ErrKeyConsistency = errors.New("key self-test failed")

	// ErrMessageTooLarge indicates a plaintext integer whose bit length is not
	// strictly below the modulus bit length.
	ErrMessageTooLarge = errors.New("message too large for key modulus")

	// ErrPrivateKeyRequired indicates a private-key operation attempted with a
	// public-only key.
	ErrPrivateKeyRequired = errors.New("operation requires a private key")

	// ErrUnsupportedCharacter indicates a character whose code point cannot be
	// framed in the fixed 4-digit decimal scheme.
	ErrUnsupportedCharacter = errors.New("character code point exceeds 4 decimal digits")

	// ErrEncryptionVerification indicates that the internal decrypt-and-compare
	// check after encryption did not reproduce the encoded plaintext.
	ErrEncryptionVerification = errors.New("encryption verification round trip failed")

	// ErrExponentSearchExhausted indicates that no public exponent coprime to
	// the totient was found in the search range. Not expected in normal
	// operation.
	ErrExponentSearchExhausted = errors.New("public exponent search exhausted")

	// ErrNoInverseExists indicates gcd(e, phi) != 1, so no modular inverse of
	// the public exponent exists. Not expected in normal operation.
	ErrNoInverseExists = errors.New("no modular inverse exists for public exponent")

	// ErrPrimeSearchExhausted indicates that the prime search exceeded its
	// attempt cap. The cap is far above the expected attempt count, so hitting
	// it points at a broken randomness source rather than bad luck.
	ErrPrimeSearchExhausted = errors.New("prime search exceeded attempt cap")
)
