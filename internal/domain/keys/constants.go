package keys

// Algorithm constants
const (
	AlgorithmRSA = "RSA"
)

// Key mode constants
const (
	ModePrivate = "private"
	ModePublic  = "public"
)

// DefaultKeyBits is the key size used when generation parameters do not
// request one explicitly.
const DefaultKeyBits = 2048

// MinSecureKeyBits is the smallest key size accepted without the explicit
// small-key override.
const MinSecureKeyBits = 1024
