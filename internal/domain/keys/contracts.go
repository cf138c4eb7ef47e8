package keys

import (
	"context"
	"math/big"
)

// KeyPairService defines the application-level operations on key pairs:
// generation and import with metadata bookkeeping, plus the text
// encrypt/decrypt surface.
type KeyPairService interface {
	// Generate constructs a new private key from the given parameters,
	// records its metadata and returns both.
	Generate(ctx context.Context, params *GenerationParams) (*PrivateKey, *KeyPairMeta, error)

	// ImportPublic wraps externally supplied public components into a
	// public-only key and records its metadata.
	ImportPublic(ctx context.Context, e, n *big.Int) (*PublicKey, *KeyPairMeta, error)

	// Encrypt encrypts a text message with the given key and returns the
	// integer ciphertext.
	Encrypt(text string, key Key) (*big.Int, error)

	// Decrypt decrypts an integer ciphertext back to the original text.
	// It fails with ErrPrivateKeyRequired for public-only keys.
	Decrypt(cipher *big.Int, key Key) (string, error)
}

// KeyPairRepository defines the interface for key pair metadata persistence.
type KeyPairRepository interface {
	Create(ctx context.Context, meta *KeyPairMeta) error
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)
	GetByID(ctx context.Context, id string) (*KeyPairMeta, error)
	DeleteByID(ctx context.Context, id string) error
}
