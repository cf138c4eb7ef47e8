package keys

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"

	"plain_rsa_service/internal/pkg/validators"
)

// Key is implemented by both key variants. It exposes the public half, which
// is all the public operation (encryption) ever needs.
type Key interface {
	PublicPart() *PublicKey
}

// PublicKey holds the public half of a plain RSA key pair: the public
// exponent, the modulus and its bit length.
type PublicKey struct {
	E     *big.Int
	N     *big.Int
	NBits int
}

// PublicPart returns the key itself.
func (k *PublicKey) PublicPart() *PublicKey {
	return k
}

// Export returns the public key fields as key material.
func (k *PublicKey) Export() *KeyMaterial {
	return &KeyMaterial{
		E:     k.E,
		N:     k.N,
		NBits: k.NBits,
	}
}

// PrivateKey holds a full plain RSA key pair. It embeds the public half, so a
// PrivateKey can be used anywhere a Key is expected. Instances are immutable
// after construction; concurrent read-only use is safe.
//
// Invariants maintained by the generator: P != Q and both prime, N = P*Q,
// Phi = (P-1)(Q-1), (E*D) mod Phi = 1, NBits = bit length of N.
type PrivateKey struct {
	PublicKey
	P   *big.Int
	Q   *big.Int
	Phi *big.Int
	D   *big.Int
}

// Export returns all key fields, private ones included.
func (k *PrivateKey) Export() *KeyMaterial {
	return &KeyMaterial{
		P:     k.P,
		Q:     k.Q,
		E:     k.E,
		Phi:   k.Phi,
		N:     k.N,
		D:     k.D,
		NBits: k.NBits,
	}
}

// KeyMaterial is the exported form of a key. For a public-only key the
// private fields (P, Q, Phi, D) are nil.
type KeyMaterial struct {
	P     *big.Int
	Q     *big.Int
	E     *big.Int
	Phi   *big.Int
	N     *big.Int
	D     *big.Int
	NBits int
}

// GenerationParams carries the inputs for private key construction. All
// big integer fields are optional overrides: any component left nil is
// derived by the generator.
type GenerationParams struct {
	P *big.Int `validate:"-"`
	Q *big.Int `validate:"-"`
	E *big.Int `validate:"-"`
	N *big.Int `validate:"-"`
	D *big.Int `validate:"-"`

	KeyBits        uint32 `validate:"required,keybits"`
	AllowSmallKeys bool
}

// NewGenerationParams returns parameters with the default key size and no
// component overrides.
func NewGenerationParams() *GenerationParams {
	return &GenerationParams{
		KeyBits: DefaultKeyBits,
	}
}

// Validate checks the generation parameters. A key size below the security
// floor without the small-key override yields ErrKeyTooSmall.
func (p *GenerationParams) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keybits", validators.KeyBitsValidation); err != nil {
		return fmt.Errorf("failed to register key bits validation: %w", err)
	}

	if err := validate.Struct(p); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				if fieldErr.Tag() == "keybits" {
					return fmt.Errorf("key size %d: %w", p.KeyBits, ErrKeyTooSmall)
				}
			}
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// KeyPairMeta describes a generated or imported key pair. It carries
// descriptive metadata only, never key material.
type KeyPairMeta struct {
	ID              string    `validate:"required,uuid"`
	Algorithm       string    `validate:"required,oneof=RSA"`
	KeyBits         uint32    `validate:"required"`
	Mode            string    `validate:"required,oneof=private public"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating KeyPairMeta struct
func (m *KeyPairMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(m)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// KeyPairQuery narrows and pages metadata listings.
type KeyPairQuery struct {
	Mode   string `validate:"omitempty,oneof=private public"`
	Limit  int    `validate:"gte=0"`
	Offset int    `validate:"gte=0"`
}

// Validate for validating KeyPairQuery struct
func (q *KeyPairQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for KeyPairQuery: %w", err)
	}

	return nil
}
