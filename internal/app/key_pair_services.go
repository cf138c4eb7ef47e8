package app

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"plain_rsa_service/internal/domain/cryptoalg"
	"plain_rsa_service/internal/domain/keys"
	"plain_rsa_service/internal/pkg/logger"
)

// keyPairService implements the KeyPairService interface by orchestrating
// the key pair generator and the metadata repository
type keyPairService struct {
	generator   cryptoalg.KeyPairGenerator
	keyPairRepo keys.KeyPairRepository
	logger      logger.Logger
}

// NewKeyPairService creates a new keyPairService instance
func NewKeyPairService(
	generator cryptoalg.KeyPairGenerator,
	keyPairRepo keys.KeyPairRepository,
	logger logger.Logger,
) (keys.KeyPairService, error) {
	return &keyPairService{
		generator:   generator,
		keyPairRepo: keyPairRepo,
		logger:      logger,
	}, nil
}

// Generate constructs a new private key from the given parameters and
// records its metadata.
func (s *keyPairService) Generate(ctx context.Context, params *keys.GenerationParams) (*keys.PrivateKey, *keys.KeyPairMeta, error) {
	if params == nil {
		params = keys.NewGenerationParams()
	}

	key, err := s.generator.GeneratePrivateKey(params)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	meta := &keys.KeyPairMeta{
		ID:              uuid.New().String(),
		Algorithm:       keys.AlgorithmRSA,
		KeyBits:         uint32(key.NBits),
		Mode:            keys.ModePrivate,
		DateTimeCreated: time.Now(),
	}

	if err := s.keyPairRepo.Create(ctx, meta); err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	return key, meta, nil
}

// ImportPublic wraps externally supplied public components into a
// public-only key and records its metadata.
func (s *keyPairService) ImportPublic(ctx context.Context, e, n *big.Int) (*keys.PublicKey, *keys.KeyPairMeta, error) {
	key, err := s.generator.NewPublicKey(e, n)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	meta := &keys.KeyPairMeta{
		ID:              uuid.New().String(),
		Algorithm:       keys.AlgorithmRSA,
		KeyBits:         uint32(key.NBits),
		Mode:            keys.ModePublic,
		DateTimeCreated: time.Now(),
	}

	if err := s.keyPairRepo.Create(ctx, meta); err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	return key, meta, nil
}

// Encrypt encrypts a text message with the given key.
func (s *keyPairService) Encrypt(text string, key keys.Key) (*big.Int, error) {
	cipher, err := s.generator.EncryptText(text, key)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Encrypted message of ", len(text), " characters")
	return cipher, nil
}

// Decrypt decrypts an integer ciphertext back to the original text.
func (s *keyPairService) Decrypt(cipher *big.Int, key keys.Key) (string, error) {
	text, err := s.generator.DecryptText(cipher, key)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}

	s.logger.Info("Decrypted message of ", len(text), " characters")
	return text, nil
}
