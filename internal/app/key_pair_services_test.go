//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plain_rsa_service/internal/domain/keys"
	"plain_rsa_service/internal/infrastructure/cryptography"
	"plain_rsa_service/internal/pkg/testutil"
)

// mockKeyPairRepository is a testify mock for the metadata repository.
type mockKeyPairRepository struct {
	mock.Mock
}

func (m *mockKeyPairRepository) Create(ctx context.Context, meta *keys.KeyPairMeta) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}

func (m *mockKeyPairRepository) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyPairMeta), args.Error(1)
}

func (m *mockKeyPairRepository) GetByID(ctx context.Context, id string) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *mockKeyPairRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupKeyPairService(t *testing.T, repo keys.KeyPairRepository) keys.KeyPairService {
	t.Helper()
	log := testutil.SetupTestLogger(t)

	generator, err := cryptography.NewDefaultKeyPairGenerator(log)
	require.NoError(t, err)

	service, err := NewKeyPairService(generator, repo, log)
	require.NoError(t, err)
	return service
}

func TestKeyPairServiceGenerate(t *testing.T) {
	repo := new(mockKeyPairRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*keys.KeyPairMeta")).Return(nil)
	service := setupKeyPairService(t, repo)

	key, meta, err := service.Generate(context.Background(), &keys.GenerationParams{
		KeyBits:        128,
		AllowSmallKeys: true,
	})
	require.NoError(t, err)

	assert.NotNil(t, key)
	assert.Equal(t, keys.AlgorithmRSA, meta.Algorithm)
	assert.Equal(t, keys.ModePrivate, meta.Mode)
	assert.Equal(t, uint32(key.NBits), meta.KeyBits)
	assert.NotEmpty(t, meta.ID)

	repo.AssertExpectations(t)
}

func TestKeyPairServiceGenerateRepositoryFailure(t *testing.T) {
	repo := new(mockKeyPairRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db unavailable"))
	service := setupKeyPairService(t, repo)

	_, _, err := service.Generate(context.Background(), &keys.GenerationParams{
		KeyBits:        128,
		AllowSmallKeys: true,
	})
	assert.ErrorContains(t, err, "db unavailable")
}

func TestKeyPairServiceGenerateInvalidParams(t *testing.T) {
	repo := new(mockKeyPairRepository)
	service := setupKeyPairService(t, repo)

	_, _, err := service.Generate(context.Background(), &keys.GenerationParams{KeyBits: 512})
	assert.ErrorIs(t, err, keys.ErrKeyTooSmall)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestKeyPairServiceImportPublic(t *testing.T) {
	repo := new(mockKeyPairRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*keys.KeyPairMeta")).Return(nil)
	service := setupKeyPairService(t, repo)

	key, meta, err := service.ImportPublic(context.Background(), big.NewInt(7), big.NewInt(3233))
	require.NoError(t, err)

	assert.Equal(t, int64(7), key.E.Int64())
	assert.Equal(t, int64(3233), key.N.Int64())
	assert.Equal(t, keys.ModePublic, meta.Mode)
	assert.Equal(t, uint32(12), meta.KeyBits)

	repo.AssertExpectations(t)
}

func TestKeyPairServiceEncryptDecrypt(t *testing.T) {
	repo := new(mockKeyPairRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	service := setupKeyPairService(t, repo)

	key, _, err := service.Generate(context.Background(), &keys.GenerationParams{
		KeyBits:        128,
		AllowSmallKeys: true,
	})
	require.NoError(t, err)

	cipher, err := service.Encrypt("test", key)
	require.NoError(t, err)

	text, err := service.Decrypt(cipher, key)
	require.NoError(t, err)
	assert.Equal(t, "test", text)

	t.Run("PublicKeyCannotDecrypt", func(t *testing.T) {
		_, err := service.Decrypt(cipher, key.PublicPart())
		assert.ErrorIs(t, err, keys.ErrPrivateKeyRequired)
	})
}
