package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"plain_rsa_service/internal/domain/keys"
	"plain_rsa_service/internal/infrastructure/persistence/models"
	"plain_rsa_service/internal/pkg/logger"
)

type gormKeyPairRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyPairRepository creates a new GORM-based KeyPairRepository
// implementation and migrates its schema.
func NewGormKeyPairRepository(db *gorm.DB, logger logger.Logger) (keys.KeyPairRepository, error) {
	if err := db.AutoMigrate(&models.KeyPairModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate key pair schema: %w", err)
	}
	return &gormKeyPairRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeyPairRepository) Create(ctx context.Context, meta *keys.KeyPairMeta) error {
	if err := meta.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyPairModel{}
	model.FromDomain(meta)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create key pair metadata: %w", err)
	}

	r.logger.Info("Created key pair metadata with id ", meta.ID)
	return nil
}

func (r *gormKeyPairRepository) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	if query == nil {
		query = &keys.KeyPairQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeyPairModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeyPairModel{})

	if query.Mode != "" {
		dbQuery = dbQuery.Where("mode = ?", query.Mode)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch key pair metadata: %w", err)
	}

	domainList := make([]*keys.KeyPairMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormKeyPairRepository) GetByID(ctx context.Context, id string) (*keys.KeyPairMeta, error) {
	var model models.KeyPairModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("key pair metadata with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch key pair metadata: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKeyPairRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.KeyPairModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete key pair metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("key pair metadata with ID %s not found", id)
	}

	r.logger.Info("Deleted key pair metadata with id ", id)
	return nil
}
