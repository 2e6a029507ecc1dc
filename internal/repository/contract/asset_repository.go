package contract

import (
	"context"

	"finance-advisor-be/internal/entity"

	"github.com/google/uuid"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	Update(ctx context.Context, asset *entity.Asset) error
	// Delete fails with entity.ErrAssetNotFound for unknown or foreign ids.
	Delete(ctx context.Context, userId, id uuid.UUID) error
	FindById(ctx context.Context, userId, id uuid.UUID) (*entity.Asset, error)
	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Asset, error)
}
