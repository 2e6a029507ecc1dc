package contract

import (
	"context"

	"finance-advisor-be/internal/entity"
)

// FeatureRepository exposes the read-only advice catalog.
type FeatureRepository interface {
	FindAll(ctx context.Context) ([]*entity.Feature, error)
	// FindById returns entity.ErrUnknownFeature when the id has no catalog entry.
	FindById(ctx context.Context, id string) (*entity.Feature, error)
}
