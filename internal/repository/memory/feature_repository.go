// Package memory holds the in-memory store implementations. All state in
// this system is mock state held in process, so these are the only
// implementations of the repository contracts.
package memory

import (
	"context"

	"finance-advisor-be/internal/entity"
	"finance-advisor-be/internal/repository/contract"
)

type FeatureRepository struct {
	ordered []*entity.Feature
	byId    map[string]*entity.Feature
}

// NewFeatureRepository seeds the catalog once at startup. The repository is
// read-only afterwards, so no locking is needed.
func NewFeatureRepository(features []*entity.Feature) contract.FeatureRepository {
	byId := make(map[string]*entity.Feature, len(features))
	for _, f := range features {
		byId[f.Id] = f
	}
	return &FeatureRepository{
		ordered: features,
		byId:    byId,
	}
}

func (r *FeatureRepository) FindAll(ctx context.Context) ([]*entity.Feature, error) {
	out := make([]*entity.Feature, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

func (r *FeatureRepository) FindById(ctx context.Context, id string) (*entity.Feature, error) {
	f, ok := r.byId[id]
	if !ok {
		return nil, entity.ErrUnknownFeature
	}
	return f, nil
}
