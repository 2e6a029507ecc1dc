package memory

import (
	"context"
	"sync"

	"finance-advisor-be/internal/entity"
	"finance-advisor-be/internal/repository/contract"

	"github.com/google/uuid"
)

type AssetRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]*entity.Asset
}

func NewAssetRepository() contract.AssetRepository {
	return &AssetRepository{
		byUser: make(map[uuid.UUID][]*entity.Asset),
	}
}

func (r *AssetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *asset
	r.byUser[asset.UserId] = append(r.byUser[asset.UserId], &cp)
	return nil
}

func (r *AssetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.byUser[asset.UserId] {
		if existing.Id == asset.Id {
			cp := *asset
			r.byUser[asset.UserId][i] = &cp
			return nil
		}
	}
	return entity.ErrAssetNotFound
}

func (r *AssetRepository) Delete(ctx context.Context, userId, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assets := r.byUser[userId]
	for i, existing := range assets {
		if existing.Id == id {
			r.byUser[userId] = append(assets[:i], assets[i+1:]...)
			return nil
		}
	}
	return entity.ErrAssetNotFound
}

// FindById returns a copy; stored records are never read or written outside
// the lock.
func (r *AssetRepository) FindById(ctx context.Context, userId, id uuid.UUID) (*entity.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, existing := range r.byUser[userId] {
		if existing.Id == id {
			cp := *existing
			return &cp, nil
		}
	}
	return nil, entity.ErrAssetNotFound
}

func (r *AssetRepository) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	assets := r.byUser[userId]
	out := make([]*entity.Asset, len(assets))
	for i, existing := range assets {
		cp := *existing
		out[i] = &cp
	}
	return out, nil
}
