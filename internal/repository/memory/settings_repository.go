package memory

import (
	"context"
	"sync"

	"finance-advisor-be/internal/entity"
	"finance-advisor-be/internal/repository/contract"

	"github.com/google/uuid"
)

type SettingsRepository struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]*entity.Settings
}

func NewSettingsRepository() contract.SettingsRepository {
	return &SettingsRepository{
		byUser: make(map[uuid.UUID]*entity.Settings),
	}
}

// Get returns a copy of the user's settings, creating defaults on first
// access. No stored pointer crosses the lock boundary.
func (r *SettingsRepository) Get(ctx context.Context, userId uuid.UUID) (*entity.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	settings, ok := r.byUser[userId]
	if !ok {
		settings = entity.DefaultSettings(userId)
		r.byUser[userId] = settings
	}
	cp := *settings
	return &cp, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *settings
	r.byUser[settings.UserId] = &cp
	return nil
}
