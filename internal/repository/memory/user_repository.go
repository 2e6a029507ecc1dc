package memory

import (
	"context"
	"strings"
	"sync"

	"finance-advisor-be/internal/entity"
	"finance-advisor-be/internal/repository/contract"

	"github.com/google/uuid"
)

type UserRepository struct {
	mu      sync.RWMutex
	byId    map[uuid.UUID]*entity.User
	byEmail map[string]*entity.User
}

func NewUserRepository() contract.UserRepository {
	return &UserRepository{
		byId:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byId[user.Id] = user
	r.byEmail[normalizeEmail(user.Email)] = user
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byEmail[normalizeEmail(email)], nil
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byId[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
