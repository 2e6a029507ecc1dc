package memory

import (
	"context"
	"testing"
	"time"

	"finance-advisor-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFindByEmailNormalizes(t *testing.T) {
	repo := NewUserRepository()
	user := &entity.User{
		Id:        uuid.New(),
		Email:     "User@Example.com",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, repo.Create(context.Background(), user))

	found, err := repo.FindByEmail(context.Background(), "  user@example.COM ")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, user.Id, found.Id)
}

func TestFindByEmailMissingReturnsNilNil(t *testing.T) {
	repo := NewUserRepository()

	found, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindByIdUnknown(t *testing.T) {
	repo := NewUserRepository()

	_, err := repo.FindById(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}
