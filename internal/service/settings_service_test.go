package service

import (
	"context"
	"testing"

	"finance-advisor-be/internal/dto"
	"finance-advisor-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(memory.NewSettingsRepository())

	settings, err := svc.Get(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, "system", settings.Theme)
	assert.True(t, settings.NotificationsEnabled)
}

func TestUpdateSettingsPartial(t *testing.T) {
	svc := NewSettingsService(memory.NewSettingsRepository())
	userId := uuid.New()

	theme := "dark"
	updated, err := svc.Update(context.Background(), userId, &dto.UpdateSettingsRequest{Theme: &theme})
	assert.NoError(t, err)
	assert.Equal(t, "dark", updated.Theme)
	// Untouched field keeps its default.
	assert.True(t, updated.NotificationsEnabled)

	disabled := false
	updated, err = svc.Update(context.Background(), userId, &dto.UpdateSettingsRequest{NotificationsEnabled: &disabled})
	assert.NoError(t, err)
	assert.Equal(t, "dark", updated.Theme)
	assert.False(t, updated.NotificationsEnabled)
}
