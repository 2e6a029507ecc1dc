package contract

import (
	"context"

	"finance-advisor-be/internal/entity"

	"github.com/google/uuid"
)

type SettingsRepository interface {
	// Get returns the user's settings, creating defaults on first access.
	Get(ctx context.Context, userId uuid.UUID) (*entity.Settings, error)
	Save(ctx context.Context, settings *entity.Settings) error
}
