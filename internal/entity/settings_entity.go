package entity

import (
	"time"

	"github.com/google/uuid"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Settings holds the superficial per-user preferences. The notifications
// toggle gates websocket pushes.
type Settings struct {
	UserId               uuid.UUID
	Theme                Theme
	NotificationsEnabled bool
	UpdatedAt            time.Time
}

func DefaultSettings(userId uuid.UUID) *Settings {
	return &Settings{
		UserId:               userId,
		Theme:                ThemeSystem,
		NotificationsEnabled: true,
		UpdatedAt:            time.Now(),
	}
}
