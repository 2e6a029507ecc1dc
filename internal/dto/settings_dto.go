package dto

type UpdateSettingsRequest struct {
	Theme                *string `json:"theme,omitempty" validate:"omitempty,oneof=light dark system"`
	NotificationsEnabled *bool   `json:"notifications_enabled,omitempty"`
}

type SettingsResponse struct {
	Theme                string `json:"theme"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}
