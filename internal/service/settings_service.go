// FILE: internal/service/settings_service.go
package service

import (
	"context"
	"time"

	"finance-advisor-be/internal/dto"
	"finance-advisor-be/internal/entity"
	"finance-advisor-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ISettingsService interface {
	Get(ctx context.Context, userId uuid.UUID) (*dto.SettingsResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type settingsService struct {
	settingsRepo contract.SettingsRepository
}

func NewSettingsService(settingsRepo contract.SettingsRepository) ISettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Get(ctx context.Context, userId uuid.UUID) (*dto.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx, userId)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func (s *settingsService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx, userId)
	if err != nil {
		return nil, err
	}

	updated := *settings
	if req.Theme != nil {
		updated.Theme = entity.Theme(*req.Theme)
	}
	if req.NotificationsEnabled != nil {
		updated.NotificationsEnabled = *req.NotificationsEnabled
	}
	updated.UpdatedAt = time.Now()

	if err := s.settingsRepo.Save(ctx, &updated); err != nil {
		return nil, err
	}
	return toSettingsResponse(&updated), nil
}

func toSettingsResponse(settings *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Theme:                string(settings.Theme),
		NotificationsEnabled: settings.NotificationsEnabled,
	}
}
