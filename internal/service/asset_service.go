// FILE: internal/service/asset_service.go
package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"finance-advisor-be/internal/dto"
	"finance-advisor-be/internal/entity"
	"finance-advisor-be/internal/mapper"
	"finance-advisor-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IAssetService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAssetRequest) (*dto.AssetResponse, error)
	Update(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateAssetRequest) (*dto.AssetResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID, assetType, sortBy string) ([]*dto.AssetResponse, error)
	Summary(ctx context.Context, userId uuid.UUID) (*dto.PortfolioSummaryResponse, error)
}

type assetService struct {
	assetRepo   contract.AssetRepository
	assetMapper *mapper.AssetMapper
}

func NewAssetService(assetRepo contract.AssetRepository) IAssetService {
	return &assetService{
		assetRepo:   assetRepo,
		assetMapper: mapper.NewAssetMapper(),
	}
}

func (s *assetService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	asset := &entity.Asset{
		Id:          uuid.New(),
		UserId:      userId,
		Name:        req.Name,
		Type:        entity.AssetType(req.Type),
		Ticker:      strings.ToUpper(strings.TrimSpace(req.Ticker)),
		Value:       req.Value,
		Platform:    req.Platform,
		Performance: req.Performance,
		Notes:       req.Notes,
		LastUpdated: time.Now(),
		CreatedAt:   time.Now(),
	}
	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return s.assetMapper.ToResponse(asset), nil
}

func (s *assetService) Update(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := s.assetRepo.FindById(ctx, userId, id)
	if err != nil {
		return nil, err
	}

	updated := *asset
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Ticker != nil {
		updated.Ticker = strings.ToUpper(strings.TrimSpace(*req.Ticker))
	}
	if req.Value != nil {
		updated.Value = *req.Value
	}
	if req.Platform != nil {
		updated.Platform = *req.Platform
	}
	if req.Performance != nil {
		updated.Performance = *req.Performance
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	updated.LastUpdated = time.Now()

	if err := s.assetRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return s.assetMapper.ToResponse(&updated), nil
}

func (s *assetService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	return s.assetRepo.Delete(ctx, userId, id)
}

// List returns the user's assets with optional type filter and sort order
// (value, name or performance; value descending by default).
func (s *assetService) List(ctx context.Context, userId uuid.UUID, assetType, sortBy string) ([]*dto.AssetResponse, error) {
	assets, err := s.assetRepo.FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	if assetType != "" {
		filtered := assets[:0]
		for _, a := range assets {
			if string(a.Type) == assetType {
				filtered = append(filtered, a)
			}
		}
		assets = filtered
	}

	switch sortBy {
	case "name":
		sort.SliceStable(assets, func(i, j int) bool {
			return strings.ToLower(assets[i].Name) < strings.ToLower(assets[j].Name)
		})
	case "performance":
		sort.SliceStable(assets, func(i, j int) bool {
			return assets[i].Performance > assets[j].Performance
		})
	default:
		sort.SliceStable(assets, func(i, j int) bool {
			return assets[i].Value.GreaterThan(assets[j].Value)
		})
	}

	return s.assetMapper.ToResponses(assets), nil
}

// Summary aggregates total portfolio value and allocation by type and by
// platform, in decimals.
func (s *assetService) Summary(ctx context.Context, userId uuid.UUID) (*dto.PortfolioSummaryResponse, error) {
	assets, err := s.assetRepo.FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	byType := make(map[string]decimal.Decimal)
	byPlatform := make(map[string]decimal.Decimal)
	for _, a := range assets {
		total = total.Add(a.Value)
		byType[string(a.Type)] = byType[string(a.Type)].Add(a.Value)
		byPlatform[a.Platform] = byPlatform[a.Platform].Add(a.Value)
	}

	return &dto.PortfolioSummaryResponse{
		TotalValue:  total,
		TotalAssets: len(assets),
		ByType:      toSlices(byType),
		ByPlatform:  toSlices(byPlatform),
	}, nil
}

func toSlices(m map[string]decimal.Decimal) []dto.AllocationSlice {
	out := make([]dto.AllocationSlice, 0, len(m))
	for name, value := range m {
		out = append(out, dto.AllocationSlice{Name: name, Value: value})
	}
	// Largest slice first, stable order for equal values.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value.Equal(out[j].Value) {
			return out[i].Name < out[j].Name
		}
		return out[i].Value.GreaterThan(out[j].Value)
	})
	return out
}
