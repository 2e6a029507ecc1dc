// Mapper for Asset entity -> DTO conversion
package mapper

import (
	"finance-advisor-be/internal/dto"
	"finance-advisor-be/internal/entity"
)

type AssetMapper struct{}

func NewAssetMapper() *AssetMapper {
	return &AssetMapper{}
}

func (m *AssetMapper) ToResponse(a *entity.Asset) *dto.AssetResponse {
	if a == nil {
		return nil
	}
	return &dto.AssetResponse{
		Id:          a.Id,
		Name:        a.Name,
		Type:        string(a.Type),
		Ticker:      a.Ticker,
		Value:       a.Value,
		Platform:    a.Platform,
		Performance: a.Performance,
		Notes:       a.Notes,
		LastUpdated: a.LastUpdated,
	}
}

func (m *AssetMapper) ToResponses(assets []*entity.Asset) []*dto.AssetResponse {
	out := make([]*dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, m.ToResponse(a))
	}
	return out
}
