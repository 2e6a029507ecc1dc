// Mapper for Feature entity -> DTO conversion
package mapper

import (
	"finance-advisor-be/internal/dto"
	"finance-advisor-be/internal/entity"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToResponse(f *entity.Feature) *dto.FeatureResponse {
	if f == nil {
		return nil
	}
	return &dto.FeatureResponse{
		Id:               f.Id,
		Name:             f.Name,
		Description:      f.Description,
		Price:            f.Price,
		RequiresInput:    f.RequiresInput,
		InputLabel:       f.InputLabel,
		InputType:        f.InputType,
		InputPlaceholder: f.InputPlaceholder,
	}
}

func (m *FeatureMapper) ToResponses(features []*entity.Feature) []*dto.FeatureResponse {
	out := make([]*dto.FeatureResponse, 0, len(features))
	for _, f := range features {
		out = append(out, m.ToResponse(f))
	}
	return out
}
