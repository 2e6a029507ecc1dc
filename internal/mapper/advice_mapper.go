// Mapper for AdviceRequest entity -> DTO conversion
package mapper

import (
	"finance-advisor-be/internal/dto"
	"finance-advisor-be/internal/entity"
)

type AdviceMapper struct{}

func NewAdviceMapper() *AdviceMapper {
	return &AdviceMapper{}
}

func (m *AdviceMapper) ToResponse(rec *entity.AdviceRequest) *dto.AdviceRequestResponse {
	if rec == nil {
		return nil
	}
	return &dto.AdviceRequestResponse{
		Id:             rec.Id,
		UserId:         rec.UserId,
		FeatureId:      rec.FeatureId,
		Feature:        rec.FeatureName,
		Input:          rec.Input,
		Response:       rec.Response,
		Status:         string(rec.Status),
		RequestDate:    rec.RequestDate,
		CompletionDate: rec.CompletionDate,
		Feedback:       rec.Feedback,
	}
}

func (m *AdviceMapper) ToResponses(recs []*entity.AdviceRequest) []*dto.AdviceRequestResponse {
	out := make([]*dto.AdviceRequestResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, m.ToResponse(rec))
	}
	return out
}
