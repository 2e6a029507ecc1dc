// FILE: internal/service/advisor_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finance-advisor-be/internal/dto"
	"finance-advisor-be/internal/entity"
	"finance-advisor-be/internal/mapper"
	"finance-advisor-be/internal/pkg/logger"
	"finance-advisor-be/internal/pkg/metrics"
	"finance-advisor-be/internal/repository/contract"
	"finance-advisor-be/pkg/advice"
	"finance-advisor-be/pkg/events"

	"github.com/google/uuid"
)

type IAdvisorService interface {
	ListFeatures(ctx context.Context) ([]*dto.FeatureResponse, error)
	Purchase(ctx context.Context, userId uuid.UUID, req *dto.PurchaseAdviceRequest) (*dto.AdviceRequestResponse, error)
	ListRequests(ctx context.Context, userId uuid.UUID) ([]*dto.AdviceRequestResponse, error)
	MarkDone(ctx context.Context, userId, id uuid.UUID) (*dto.AdviceRequestResponse, error)
	ProvideFeedback(ctx context.Context, userId, id uuid.UUID, isHelpful bool) (*dto.AdviceRequestResponse, error)
}

type advisorService struct {
	featureRepo     contract.FeatureRepository
	balanceRepo     contract.BalanceRepository
	adviceRepo      contract.AdviceRepository
	generator       *advice.Generator
	publisher       IPublisherService
	logger          logger.ILogger
	processingDelay time.Duration

	featureMapper *mapper.FeatureMapper
	adviceMapper  *mapper.AdviceMapper
}

func NewAdvisorService(
	featureRepo contract.FeatureRepository,
	balanceRepo contract.BalanceRepository,
	adviceRepo contract.AdviceRepository,
	generator *advice.Generator,
	publisher IPublisherService,
	sysLogger logger.ILogger,
	processingDelay time.Duration,
) IAdvisorService {
	return &advisorService{
		featureRepo:     featureRepo,
		balanceRepo:     balanceRepo,
		adviceRepo:      adviceRepo,
		generator:       generator,
		publisher:       publisher,
		logger:          sysLogger,
		processingDelay: processingDelay,
		featureMapper:   mapper.NewFeatureMapper(),
		adviceMapper:    mapper.NewAdviceMapper(),
	}
}

func (s *advisorService) ListFeatures(ctx context.Context) ([]*dto.FeatureResponse, error) {
	features, err := s.featureRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.featureMapper.ToResponses(features), nil
}

// Purchase runs the full workflow: Validating -> Processing -> Completed.
// A validation failure mutates nothing. Once the debit lands it is never
// rolled back; the simulated processing delay happens after the debit so
// concurrent validations always see the reduced balance. Cancelling the
// caller's context abandons the wait, not the work: the response is still
// generated and the record still appended.
func (s *advisorService) Purchase(ctx context.Context, userId uuid.UUID, req *dto.PurchaseAdviceRequest) (*dto.AdviceRequestResponse, error) {
	// Validating
	feature, err := s.featureRepo.FindById(ctx, req.FeatureId)
	if err != nil {
		// The id is raw user input here; a fixed label keeps cardinality
		// bounded by the catalog.
		metrics.PurchasesTotal.WithLabelValues(metrics.FeatureUnknown, metrics.OutcomeRejected).Inc()
		return nil, err
	}

	input := strings.TrimSpace(req.Input)
	if feature.RequiresInput && input == "" {
		metrics.PurchasesTotal.WithLabelValues(feature.Id, metrics.OutcomeRejected).Inc()
		return nil, entity.ErrMissingInput
	}
	if err := s.generator.ValidateInput(feature.Id, input); err != nil {
		metrics.PurchasesTotal.WithLabelValues(feature.Id, metrics.OutcomeRejected).Inc()
		return nil, err
	}

	// Processing: debit first, atomically.
	debit := &entity.Transaction{
		Id:          uuid.New(),
		UserId:      userId,
		Type:        entity.TransactionTypeDebit,
		Amount:      feature.Price,
		Description: fmt.Sprintf("AI advice: %s", feature.Name),
		Date:        time.Now(),
	}
	if err := s.balanceRepo.Debit(ctx, debit); err != nil {
		metrics.PurchasesTotal.WithLabelValues(feature.Id, metrics.OutcomeRejected).Inc()
		return nil, err
	}

	rec := &entity.AdviceRequest{
		Id:          uuid.New(),
		UserId:      userId,
		FeatureId:   feature.Id,
		FeatureName: feature.Name,
		Input:       input,
		Status:      entity.AdviceStatusNotDoneYet,
		RequestDate: time.Now(),
	}

	// Fire-and-forget from here: the goroutine always runs to completion.
	done := make(chan struct{})
	go func() {
		defer close(done)
		started := time.Now()
		time.Sleep(s.processingDelay)

		response, genErr := s.generator.Generate(feature.Id, input)
		if genErr != nil {
			// Input was validated before the debit, so this is unexpected.
			s.logger.Error("Advisor", "Response generation failed after debit", map[string]interface{}{
				"feature_id": feature.Id,
				"error":      genErr.Error(),
			})
			response = "Analysis complete. Thank you for using our AI advisor."
		}
		rec.Response = response

		if createErr := s.adviceRepo.Create(context.Background(), rec); createErr != nil {
			s.logger.Error("Advisor", "Failed to append advice request", map[string]interface{}{
				"request_id": rec.Id,
				"error":      createErr.Error(),
			})
			return
		}

		metrics.ProcessingSeconds.Observe(time.Since(started).Seconds())
		metrics.PurchasesTotal.WithLabelValues(feature.Id, metrics.OutcomeCompleted).Inc()
		s.publishCompleted(rec)
	}()

	select {
	case <-done:
		return s.adviceMapper.ToResponse(rec), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *advisorService) publishCompleted(rec *entity.AdviceRequest) {
	if s.publisher == nil {
		return
	}
	event := events.BaseEvent{
		Type: events.TypeAdviceCompleted,
		Data: map[string]interface{}{
			"request_id": rec.Id.String(),
			"user_id":    rec.UserId.String(),
			"feature":    rec.FeatureName,
			"feature_id": rec.FeatureId,
		},
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(context.Background(), events.TopicAdviceCompleted, event); err != nil {
		s.logger.Warn("Advisor", "Failed to publish advice completed event", map[string]interface{}{
			"request_id": rec.Id,
			"error":      err.Error(),
		})
	}
}

func (s *advisorService) ListRequests(ctx context.Context, userId uuid.UUID) ([]*dto.AdviceRequestResponse, error) {
	recs, err := s.adviceRepo.FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.adviceMapper.ToResponses(recs), nil
}

func (s *advisorService) MarkDone(ctx context.Context, userId, id uuid.UUID) (*dto.AdviceRequestResponse, error) {
	rec, err := s.adviceRepo.MarkDone(ctx, userId, id, time.Now())
	if err != nil {
		return nil, err
	}
	return s.adviceMapper.ToResponse(rec), nil
}

func (s *advisorService) ProvideFeedback(ctx context.Context, userId, id uuid.UUID, isHelpful bool) (*dto.AdviceRequestResponse, error) {
	rec, err := s.adviceRepo.SetFeedback(ctx, userId, id, isHelpful)
	if err != nil {
		return nil, err
	}
	return s.adviceMapper.ToResponse(rec), nil
}
