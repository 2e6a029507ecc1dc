package memory

import (
	"context"
	"sync"
	"time"

	"finance-advisor-be/internal/entity"
	"finance-advisor-be/internal/repository/contract"

	"github.com/google/uuid"
)

type AdviceRepository struct {
	mu     sync.Mutex
	byUser map[uuid.UUID][]*entity.AdviceRequest
	byId   map[uuid.UUID]*entity.AdviceRequest
}

func NewAdviceRepository() contract.AdviceRepository {
	return &AdviceRepository{
		byUser: make(map[uuid.UUID][]*entity.AdviceRequest),
		byId:   make(map[uuid.UUID]*entity.AdviceRequest),
	}
}

// cloneAdvice deep-copies a record. Stored records are only ever touched
// under the mutex; every pointer that crosses the lock boundary is a copy, so
// callers can read results while MarkDone/SetFeedback mutate the original.
func cloneAdvice(rec *entity.AdviceRequest) *entity.AdviceRequest {
	cp := *rec
	if rec.CompletionDate != nil {
		at := *rec.CompletionDate
		cp.CompletionDate = &at
	}
	if rec.Feedback != nil {
		helpful := *rec.Feedback
		cp.Feedback = &helpful
	}
	return &cp
}

func (r *AdviceRepository) Create(ctx context.Context, rec *entity.AdviceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := cloneAdvice(rec)
	r.byId[stored.Id] = stored
	// Most recent first.
	r.byUser[stored.UserId] = append([]*entity.AdviceRequest{stored}, r.byUser[stored.UserId]...)
	return nil
}

func (r *AdviceRepository) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.AdviceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.byUser[userId]
	out := make([]*entity.AdviceRequest, len(list))
	for i, rec := range list {
		out[i] = cloneAdvice(rec)
	}
	return out, nil
}

func (r *AdviceRepository) MarkDone(ctx context.Context, userId, id uuid.UUID, at time.Time) (*entity.AdviceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, err := r.owned(userId, id)
	if err != nil {
		return nil, err
	}
	if rec.Status == entity.AdviceStatusDone {
		// Idempotent: status and completion date keep their first values.
		return cloneAdvice(rec), nil
	}
	rec.Status = entity.AdviceStatusDone
	rec.CompletionDate = &at
	return cloneAdvice(rec), nil
}

func (r *AdviceRepository) SetFeedback(ctx context.Context, userId, id uuid.UUID, helpful bool) (*entity.AdviceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, err := r.owned(userId, id)
	if err != nil {
		return nil, err
	}
	if rec.Feedback != nil {
		return nil, entity.ErrFeedbackAlreadySet
	}
	rec.Feedback = &helpful
	return cloneAdvice(rec), nil
}

// owned resolves id within userId's records. Caller holds the lock.
func (r *AdviceRepository) owned(userId, id uuid.UUID) (*entity.AdviceRequest, error) {
	rec, ok := r.byId[id]
	if !ok || rec.UserId != userId {
		return nil, entity.ErrAdviceNotFound
	}
	return rec, nil
}
