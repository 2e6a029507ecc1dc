package contract

import (
	"context"
	"time"

	"finance-advisor-be/internal/entity"

	"github.com/google/uuid"
)

// AdviceRepository is the advice request ledger. New records go to the front
// of the sequence; default iteration order is most recent first.
type AdviceRepository interface {
	Create(ctx context.Context, rec *entity.AdviceRequest) error

	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.AdviceRequest, error)

	// MarkDone transitions NotDoneYet -> Done and sets the completion date.
	// Repeat calls are no-ops returning the unchanged record. Unknown ids,
	// and ids owned by another user, fail with entity.ErrAdviceNotFound.
	MarkDone(ctx context.Context, userId, id uuid.UUID, at time.Time) (*entity.AdviceRequest, error)

	// SetFeedback stores the boolean feedback exactly once. A second call
	// fails with entity.ErrFeedbackAlreadySet and leaves the value untouched.
	SetFeedback(ctx context.Context, userId, id uuid.UUID, helpful bool) (*entity.AdviceRequest, error)
}
