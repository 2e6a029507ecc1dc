package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdviceStatus string

const (
	AdviceStatusNotDoneYet AdviceStatus = "Not Done Yet"
	AdviceStatusDone       AdviceStatus = "Done"
)

// AdviceRequest records one purchase: the generated response is fixed at
// creation, status transitions NotDoneYet -> Done exactly once, and feedback
// is settable exactly once.
type AdviceRequest struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	FeatureId      string
	FeatureName    string // snapshot of the catalog name at purchase time
	Input          string
	Response       string
	Status         AdviceStatus
	RequestDate    time.Time
	CompletionDate *time.Time
	Feedback       *bool // nil = unset
}
