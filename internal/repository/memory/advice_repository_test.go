package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"finance-advisor-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func adviceOf(userId uuid.UUID, featureId string) *entity.AdviceRequest {
	return &entity.AdviceRequest{
		Id:          uuid.New(),
		UserId:      userId,
		FeatureId:   featureId,
		Status:      entity.AdviceStatusNotDoneYet,
		RequestDate: time.Now(),
	}
}

func TestFindByUserMostRecentFirst(t *testing.T) {
	repo := NewAdviceRepository()
	userId := uuid.New()

	first := adviceOf(userId, "keep-or-sell")
	second := adviceOf(userId, "finance-news")
	assert.NoError(t, repo.Create(context.Background(), first))
	assert.NoError(t, repo.Create(context.Background(), second))

	recs, err := repo.FindByUser(context.Background(), userId)
	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, second.Id, recs[0].Id)
	assert.Equal(t, first.Id, recs[1].Id)
}

func TestMarkDoneSetsCompletionDate(t *testing.T) {
	repo := NewAdviceRepository()
	userId := uuid.New()
	rec := adviceOf(userId, "sell-asset")
	assert.NoError(t, repo.Create(context.Background(), rec))

	at := time.Now()
	updated, err := repo.MarkDone(context.Background(), userId, rec.Id, at)
	assert.NoError(t, err)
	assert.Equal(t, entity.AdviceStatusDone, updated.Status)
	assert.NotNil(t, updated.CompletionDate)
	assert.Equal(t, at, *updated.CompletionDate)
}

func TestMarkDoneIsIdempotent(t *testing.T) {
	repo := NewAdviceRepository()
	userId := uuid.New()
	rec := adviceOf(userId, "sell-asset")
	assert.NoError(t, repo.Create(context.Background(), rec))

	first := time.Now()
	_, err := repo.MarkDone(context.Background(), userId, rec.Id, first)
	assert.NoError(t, err)

	later := first.Add(time.Hour)
	updated, err := repo.MarkDone(context.Background(), userId, rec.Id, later)
	assert.NoError(t, err)
	assert.Equal(t, entity.AdviceStatusDone, updated.Status)
	assert.Equal(t, first, *updated.CompletionDate)
}

func TestMarkDoneUnknownId(t *testing.T) {
	repo := NewAdviceRepository()

	_, err := repo.MarkDone(context.Background(), uuid.New(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, entity.ErrAdviceNotFound)
}

func TestMarkDoneOtherUsersRecord(t *testing.T) {
	repo := NewAdviceRepository()
	owner := uuid.New()
	rec := adviceOf(owner, "keep-or-sell")
	assert.NoError(t, repo.Create(context.Background(), rec))

	_, err := repo.MarkDone(context.Background(), uuid.New(), rec.Id, time.Now())
	assert.ErrorIs(t, err, entity.ErrAdviceNotFound)
}

func TestFindByUserReturnsDetachedRecords(t *testing.T) {
	repo := NewAdviceRepository()
	userId := uuid.New()
	rec := adviceOf(userId, "keep-or-sell")
	assert.NoError(t, repo.Create(context.Background(), rec))

	recs, _ := repo.FindByUser(context.Background(), userId)
	recs[0].Status = entity.AdviceStatusDone
	helpful := true
	recs[0].Feedback = &helpful

	// Mutating a returned record must not touch the store.
	fresh, _ := repo.FindByUser(context.Background(), userId)
	assert.Equal(t, entity.AdviceStatusNotDoneYet, fresh[0].Status)
	assert.Nil(t, fresh[0].Feedback)

	// Nor does mutating the record passed to Create.
	rec.Status = entity.AdviceStatusDone
	fresh, _ = repo.FindByUser(context.Background(), userId)
	assert.Equal(t, entity.AdviceStatusNotDoneYet, fresh[0].Status)
}

func TestConcurrentReadsAndTransitions(t *testing.T) {
	repo := NewAdviceRepository()
	userId := uuid.New()
	rec := adviceOf(userId, "sell-asset")
	assert.NoError(t, repo.Create(context.Background(), rec))

	// Readers inspect record fields while writers transition the same record.
	// Must be clean under the race detector.
	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				recs, err := repo.FindByUser(context.Background(), userId)
				assert.NoError(t, err)
				_ = recs[0].Status
				_ = recs[0].Feedback
				_ = recs[0].CompletionDate
			}
		}()
	}

	for i := 0; i < 100; i++ {
		_, err := repo.MarkDone(context.Background(), userId, rec.Id, time.Now())
		assert.NoError(t, err)
	}
	_, err := repo.SetFeedback(context.Background(), userId, rec.Id, true)
	assert.NoError(t, err)

	close(stop)
	wg.Wait()
}

func TestSetFeedbackOnlyOnce(t *testing.T) {
	repo := NewAdviceRepository()
	userId := uuid.New()
	rec := adviceOf(userId, "finance-news")
	assert.NoError(t, repo.Create(context.Background(), rec))

	updated, err := repo.SetFeedback(context.Background(), userId, rec.Id, false)
	assert.NoError(t, err)
	assert.NotNil(t, updated.Feedback)
	assert.False(t, *updated.Feedback)

	_, err = repo.SetFeedback(context.Background(), userId, rec.Id, true)
	assert.ErrorIs(t, err, entity.ErrFeedbackAlreadySet)

	// First answer survives.
	recs, _ := repo.FindByUser(context.Background(), userId)
	assert.False(t, *recs[0].Feedback)
}
