package repositories

import (
	"context"
	"sync"

	"github.com/riskdesk/riskdesk-backend/models"
)

// InMemoryFeedbackRepository is an append-only log of reviewer feedback, scoped
// to the process lifetime. The http server handles requests concurrently, so
// every access goes through the mutex even though appends are small.
type InMemoryFeedbackRepository struct {
	mu      sync.Mutex
	records []models.FeedbackRecord
}

func NewInMemoryFeedbackRepository() *InMemoryFeedbackRepository {
	return &InMemoryFeedbackRepository{}
}

func (r *InMemoryFeedbackRepository) Append(ctx context.Context, record models.FeedbackRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
	return nil
}

// ListAll returns a snapshot copy of the log, in append order. Callers can
// iterate it without holding the repository lock.
func (r *InMemoryFeedbackRepository) ListAll(ctx context.Context) ([]models.FeedbackRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]models.FeedbackRecord, len(r.records))
	copy(snapshot, r.records)
	return snapshot, nil
}

func (r *InMemoryFeedbackRepository) Liveness(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return nil
}
