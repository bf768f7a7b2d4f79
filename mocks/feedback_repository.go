package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/riskdesk/riskdesk-backend/models"
)

type FeedbackRepository struct {
	mock.Mock
}

func (r *FeedbackRepository) Append(ctx context.Context, record models.FeedbackRecord) error {
	args := r.Called(record)
	return args.Error(0)
}

func (r *FeedbackRepository) ListAll(ctx context.Context) ([]models.FeedbackRecord, error) {
	args := r.Called()
	return args.Get(0).([]models.FeedbackRecord), args.Error(1)
}

func (r *FeedbackRepository) Liveness(ctx context.Context) error {
	args := r.Called()
	return args.Error(0)
}
