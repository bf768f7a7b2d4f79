package usecases

import (
	"context"

	"github.com/riskdesk/riskdesk-backend/models"
)

type healthRepository interface {
	Liveness(ctx context.Context) error
}

type HealthUseCase struct {
	appName          string
	healthRepository healthRepository
}

func (usecase HealthUseCase) GetHealthStatus(ctx context.Context) models.HealthStatus {
	err := usecase.healthRepository.Liveness(ctx)

	return models.HealthStatus{
		ServiceName: usecase.appName,
		Endpoints: []string{
			"POST /score",
			"POST /feedback",
			"GET /analytics",
		},
		Statuses: []models.HealthItemStatus{
			{
				Name:   models.FeedbackStoreHealthItemName,
				Status: err == nil,
			},
		},
	}
}
