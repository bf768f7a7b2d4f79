package usecases

import (
	"github.com/riskdesk/riskdesk-backend/repositories"
)

const (
	DefaultModelName   = "heuristic-mvp"
	DefaultBackendName = "local"
)

type Option func(*options)

type options struct {
	appName     string
	modelName   string
	backendName string
}

func WithAppName(appName string) Option {
	return func(o *options) {
		o.appName = appName
	}
}

func WithModelName(modelName string) Option {
	return func(o *options) {
		o.modelName = modelName
	}
}

func WithBackendName(backendName string) Option {
	return func(o *options) {
		o.backendName = backendName
	}
}

type Usecases struct {
	Repositories repositories.Repositories

	appName     string
	modelName   string
	backendName string
}

func NewUsecases(repos repositories.Repositories, opts ...Option) Usecases {
	o := &options{
		appName:     "riskdesk-backend",
		modelName:   DefaultModelName,
		backendName: DefaultBackendName,
	}
	for _, opt := range opts {
		opt(o)
	}

	return Usecases{
		Repositories: repos,
		appName:      o.appName,
		modelName:    o.modelName,
		backendName:  o.backendName,
	}
}

func (uc Usecases) NewScoringUseCase() ScoringUseCase {
	return ScoringUseCase{
		modelName:   uc.modelName,
		backendName: uc.backendName,
	}
}

func (uc Usecases) NewFeedbackUseCase() FeedbackUseCase {
	return FeedbackUseCase{
		repository: uc.Repositories.FeedbackRepository,
	}
}

func (uc Usecases) NewAnalyticsUseCase() AnalyticsUseCase {
	return AnalyticsUseCase{
		feedbackReader: uc.Repositories.FeedbackRepository,
	}
}

func (uc Usecases) NewHealthUseCase() HealthUseCase {
	return HealthUseCase{
		appName:          uc.appName,
		healthRepository: uc.Repositories.FeedbackRepository,
	}
}
