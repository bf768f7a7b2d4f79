package repositories

type Option func(*options)

type options struct {
	feedbackRepository *InMemoryFeedbackRepository
}

// WithFeedbackRepository substitutes the default in-memory feedback log, used
// by tests that need to seed or observe the store directly.
func WithFeedbackRepository(repo *InMemoryFeedbackRepository) Option {
	return func(o *options) {
		o.feedbackRepository = repo
	}
}

type Repositories struct {
	FeedbackRepository *InMemoryFeedbackRepository
}

func NewRepositories(opts ...Option) Repositories {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.feedbackRepository == nil {
		o.feedbackRepository = NewInMemoryFeedbackRepository()
	}

	return Repositories{
		FeedbackRepository: o.feedbackRepository,
	}
}
