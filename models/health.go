package models

type HealthItemName string

const (
	FeedbackStoreHealthItemName HealthItemName = "feedback_store"
)

type HealthItemStatus struct {
	Name   HealthItemName
	Status bool
}

type HealthStatus struct {
	ServiceName string
	Endpoints   []string
	Statuses    []HealthItemStatus
}

func (l HealthStatus) IsHealthy() bool {
	for _, status := range l.Statuses {
		if !status.Status {
			return false
		}
	}
	return true
}
