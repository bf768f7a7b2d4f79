package dto

import (
	"github.com/riskdesk/riskdesk-backend/models"
)

type APIHealth struct {
	Ok        bool     `json:"ok"`
	Service   string   `json:"service"`
	Endpoints []string `json:"endpoints"`
}

func AdaptHealthDto(health models.HealthStatus) APIHealth {
	return APIHealth{
		Ok:        health.IsHealthy(),
		Service:   health.ServiceName,
		Endpoints: health.Endpoints,
	}
}
