package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Samples int       `json:"samples" doc:"Samples in the Munsell database"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}
