package models

// HealthResponse represents the health check result
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall status: healthy or unhealthy
	// default: healthy
	Status string `json:"status"`

	// Database connectivity: connected or disconnected
	// default: connected
	Database string `json:"database"`

	// Cache connectivity: connected or disconnected
	// default: connected
	Cache string `json:"cache"`
}
