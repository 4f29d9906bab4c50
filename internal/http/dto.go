// Package httpapi provides HTTP handlers and data transfer objects for the database health API.
package httpapi

// Health statuses reported by GET /health
const (
	StatusHealthy   = "Healthy!"
	StatusUnhealthy = "Unhealthy"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Container string `json:"container"`
}

// TableCountResponse represents the table count response.
// The count is a decimal string, not a JSON number.
type TableCountResponse struct {
	NumberOfTables string `json:"number_of_tables"`
}

// ErrorResponse represents API error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
