package service

import "github.com/chatdrip/sequence-engine/internal/models"

// CircuitBreakerState mirrors the transport breaker state.
type CircuitBreakerState string

const (
	CircuitBreakerClosed   CircuitBreakerState = "closed"
	CircuitBreakerHalfOpen CircuitBreakerState = "half_open"
	CircuitBreakerOpen     CircuitBreakerState = "open"
)

type HealthState string

const (
	HealthStateHealthy   HealthState = "healthy"
	HealthStateDegraded  HealthState = "degraded"
	HealthStateUnhealthy HealthState = "unhealthy"
)

type ComponentState string

const (
	ComponentStateConnected    ComponentState = "connected"
	ComponentStateDisconnected ComponentState = "disconnected"
	ComponentStateRunning      ComponentState = "running"
	ComponentStateStopped      ComponentState = "stopped"
)

type HealthStatus struct {
	Status               HealthState         `json:"status"`
	SchedulerStatus      ComponentState      `json:"scheduler_status"`
	DatabaseStatus       ComponentState      `json:"database_status"`
	RedisStatus          ComponentState      `json:"redis_status"`
	CircuitBreakerStatus string              `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  CircuitBreakerState `json:"circuit_breaker_state,omitempty"`
}

// Pagination describes one page of a listing response.
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// MessageListResponse is the paginated sent-message listing.
type MessageListResponse struct {
	Messages   []*models.ScheduledMessage `json:"messages"`
	Pagination Pagination                 `json:"pagination"`
}
