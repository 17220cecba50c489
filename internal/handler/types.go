package handler

import (
	"time"

	"github.com/chatdrip/sequence-engine/internal/models"
)

// DispatchResponse is the dispatch trigger's reply. Messages is always
// present, empty when nothing is due.
type DispatchResponse struct {
	Messages []models.DispatchMessage `json:"messages"`
}

// OutcomeRequest is one delivery result reported by the transport caller.
type OutcomeRequest struct {
	MessageID *int64  `json:"messageId"`
	Status    *string `json:"status"`
	Attempts  *int    `json:"attempts,omitempty"`
	Error     *string `json:"error,omitempty"`
}

// EnrollmentRequest identifies the contact/sequence pair to enroll or
// remove.
type EnrollmentRequest struct {
	ContactID  *int64 `json:"contactId"`
	SequenceID *int64 `json:"sequenceId"`
}

type SchedulerResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status               string    `json:"status"`
	Timestamp            time.Time `json:"timestamp"`
	SchedulerStatus      string    `json:"scheduler_status,omitempty"`
	DatabaseStatus       string    `json:"database_status,omitempty"`
	RedisStatus          string    `json:"redis_status,omitempty"`
	CircuitBreakerStatus string    `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  string    `json:"circuit_breaker_state,omitempty"`
}

type ErrorResponse struct {
	Error     string     `json:"error"`
	Details   string     `json:"details,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
