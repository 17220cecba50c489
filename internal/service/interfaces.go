package service

import (
	"errors"
	"time"

	"github.com/chatdrip/sequence-engine/internal/models"
)

var (
	// ErrSequenceInactive is returned when enrolling into a sequence that
	// is not active.
	ErrSequenceInactive = errors.New("sequence is not active")
	// ErrSequenceHasNoStages is returned when enrolling into a sequence
	// without stages.
	ErrSequenceHasNoStages = errors.New("sequence has no stages")
)

// ScheduleService computes send times and persists new scheduled messages.
type ScheduleService interface {
	// ScheduleStage creates a waiting message for the stage: raw time is
	// now plus the stage delay, the adjusted time additionally clears the
	// sequence's blackout windows. A failed restriction lookup degrades
	// to the raw time instead of blocking scheduling.
	ScheduleStage(contactID, sequenceID int64, stage *models.Stage) (*models.ScheduledMessage, error)
}

// DispatchService claims due messages and assembles transport payloads.
type DispatchService interface {
	DispatchDue() ([]models.DispatchMessage, error)
}

// OutcomeService consumes delivery results and advances contact sequences.
type OutcomeService interface {
	HandleOutcome(messageID int64, outcome models.Outcome, attemptsHint *int, errorDetail *string) (*models.ScheduledMessage, error)
}

// EnrollmentService manages contact runs through sequences.
type EnrollmentService interface {
	Enroll(contactID, sequenceID int64) (*models.ContactSequence, error)
	Unenroll(contactID, sequenceID int64) (*models.ContactSequence, error)
}

// DeliveryService is the built-in transport caller: it drives a dispatch
// sweep, posts each payload to the configured webhook and reports the
// outcome back into the engine.
type DeliveryService interface {
	DeliverDueMessages() error
	GetCircuitBreakerStatus() (state CircuitBreakerState, requests uint32, failures uint32)
}

// ReportService exposes read models for operators.
type ReportService interface {
	GetSentMessages(page, limit int) (*MessageListResponse, error)
	GetDailyStats(instanceID int64, date time.Time) (*models.DailyStat, error)
}

type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

type HealthService interface {
	GetHealth() *HealthStatus
}
