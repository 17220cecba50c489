package models

import "errors"

// MessageStatus is the lifecycle state of a scheduled message.
type MessageStatus string

const (
	// MessageStatusWaiting marks a message scheduled but not yet claimed
	// by a dispatch sweep.
	MessageStatusWaiting MessageStatus = "waiting"
	// MessageStatusPending marks a message claimed by a sweep and handed
	// to the transport; an outcome report moves it on.
	MessageStatusPending MessageStatus = "pending"
	MessageStatusSent    MessageStatus = "sent"
	MessageStatusFailed  MessageStatus = "failed"
	// MessageStatusPersistentError marks a message that exhausted its
	// delivery attempts. Terminal.
	MessageStatusPersistentError MessageStatus = "persistent_error"
)

// Terminal reports whether the status admits no further transitions.
func (s MessageStatus) Terminal() bool {
	return s == MessageStatusSent || s == MessageStatusPersistentError
}

// Outcome is a delivery result reported by the transport caller.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failed"
)

var (
	// ErrTerminalStatus signals an outcome reported for a message already
	// in a terminal status. Callers must treat it as a no-op, not a
	// double-count.
	ErrTerminalStatus = errors.New("message is in a terminal status")
	// ErrInvalidTransition signals an outcome that does not apply to the
	// message's current status, e.g. a result for an unclaimed message.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ApplyOutcome is the single transition function of the message state
// machine. It returns the next status and attempt count for a reported
// delivery outcome. A failure from an already-failed message counts toward
// the attempt cap; once attempts reach maxAttempts the message becomes
// persistent_error and is never dispatched again.
func ApplyOutcome(status MessageStatus, outcome Outcome, attempts, maxAttempts int) (MessageStatus, int, error) {
	if status.Terminal() {
		return status, attempts, ErrTerminalStatus
	}

	if status != MessageStatusPending && status != MessageStatusFailed {
		return status, attempts, ErrInvalidTransition
	}

	switch outcome {
	case OutcomeSuccess:
		return MessageStatusSent, attempts, nil
	case OutcomeFailure:
		attempts++
		if attempts >= maxAttempts {
			return MessageStatusPersistentError, attempts, nil
		}
		return MessageStatusFailed, attempts, nil
	default:
		return status, attempts, ErrInvalidTransition
	}
}
