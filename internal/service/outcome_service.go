package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chatdrip/sequence-engine/internal/config"
	"github.com/chatdrip/sequence-engine/internal/models"
	"github.com/chatdrip/sequence-engine/internal/repository"
)

type outcomeService struct {
	cfg      *config.Config
	repo     repository.Repository
	schedule ScheduleService
	logger   *zap.Logger
}

func NewOutcomeService(
	cfg *config.Config,
	repo repository.Repository,
	schedule ScheduleService,
	logger *zap.Logger,
) OutcomeService {
	return &outcomeService{
		cfg:      cfg,
		repo:     repo,
		schedule: schedule,
		logger:   logger,
	}
}

// HandleOutcome applies one reported delivery result. Terminal messages are
// returned unchanged: re-delivering an outcome never double-counts stats or
// advances a stage twice.
func (s *outcomeService) HandleOutcome(messageID int64, outcome models.Outcome, attemptsHint *int, errorDetail *string) (*models.ScheduledMessage, error) {
	msg, err := s.repo.Messages().GetByID(messageID)
	if err != nil {
		return nil, err
	}

	attempts := msg.Attempts
	if attemptsHint != nil && *attemptsHint > attempts {
		attempts = *attemptsHint
	}

	next, nextAttempts, err := models.ApplyOutcome(msg.Status, outcome, attempts, s.cfg.Engine.MaxAttempts)
	if errors.Is(err, models.ErrTerminalStatus) {
		s.logger.Info("Outcome for terminal message ignored",
			zap.Int64("messageID", messageID),
			zap.String("status", string(msg.Status)))
		return msg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("outcome %q does not apply to message %d in status %q: %w",
			outcome, messageID, msg.Status, err)
	}

	now := time.Now()
	var sentAt *time.Time
	if next == models.MessageStatusSent {
		sentAt = &now
	}

	ok, err := s.repo.Messages().UpdateStatusFrom(msg.ID, msg.Status, next, nextAttempts, errorDetail, sentAt)
	if err != nil {
		return nil, fmt.Errorf("failed to apply outcome for message %d: %w", messageID, err)
	}
	if !ok {
		// A concurrent report changed the row first; re-read and treat
		// this one as a no-op.
		s.logger.Info("Concurrent outcome report won, ignoring",
			zap.Int64("messageID", messageID))
		return s.repo.Messages().GetByID(messageID)
	}

	msg.Status = next
	msg.Attempts = nextAttempts
	if sentAt != nil {
		msg.SentAt = sql.NullTime{Time: *sentAt, Valid: true}
	}
	if errorDetail != nil {
		msg.Error = sql.NullString{String: *errorDetail, Valid: true}
	}
	msg.UpdatedAt = now

	seq, err := s.repo.Sequences().GetSequence(msg.SequenceID)
	if err != nil {
		s.logger.Warn("Failed to resolve sequence after outcome, skipping stats and advancement",
			zap.Int64("messageID", messageID),
			zap.Error(err))
		return msg, nil
	}

	switch next {
	case models.MessageStatusSent:
		s.increment(seq.InstanceID, now, models.StatDelta{Sent: 1})
		s.advance(msg, seq, now)
	case models.MessageStatusFailed, models.MessageStatusPersistentError:
		s.increment(seq.InstanceID, now, models.StatDelta{Failed: 1})
		s.logger.Info("Message delivery failed",
			zap.Int64("messageID", messageID),
			zap.Int("attempts", nextAttempts),
			zap.String("status", string(next)))
	}

	return msg, nil
}

// advance moves the contact to the next stage, or completes the run when
// the delivered stage was the last one. The message itself is already
// terminal at this point, so problems here are logged rather than turned
// into a failed report; a later staleness sweep can reconcile.
func (s *outcomeService) advance(msg *models.ScheduledMessage, seq *models.Sequence, now time.Time) {
	cs, err := s.repo.ContactSequences().GetActive(msg.ContactID, msg.SequenceID)
	if errors.Is(err, repository.ErrNotFound) {
		s.logger.Warn("No active contact sequence to advance",
			zap.Int64("contactID", msg.ContactID),
			zap.Int64("sequenceID", msg.SequenceID))
		return
	}
	if err != nil {
		s.logger.Error("Failed to load active contact sequence",
			zap.Int64("messageID", msg.ID),
			zap.Error(err))
		return
	}

	stage, err := s.repo.Sequences().GetStage(msg.StageID)
	if err != nil {
		s.logger.Error("Failed to load delivered stage",
			zap.Int64("stageID", msg.StageID),
			zap.Error(err))
		return
	}

	next, err := s.repo.Sequences().GetNextStage(msg.SequenceID, stage.OrderIndex)
	if errors.Is(err, repository.ErrNotFound) {
		if err := s.repo.ContactSequences().Complete(cs.ID, now); err != nil {
			s.logger.Error("Failed to complete contact sequence",
				zap.Int64("contactSequenceID", cs.ID),
				zap.Error(err))
			return
		}
		s.increment(seq.InstanceID, now, models.StatDelta{Completed: 1})
		s.logger.Info("Contact finished sequence",
			zap.Int64("contactID", msg.ContactID),
			zap.Int64("sequenceID", msg.SequenceID))
		return
	}
	if err != nil {
		s.logger.Error("Failed to look up next stage",
			zap.Int64("sequenceID", msg.SequenceID),
			zap.Error(err))
		return
	}

	if err := s.repo.ContactSequences().Advance(cs.ID, next.OrderIndex, next.ID, now); err != nil {
		s.logger.Error("Failed to advance contact sequence",
			zap.Int64("contactSequenceID", cs.ID),
			zap.Error(err))
		return
	}

	if _, err := s.schedule.ScheduleStage(msg.ContactID, msg.SequenceID, next); err != nil {
		s.logger.Error("Failed to schedule next stage",
			zap.Int64("contactID", msg.ContactID),
			zap.Int64("stageID", next.ID),
			zap.Error(err))
	}
}

func (s *outcomeService) increment(instanceID int64, now time.Time, delta models.StatDelta) {
	if err := s.repo.Stats().Increment(instanceID, now, delta); err != nil {
		s.logger.Warn("Failed to increment daily stats",
			zap.Int64("instanceID", instanceID),
			zap.Error(err))
	}
}
