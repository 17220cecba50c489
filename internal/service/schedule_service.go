package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chatdrip/sequence-engine/internal/config"
	"github.com/chatdrip/sequence-engine/internal/models"
	"github.com/chatdrip/sequence-engine/internal/repository"
	"github.com/chatdrip/sequence-engine/internal/restriction"
)

type scheduleService struct {
	cfg    *config.Config
	repo   repository.Repository
	logger *zap.Logger
}

func NewScheduleService(
	cfg *config.Config,
	repo repository.Repository,
	logger *zap.Logger,
) ScheduleService {
	return &scheduleService{
		cfg:    cfg,
		repo:   repo,
		logger: logger,
	}
}

// ScheduleStage persists a waiting message for the given stage.
func (s *scheduleService) ScheduleStage(contactID, sequenceID int64, stage *models.Stage) (*models.ScheduledMessage, error) {
	now := time.Now()
	raw := now.Add(time.Duration(stage.DelayMinutes()) * time.Minute)
	scheduled := raw

	restrictions, err := s.repo.Restrictions().ListActiveForSequence(sequenceID)
	if err != nil {
		// Policy: a failed restriction lookup must not block scheduling,
		// the message goes out at the raw time instead.
		s.logger.Warn("Failed to load time restrictions, scheduling without adjustment",
			zap.Int64("sequenceID", sequenceID),
			zap.Error(err))
	} else {
		scheduled = restriction.NextAllowed(raw, restrictions)
		if restriction.Violates(scheduled, restrictions) {
			s.logger.Warn("Adjusted send time still falls inside a blackout window",
				zap.Int64("sequenceID", sequenceID),
				zap.Time("scheduledTime", scheduled))
		}
	}

	msg := &models.ScheduledMessage{
		ContactID:        contactID,
		SequenceID:       sequenceID,
		StageID:          stage.ID,
		RawScheduledTime: raw,
		ScheduledTime:    scheduled,
		Status:           models.MessageStatusWaiting,
	}

	id, err := s.repo.Messages().Create(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule stage %d: %w", stage.ID, err)
	}
	msg.ID = id
	msg.CreatedAt = now
	msg.UpdatedAt = now

	s.incrementScheduled(sequenceID, now)

	s.logger.Info("Stage scheduled",
		zap.Int64("messageID", id),
		zap.Int64("contactID", contactID),
		zap.Int64("sequenceID", sequenceID),
		zap.Int64("stageID", stage.ID),
		zap.Time("rawScheduledTime", raw),
		zap.Time("scheduledTime", scheduled))

	return msg, nil
}

func (s *scheduleService) incrementScheduled(sequenceID int64, now time.Time) {
	seq, err := s.repo.Sequences().GetSequence(sequenceID)
	if err != nil {
		s.logger.Warn("Failed to resolve sequence for stats increment",
			zap.Int64("sequenceID", sequenceID),
			zap.Error(err))
		return
	}

	if err := s.repo.Stats().Increment(seq.InstanceID, now, models.StatDelta{Scheduled: 1}); err != nil {
		s.logger.Warn("Failed to increment scheduled counter",
			zap.Int64("instanceID", seq.InstanceID),
			zap.Error(err))
	}
}
