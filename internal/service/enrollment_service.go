package service

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chatdrip/sequence-engine/internal/models"
	"github.com/chatdrip/sequence-engine/internal/repository"
)

type enrollmentService struct {
	repo     repository.Repository
	schedule ScheduleService
	logger   *zap.Logger
}

func NewEnrollmentService(
	repo repository.Repository,
	schedule ScheduleService,
	logger *zap.Logger,
) EnrollmentService {
	return &enrollmentService{
		repo:     repo,
		schedule: schedule,
		logger:   logger,
	}
}

// Enroll starts a contact's run through a sequence and schedules its first
// stage.
func (s *enrollmentService) Enroll(contactID, sequenceID int64) (*models.ContactSequence, error) {
	seq, err := s.repo.Sequences().GetSequence(sequenceID)
	if err != nil {
		return nil, err
	}
	if seq.Status != models.SequenceStatusActive {
		return nil, ErrSequenceInactive
	}

	if _, err := s.repo.Contacts().GetContact(contactID); err != nil {
		return nil, err
	}

	first, err := s.repo.Sequences().GetFirstStage(sequenceID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSequenceHasNoStages
	}
	if err != nil {
		return nil, err
	}

	cs, err := s.repo.ContactSequences().Create(contactID, sequenceID, first)
	if err != nil {
		return nil, err
	}

	if _, err := s.schedule.ScheduleStage(contactID, sequenceID, first); err != nil {
		return nil, fmt.Errorf("enrollment created but first stage scheduling failed: %w", err)
	}

	s.logger.Info("Contact enrolled",
		zap.Int64("contactID", contactID),
		zap.Int64("sequenceID", sequenceID),
		zap.Int64("firstStageID", first.ID))

	return cs, nil
}

// Unenroll closes a contact's active run.
func (s *enrollmentService) Unenroll(contactID, sequenceID int64) (*models.ContactSequence, error) {
	cs, err := s.repo.ContactSequences().GetActive(contactID, sequenceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.repo.ContactSequences().Remove(cs.ID, now); err != nil {
		return nil, err
	}

	cs.Status = models.ContactSequenceStatusRemoved
	cs.RemovedAt.Time = now
	cs.RemovedAt.Valid = true
	cs.UpdatedAt = now

	s.logger.Info("Contact removed from sequence",
		zap.Int64("contactID", contactID),
		zap.Int64("sequenceID", sequenceID))

	return cs, nil
}
