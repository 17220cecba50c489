package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chatdrip/sequence-engine/internal/config"
	"github.com/chatdrip/sequence-engine/internal/models"
	"github.com/chatdrip/sequence-engine/internal/repository"
)

type dispatchService struct {
	cfg    *config.Config
	repo   repository.Repository
	logger *zap.Logger
}

func NewDispatchService(
	cfg *config.Config,
	repo repository.Repository,
	logger *zap.Logger,
) DispatchService {
	return &dispatchService{
		cfg:    cfg,
		repo:   repo,
		logger: logger,
	}
}

// DispatchDue claims due waiting messages and assembles transport payloads.
// Messages whose related records cannot be resolved are skipped and stay
// pending for operator triage; they never fail the batch.
func (s *dispatchService) DispatchDue() ([]models.DispatchMessage, error) {
	claimed, err := s.repo.Messages().ClaimDue(time.Now(), s.cfg.Engine.DispatchBatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to claim due messages: %w", err)
	}

	payloads := make([]models.DispatchMessage, 0, len(claimed))
	for _, msg := range claimed {
		payload, err := s.resolve(msg)
		if err != nil {
			s.logger.Error("Skipping message with unresolvable records, left pending",
				zap.Int64("messageID", msg.ID),
				zap.Error(err))
			continue
		}
		payloads = append(payloads, *payload)
	}

	if len(claimed) > 0 {
		s.logger.Info("Dispatch sweep finished",
			zap.Int("claimed", len(claimed)),
			zap.Int("resolved", len(payloads)))
	}

	return payloads, nil
}

// resolve loads the records a transport payload needs.
func (s *dispatchService) resolve(msg *models.ScheduledMessage) (*models.DispatchMessage, error) {
	seq, err := s.repo.Sequences().GetSequence(msg.SequenceID)
	if err != nil {
		return nil, fmt.Errorf("sequence %d: %w", msg.SequenceID, err)
	}

	stage, err := s.repo.Sequences().GetStage(msg.StageID)
	if err != nil {
		return nil, fmt.Errorf("stage %d: %w", msg.StageID, err)
	}

	instance, err := s.repo.Sequences().GetInstance(seq.InstanceID)
	if err != nil {
		return nil, fmt.Errorf("instance %d: %w", seq.InstanceID, err)
	}

	contact, err := s.repo.Contacts().GetContact(msg.ContactID)
	if err != nil {
		return nil, fmt.Errorf("contact %d: %w", msg.ContactID, err)
	}

	client, err := s.repo.Contacts().GetClient(contact.ClientID)
	if err != nil {
		return nil, fmt.Errorf("client %d: %w", contact.ClientID, err)
	}

	stageKey := s.cfg.Engine.StageKey
	if stageKey == "" {
		stageKey = "stg1"
	}

	return &models.DispatchMessage{
		ID: msg.ID,
		ChatwootData: models.ChatwootData{
			AccountID:      client.ChatwootAccountID,
			ContactID:      contact.ChatwootContactID,
			ConversationID: contact.ChatwootConversationID,
			ContactName:    contact.Name,
			PhoneNumber:    contact.PhoneNumber,
		},
		InstanceData: models.InstanceData{
			ID:     instance.ID,
			Name:   instance.Name,
			APIURL: instance.APIURL,
			Token:  instance.Token,
		},
		SequenceData: models.SequenceData{
			ID:   seq.ID,
			Name: seq.Name,
			Stage: map[string]models.StagePayload{
				stageKey: {
					ID:               stage.ID,
					Content:          stage.Content,
					RawScheduledTime: msg.RawScheduledTime,
					ScheduledTime:    msg.ScheduledTime,
				},
			},
		},
	}, nil
}
