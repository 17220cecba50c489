package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/chatdrip/sequence-engine/internal/config"
	"github.com/chatdrip/sequence-engine/internal/models"
)

type deliveryService struct {
	cfg            *config.Config
	dispatch       DispatchService
	outcome        OutcomeService
	redisClient    *redis.Client
	httpClient     *http.Client
	logger         *zap.Logger
	circuitBreaker *CircuitBreaker
}

func NewDeliveryService(
	cfg *config.Config,
	dispatch DispatchService,
	outcome OutcomeService,
	redisClient *redis.Client,
	logger *zap.Logger,
) DeliveryService {
	cb := NewCircuitBreaker(&cfg.Transport.CircuitBreaker, logger)

	return &deliveryService{
		cfg:         cfg,
		dispatch:    dispatch,
		outcome:     outcome,
		redisClient: redisClient,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Transport.Timeout) * time.Second,
		},
		logger:         logger,
		circuitBreaker: cb,
	}
}

// DeliverDueMessages runs one full sweep: claim due messages, post each to
// the transport webhook and feed the result into the outcome handler.
func (s *deliveryService) DeliverDueMessages() error {
	payloads, err := s.dispatch.DispatchDue()
	if err != nil {
		s.logger.Error("Dispatch sweep failed", zap.Error(err))
		return err
	}

	if len(payloads) == 0 {
		s.logger.Info("No messages due for delivery")
		return nil
	}

	for i := range payloads {
		if err := s.deliver(&payloads[i]); err != nil {
			s.logger.Error("Failed to deliver message",
				zap.Int64("messageID", payloads[i].ID),
				zap.Error(err))
			continue
		}
	}

	return nil
}

// deliver posts one payload through the circuit breaker and reports the
// outcome.
func (s *deliveryService) deliver(payload *models.DispatchMessage) error {
	var externalID string

	err := s.circuitBreaker.Execute(context.Background(), func() error {
		reqBody := models.TransportRequest{
			MessageID:    payload.ID,
			ChatwootData: payload.ChatwootData,
			InstanceData: payload.InstanceData,
			SequenceData: payload.SequenceData,
		}

		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		req, err := http.NewRequest("POST", s.cfg.Transport.URL, bytes.NewBuffer(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-drip-auth-key", s.cfg.Transport.AuthKey)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				s.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		var transportResp models.TransportResponse
		if err := json.NewDecoder(resp.Body).Decode(&transportResp); err != nil {
			// Accepted without a parsable body still counts as delivered.
			transportResp.ExternalMessageID = fmt.Sprintf("temp-%d-%d", payload.ID, time.Now().Unix())
		}

		externalID = transportResp.ExternalMessageID
		return nil
	})

	if err != nil {
		errDetail := err.Error()
		if _, reportErr := s.outcome.HandleOutcome(payload.ID, models.OutcomeFailure, nil, &errDetail); reportErr != nil {
			s.logger.Error("Failed to record delivery failure",
				zap.Int64("messageID", payload.ID),
				zap.Error(reportErr))
		}

		requests, failures := s.circuitBreaker.GetCounts()
		s.logger.Error("Transport call failed",
			zap.Int64("messageID", payload.ID),
			zap.Error(err),
			zap.String("circuitBreakerState", string(s.circuitBreaker.GetState())),
			zap.Uint32("totalRequests", requests),
			zap.Uint32("totalFailures", failures))

		return err
	}

	if _, err := s.outcome.HandleOutcome(payload.ID, models.OutcomeSuccess, nil, nil); err != nil {
		return fmt.Errorf("delivered but failed to record outcome: %w", err)
	}

	s.cacheExternalID(payload.ID, externalID)

	s.logger.Info("Message delivered",
		zap.Int64("messageID", payload.ID),
		zap.String("externalMessageID", externalID),
		zap.String("circuitBreakerState", string(s.circuitBreaker.GetState())))

	return nil
}

// cacheExternalID keeps the transport's message id around for a day so
// operators can correlate platform-side events with engine rows.
func (s *deliveryService) cacheExternalID(messageID int64, externalID string) {
	if externalID == "" {
		return
	}

	ctx := context.Background()
	cacheKey := fmt.Sprintf("message:%s", externalID)
	cacheValue := fmt.Sprintf("%d:%s", messageID, time.Now().Format(time.RFC3339))

	if err := s.redisClient.Set(ctx, cacheKey, cacheValue, 24*time.Hour).Err(); err != nil {
		s.logger.Warn("Failed to cache external message ID in Redis",
			zap.String("externalMessageID", externalID),
			zap.Error(err))
	}
}

func (s *deliveryService) GetCircuitBreakerStatus() (state CircuitBreakerState, requests uint32, failures uint32) {
	state = s.circuitBreaker.GetState()
	requests, failures = s.circuitBreaker.GetCounts()
	return
}
