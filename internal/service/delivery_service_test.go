package service_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/chatdrip/sequence-engine/internal/config"
	"github.com/chatdrip/sequence-engine/internal/models"
	"github.com/chatdrip/sequence-engine/internal/repository"
	"github.com/chatdrip/sequence-engine/internal/repository/mocks"
	"github.com/chatdrip/sequence-engine/internal/service"
)

type deliveryFixture struct {
	messages     *mocks.MockMessageRepository
	sequences    *mocks.MockSequenceRepository
	contacts     *mocks.MockContactRepository
	contactSeqs  *mocks.MockContactSequenceRepository
	restrictions *mocks.MockRestrictionRepository
	stats        *mocks.MockStatsRepository
}

func newDeliveryService(t *testing.T, transportURL string) (*deliveryFixture, service.DeliveryService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockRepository(ctrl)
	f := &deliveryFixture{
		messages:     mocks.NewMockMessageRepository(ctrl),
		sequences:    mocks.NewMockSequenceRepository(ctrl),
		contacts:     mocks.NewMockContactRepository(ctrl),
		contactSeqs:  mocks.NewMockContactSequenceRepository(ctrl),
		restrictions: mocks.NewMockRestrictionRepository(ctrl),
		stats:        mocks.NewMockStatsRepository(ctrl),
	}

	mockRepo.EXPECT().Messages().Return(f.messages).AnyTimes()
	mockRepo.EXPECT().Sequences().Return(f.sequences).AnyTimes()
	mockRepo.EXPECT().Contacts().Return(f.contacts).AnyTimes()
	mockRepo.EXPECT().ContactSequences().Return(f.contactSeqs).AnyTimes()
	mockRepo.EXPECT().Restrictions().Return(f.restrictions).AnyTimes()
	mockRepo.EXPECT().Stats().Return(f.stats).AnyTimes()

	cfg := &config.Config{
		Transport: config.TransportConfig{
			URL:     transportURL,
			AuthKey: "test-auth-key",
			Timeout: 5,
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxRequests:      3,
				Interval:         60,
				Timeout:          60,
				FailureRatio:     0.6,
				ConsecutiveFails: 5,
			},
		},
		Engine: config.EngineConfig{
			DispatchBatchSize: 10,
			MaxAttempts:       3,
			StageKey:          "stg1",
		},
	}

	logger := zap.NewNop()
	schedule := service.NewScheduleService(cfg, mockRepo, logger)
	dispatch := service.NewDispatchService(cfg, mockRepo, logger)
	outcome := service.NewOutcomeService(cfg, mockRepo, schedule, logger)

	// Unreachable address: the external id cache degrades to a warning.
	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:9999"})

	return f, service.NewDeliveryService(cfg, dispatch, outcome, redisClient, logger)
}

func (f *deliveryFixture) expectResolve() {
	f.sequences.EXPECT().GetSequence(int64(5)).Return(&models.Sequence{ID: 5, InstanceID: 7, Name: "Onboarding"}, nil)
	f.sequences.EXPECT().GetStage(int64(11)).Return(&models.Stage{ID: 11, SequenceID: 5, OrderIndex: 2, Content: "See you soon"}, nil)
	f.sequences.EXPECT().GetInstance(int64(7)).Return(&models.Instance{ID: 7, Name: "main-line", Token: "tok"}, nil)
	f.contacts.EXPECT().GetContact(int64(3)).Return(&models.Contact{ID: 3, ClientID: 9, PhoneNumber: "+15550001111"}, nil)
	f.contacts.EXPECT().GetClient(int64(9)).Return(&models.Client{ID: 9, ChatwootAccountID: 900}, nil)
}

func TestDeliveryService_DeliverDueMessages_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-auth-key", r.Header.Get("x-drip-auth-key"))

		var req models.TransportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(1), req.MessageID)
		assert.Equal(t, "+15550001111", req.ChatwootData.PhoneNumber)
		_, ok := req.SequenceData.Stage["stg1"]
		assert.True(t, ok)

		w.WriteHeader(http.StatusOK)
		require.NoError(t, json.NewEncoder(w).Encode(models.TransportResponse{
			Message:           "Accepted",
			ExternalMessageID: fmt.Sprintf("ext-%d", req.MessageID),
		}))
	}))
	defer server.Close()

	f, svc := newDeliveryService(t, server.URL)

	claimed := []*models.ScheduledMessage{
		{ID: 1, ContactID: 3, SequenceID: 5, StageID: 11, Status: models.MessageStatusPending},
	}
	f.messages.EXPECT().ClaimDue(gomock.Any(), 10).Return(claimed, nil)
	f.expectResolve()

	// Outcome report: pending -> sent, then the run completes because stage
	// index 2 is the last.
	f.messages.EXPECT().GetByID(int64(1)).Return(claimed[0], nil)
	f.messages.EXPECT().
		UpdateStatusFrom(int64(1), models.MessageStatusPending, models.MessageStatusSent, 0, nil, gomock.Not(gomock.Nil())).
		Return(true, nil)
	f.sequences.EXPECT().GetSequence(int64(5)).Return(&models.Sequence{ID: 5, InstanceID: 7}, nil)
	f.stats.EXPECT().Increment(int64(7), gomock.Any(), models.StatDelta{Sent: 1}).Return(nil)
	f.contactSeqs.EXPECT().GetActive(int64(3), int64(5)).Return(&models.ContactSequence{ID: 21}, nil)
	f.sequences.EXPECT().GetStage(int64(11)).Return(&models.Stage{ID: 11, SequenceID: 5, OrderIndex: 2}, nil)
	f.sequences.EXPECT().GetNextStage(int64(5), 2).Return(nil, repository.ErrNotFound)
	f.contactSeqs.EXPECT().Complete(int64(21), gomock.Any()).Return(nil)
	f.stats.EXPECT().Increment(int64(7), gomock.Any(), models.StatDelta{Completed: 1}).Return(nil)

	err := svc.DeliverDueMessages()
	require.NoError(t, err)
}

func TestDeliveryService_DeliverDueMessages_TransportFailureReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	f, svc := newDeliveryService(t, server.URL)

	claimed := []*models.ScheduledMessage{
		{ID: 1, ContactID: 3, SequenceID: 5, StageID: 11, Status: models.MessageStatusPending},
	}
	f.messages.EXPECT().ClaimDue(gomock.Any(), 10).Return(claimed, nil)
	f.expectResolve()

	f.messages.EXPECT().GetByID(int64(1)).Return(claimed[0], nil)
	f.messages.EXPECT().
		UpdateStatusFrom(int64(1), models.MessageStatusPending, models.MessageStatusFailed, 1, gomock.Not(gomock.Nil()), nil).
		Return(true, nil)
	f.sequences.EXPECT().GetSequence(int64(5)).Return(&models.Sequence{ID: 5, InstanceID: 7}, nil)
	f.stats.EXPECT().Increment(int64(7), gomock.Any(), models.StatDelta{Failed: 1}).Return(nil)

	// A transport failure is recorded per message; the sweep itself succeeds.
	err := svc.DeliverDueMessages()
	require.NoError(t, err)
}

func TestDeliveryService_DeliverDueMessages_EmptySweep(t *testing.T) {
	f, svc := newDeliveryService(t, "http://localhost:9998")

	f.messages.EXPECT().ClaimDue(gomock.Any(), 10).Return(nil, nil)

	err := svc.DeliverDueMessages()
	require.NoError(t, err)
}

func TestDeliveryService_GetCircuitBreakerStatus(t *testing.T) {
	_, svc := newDeliveryService(t, "http://localhost:9998")

	state, requests, failures := svc.GetCircuitBreakerStatus()
	assert.Equal(t, service.CircuitBreakerClosed, state)
	assert.Equal(t, uint32(0), requests)
	assert.Equal(t, uint32(0), failures)
}

