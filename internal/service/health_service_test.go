package service_test

import (
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/chatdrip/sequence-engine/internal/repository/mocks"
	"github.com/chatdrip/sequence-engine/internal/service"
	servicemocks "github.com/chatdrip/sequence-engine/internal/service/mocks"
)

func TestHealthService_GetHealth(t *testing.T) {
	tests := []struct {
		name                    string
		setupMocks              func(*mocks.MockRepository, *servicemocks.MockSchedulerService, *servicemocks.MockDeliveryService)
		expectedStatus          service.HealthState
		expectedSchedulerStatus service.ComponentState
		expectedDatabaseStatus  service.ComponentState
		expectedCBState         service.CircuitBreakerState
	}{
		{
			name: "database up, scheduler running",
			setupMocks: func(repo *mocks.MockRepository, sched *servicemocks.MockSchedulerService, delivery *servicemocks.MockDeliveryService) {
				sched.EXPECT().IsRunning().Return(true)
				repo.EXPECT().Ping().Return(nil)
				delivery.EXPECT().GetCircuitBreakerStatus().Return(service.CircuitBreakerClosed, uint32(100), uint32(5))
			},
			// Redis points at an unreachable address, so overall health is
			// still unhealthy.
			expectedStatus:          service.HealthStateUnhealthy,
			expectedSchedulerStatus: service.ComponentStateRunning,
			expectedDatabaseStatus:  service.ComponentStateConnected,
			expectedCBState:         service.CircuitBreakerClosed,
		},
		{
			name: "scheduler stopped",
			setupMocks: func(repo *mocks.MockRepository, sched *servicemocks.MockSchedulerService, delivery *servicemocks.MockDeliveryService) {
				sched.EXPECT().IsRunning().Return(false)
				repo.EXPECT().Ping().Return(nil)
				delivery.EXPECT().GetCircuitBreakerStatus().Return(service.CircuitBreakerClosed, uint32(50), uint32(10))
			},
			expectedStatus:          service.HealthStateUnhealthy,
			expectedSchedulerStatus: service.ComponentStateStopped,
			expectedDatabaseStatus:  service.ComponentStateConnected,
			expectedCBState:         service.CircuitBreakerClosed,
		},
		{
			name: "database disconnected",
			setupMocks: func(repo *mocks.MockRepository, sched *servicemocks.MockSchedulerService, delivery *servicemocks.MockDeliveryService) {
				sched.EXPECT().IsRunning().Return(true)
				repo.EXPECT().Ping().Return(errors.New("connection failed"))
				delivery.EXPECT().GetCircuitBreakerStatus().Return(service.CircuitBreakerClosed, uint32(0), uint32(0))
			},
			expectedStatus:          service.HealthStateUnhealthy,
			expectedSchedulerStatus: service.ComponentStateRunning,
			expectedDatabaseStatus:  service.ComponentStateDisconnected,
			expectedCBState:         service.CircuitBreakerClosed,
		},
		{
			name: "circuit breaker open reports degraded",
			setupMocks: func(repo *mocks.MockRepository, sched *servicemocks.MockSchedulerService, delivery *servicemocks.MockDeliveryService) {
				sched.EXPECT().IsRunning().Return(true)
				repo.EXPECT().Ping().Return(nil)
				delivery.EXPECT().GetCircuitBreakerStatus().Return(service.CircuitBreakerOpen, uint32(20), uint32(20))
			},
			expectedStatus:          service.HealthStateDegraded,
			expectedSchedulerStatus: service.ComponentStateRunning,
			expectedDatabaseStatus:  service.ComponentStateConnected,
			expectedCBState:         service.CircuitBreakerOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockRepository(ctrl)
			mockScheduler := servicemocks.NewMockSchedulerService(ctrl)
			mockDelivery := servicemocks.NewMockDeliveryService(ctrl)

			// Non-existent Redis server simulates a disconnected cache.
			redisClient := redis.NewClient(&redis.Options{Addr: "localhost:9999"})

			tt.setupMocks(mockRepo, mockScheduler, mockDelivery)

			healthService := service.NewHealthService(mockRepo, redisClient, mockScheduler, mockDelivery)
			status := healthService.GetHealth()

			require.NotNil(t, status)
			assert.Equal(t, tt.expectedStatus, status.Status)
			assert.Equal(t, tt.expectedSchedulerStatus, status.SchedulerStatus)
			assert.Equal(t, tt.expectedDatabaseStatus, status.DatabaseStatus)
			assert.Equal(t, service.ComponentStateDisconnected, status.RedisStatus)
			assert.Equal(t, tt.expectedCBState, status.CircuitBreakerState)
		})
	}
}

func TestHealthService_GetHealth_CircuitBreakerSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockScheduler := servicemocks.NewMockSchedulerService(ctrl)
	mockDelivery := servicemocks.NewMockDeliveryService(ctrl)
	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:9999"})

	mockScheduler.EXPECT().IsRunning().Return(true)
	mockRepo.EXPECT().Ping().Return(nil)
	mockDelivery.EXPECT().GetCircuitBreakerStatus().Return(service.CircuitBreakerClosed, uint32(100), uint32(5))

	healthService := service.NewHealthService(mockRepo, redisClient, mockScheduler, mockDelivery)
	status := healthService.GetHealth()

	assert.Equal(t, "Requests: 100, Failures: 5 (5.0%)", status.CircuitBreakerStatus)
}
