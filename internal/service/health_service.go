package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/chatdrip/sequence-engine/internal/repository"
)

type healthService struct {
	repo             repository.Repository
	redisClient      *redis.Client
	schedulerService SchedulerService
	deliveryService  DeliveryService
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	schedulerService SchedulerService,
	deliveryService DeliveryService,
) HealthService {
	return &healthService{
		repo:             repo,
		redisClient:      redisClient,
		schedulerService: schedulerService,
		deliveryService:  deliveryService,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: HealthStateHealthy,
	}

	if s.schedulerService.IsRunning() {
		status.SchedulerStatus = ComponentStateRunning
	} else {
		status.SchedulerStatus = ComponentStateStopped
	}

	status.DatabaseStatus = s.checkDatabaseHealth()

	status.RedisStatus = s.checkRedisHealth()

	state, requests, failures := s.deliveryService.GetCircuitBreakerStatus()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerStatus = "No requests yet"
	}

	// Determine overall health
	if status.DatabaseStatus != ComponentStateConnected || status.RedisStatus != ComponentStateConnected {
		status.Status = HealthStateUnhealthy
	}

	// An open breaker means the transport is failing but the engine is
	// still serving; report degraded.
	if state == CircuitBreakerOpen {
		status.Status = HealthStateDegraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth() ComponentState {
	if err := s.repo.Ping(); err != nil {
		return ComponentStateDisconnected
	}
	return ComponentStateConnected
}

func (s *healthService) checkRedisHealth() ComponentState {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return ComponentStateDisconnected
	}

	return ComponentStateConnected
}
