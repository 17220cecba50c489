package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/chatdrip/sequence-engine/internal/config"
	"github.com/chatdrip/sequence-engine/internal/repository"
)

type Service struct {
	Schedule   ScheduleService
	Dispatch   DispatchService
	Outcome    OutcomeService
	Enrollment EnrollmentService
	Delivery   DeliveryService
	Report     ReportService
	Scheduler  SchedulerService
	Health     HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	scheduleService := NewScheduleService(cfg, repo, logger)
	dispatchService := NewDispatchService(cfg, repo, logger)
	outcomeService := NewOutcomeService(cfg, repo, scheduleService, logger)
	enrollmentService := NewEnrollmentService(repo, scheduleService, logger)
	deliveryService := NewDeliveryService(cfg, dispatchService, outcomeService, redisClient, logger)
	reportService := NewReportService(repo)
	schedulerService := NewSchedulerService(cfg, deliveryService, logger)
	healthService := NewHealthService(repo, redisClient, schedulerService, deliveryService)

	return &Service{
		Schedule:   scheduleService,
		Dispatch:   dispatchService,
		Outcome:    outcomeService,
		Enrollment: enrollmentService,
		Delivery:   deliveryService,
		Report:     reportService,
		Scheduler:  schedulerService,
		Health:     healthService,
	}
}
