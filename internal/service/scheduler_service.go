package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chatdrip/sequence-engine/internal/config"
	"github.com/chatdrip/sequence-engine/internal/scheduler"
)

type schedulerService struct {
	scheduler *scheduler.Scheduler
	delivery  DeliveryService
	logger    *zap.Logger
}

// NewSchedulerService wires the ticker scheduler to the delivery worker so
// due messages flow out without an external trigger.
func NewSchedulerService(
	cfg *config.Config,
	delivery DeliveryService,
	logger *zap.Logger,
) SchedulerService {
	interval := time.Duration(cfg.Scheduler.IntervalSeconds) * time.Second

	svc := &schedulerService{
		delivery: delivery,
		logger:   logger,
	}

	svc.scheduler = scheduler.NewScheduler(logger, interval, svc.executeSweep)
	return svc
}

func (s *schedulerService) Start() error {
	ctx := context.Background()
	return s.scheduler.Start(ctx)
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *schedulerService) executeSweep(_ context.Context) error {
	return s.delivery.DeliverDueMessages()
}
