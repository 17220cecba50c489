package service

import (
	"fmt"
	"time"

	"github.com/chatdrip/sequence-engine/internal/models"
	"github.com/chatdrip/sequence-engine/internal/repository"
)

type reportService struct {
	repo repository.Repository
}

func NewReportService(repo repository.Repository) ReportService {
	return &reportService{
		repo: repo,
	}
}

// GetSentMessages retrieves sent messages with pagination.
func (s *reportService) GetSentMessages(page, limit int) (*MessageListResponse, error) {
	offset := (page - 1) * limit

	messages, err := s.repo.Messages().GetSentMessages(offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get sent messages: %w", err)
	}

	totalCount, err := s.repo.Messages().GetTotalSentCount()
	if err != nil {
		return nil, fmt.Errorf("failed to get total count: %w", err)
	}

	totalPages := int(totalCount) / limit
	if int(totalCount)%limit > 0 {
		totalPages++
	}

	if messages == nil {
		messages = []*models.ScheduledMessage{}
	}

	return &MessageListResponse{
		Messages: messages,
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   int(totalCount),
			ItemsPerPage: limit,
		},
	}, nil
}

// GetDailyStats retrieves one day's counters for an instance.
func (s *reportService) GetDailyStats(instanceID int64, date time.Time) (*models.DailyStat, error) {
	return s.repo.Stats().GetByInstanceAndDate(instanceID, date)
}
