// Package handler provides HTTP request handlers for the application.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/chatdrip/sequence-engine/internal/middleware"
	"github.com/chatdrip/sequence-engine/internal/models"
	"github.com/chatdrip/sequence-engine/internal/repository"
	"github.com/chatdrip/sequence-engine/internal/scheduler"
	"github.com/chatdrip/sequence-engine/internal/service"
)

const (
	errorCodeSchedulerAlreadyRunning = "SCHEDULER_ALREADY_RUNNING"
	errorCodeSchedulerNotRunning     = "SCHEDULER_NOT_RUNNING"
	errorCodeInvalidRequest          = "INVALID_REQUEST"
	errorCodeNotFound                = "NOT_FOUND"
	errorCodeConflict                = "CONFLICT"
)

const (
	errorMessageSchedulerAlreadyRunning = "Scheduler is already running"
	errorMessageSchedulerNotRunning     = "Scheduler is not running"
	errorMessageFailedToStartScheduler  = "Failed to start scheduler"
	errorMessageFailedToStopScheduler   = "Failed to stop scheduler"
	errorMessageDispatchFailed          = "Failed to dispatch due messages"
	errorMessageOutcomeFailed           = "Failed to process delivery outcome"
	errorMessageEnrollmentFailed        = "Failed to process enrollment"
	errorMessageRetrieveMessagesFailed  = "Failed to retrieve sent messages"
	errorMessageRetrieveStatsFailed     = "Failed to retrieve daily stats"
)

const (
	schedulerMessageStarted = "Scheduler started successfully"
	schedulerMessageStopped = "Scheduler stopped successfully"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Dispatch runs one dispatch sweep and returns the transport-ready batch.
// An empty sweep is a success with an empty messages array, never an error.
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	payloads, err := h.service.Dispatch.DispatchDue()
	if err != nil {
		h.logger.Error("Dispatch sweep failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, errorMessageDispatchFailed, err.Error())
		return
	}

	if payloads == nil {
		payloads = []models.DispatchMessage{}
	}

	render.JSON(w, r, DispatchResponse{Messages: payloads})
}

// ReportOutcome applies one delivery result to its message.
func (h *Handler) ReportOutcome(w http.ResponseWriter, r *http.Request) {
	var req OutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid JSON body")
		return
	}

	if req.MessageID == nil || req.Status == nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "messageId and status are required")
		return
	}

	outcome := models.Outcome(*req.Status)
	if outcome != models.OutcomeSuccess && outcome != models.OutcomeFailure {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "status must be \"success\" or \"failed\"")
		return
	}

	msg, err := h.service.Outcome.HandleOutcome(*req.MessageID, outcome, req.Attempts, req.Error)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "message not found")
		case errors.Is(err, models.ErrInvalidTransition):
			h.sendError(w, r, http.StatusConflict, errorCodeConflict, err.Error())
		default:
			h.logger.Error("Failed to handle delivery outcome",
				zap.String("request_id", middleware.GetRequestID(r.Context())),
				zap.Int64("messageID", *req.MessageID),
				zap.Error(err))
			h.sendError(w, r, http.StatusInternalServerError, errorMessageOutcomeFailed, err.Error())
		}
		return
	}

	render.JSON(w, r, msg)
}

// Enroll starts a contact's run through a sequence.
func (h *Handler) Enroll(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeEnrollment(w, r)
	if !ok {
		return
	}

	cs, err := h.service.Enrollment.Enroll(*req.ContactID, *req.SequenceID)
	if err != nil {
		h.sendEnrollmentError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, cs)
}

// Unenroll removes a contact's active run.
func (h *Handler) Unenroll(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeEnrollment(w, r)
	if !ok {
		return
	}

	cs, err := h.service.Enrollment.Unenroll(*req.ContactID, *req.SequenceID)
	if err != nil {
		h.sendEnrollmentError(w, r, err)
		return
	}

	render.JSON(w, r, cs)
}

func (h *Handler) decodeEnrollment(w http.ResponseWriter, r *http.Request) (*EnrollmentRequest, bool) {
	var req EnrollmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid JSON body")
		return nil, false
	}

	if req.ContactID == nil || req.SequenceID == nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "contactId and sequenceId are required")
		return nil, false
	}

	return &req, true
}

func (h *Handler) sendEnrollmentError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, err.Error())
	case errors.Is(err, repository.ErrActiveEnrollmentExists):
		h.sendError(w, r, http.StatusConflict, errorCodeConflict, err.Error())
	case errors.Is(err, service.ErrSequenceInactive):
		h.sendError(w, r, http.StatusConflict, errorCodeConflict, err.Error())
	case errors.Is(err, service.ErrSequenceHasNoStages):
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, err.Error())
	default:
		h.logger.Error("Enrollment operation failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, errorMessageEnrollmentFailed, err.Error())
	}
}

// GetSentMessages lists delivered messages with pagination.
func (h *Handler) GetSentMessages(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 20

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v >= 1 && v <= 100 {
		limit = v
	}

	result, err := h.service.Report.GetSentMessages(page, limit)
	if err != nil {
		h.logger.Error("Failed to get sent messages",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, errorMessageRetrieveMessagesFailed, err.Error())
		return
	}

	render.JSON(w, r, result)
}

// GetDailyStats returns one day's counters for an instance. Date defaults
// to today.
func (h *Handler) GetDailyStats(w http.ResponseWriter, r *http.Request) {
	instanceID, err := strconv.ParseInt(r.URL.Query().Get("instance_id"), 10, 64)
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "instance_id is required")
		return
	}

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	stat, err := h.service.Report.GetDailyStats(instanceID, date)
	if errors.Is(err, repository.ErrNotFound) {
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "no stats for instance and date")
		return
	}
	if err != nil {
		h.logger.Error("Failed to get daily stats",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, errorMessageRetrieveStatsFailed, err.Error())
		return
	}

	render.JSON(w, r, stat)
}

// StartScheduler starts the periodic delivery worker.
func (h *Handler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	err := h.service.Scheduler.Start()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerAlreadyRunning, errorMessageSchedulerAlreadyRunning)
			return
		}

		h.logger.Error("Failed to start scheduler",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStartScheduler)
		return
	}

	render.JSON(w, r, SchedulerResponse{
		Status:  "started",
		Message: schedulerMessageStarted,
	})
}

// StopScheduler stops the periodic delivery worker.
func (h *Handler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	err := h.service.Scheduler.Stop()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerNotRunning, errorMessageSchedulerNotRunning)
			return
		}

		h.logger.Error("Failed to stop scheduler",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStopScheduler)
		return
	}

	render.JSON(w, r, SchedulerResponse{
		Status:  "stopped",
		Message: schedulerMessageStopped,
	})
}

// HealthCheck reports component health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := HealthResponse{
		Status:               string(health.Status),
		Timestamp:            time.Now(),
		SchedulerStatus:      string(health.SchedulerStatus),
		DatabaseStatus:       string(health.DatabaseStatus),
		RedisStatus:          string(health.RedisStatus),
		CircuitBreakerStatus: health.CircuitBreakerStatus,
		CircuitBreakerState:  string(health.CircuitBreakerState),
	}

	if health.Status == service.HealthStateUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, details string) {
	now := time.Now()
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:     errorCode,
		Details:   details,
		Timestamp: &now,
	})
}
