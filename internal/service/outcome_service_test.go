package service_test

import (
	"errors"
	"testing"
	"time"

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

type outcomeFixture struct {
	messages     *mocks.MockMessageRepository
	sequences    *mocks.MockSequenceRepository
	contactSeqs  *mocks.MockContactSequenceRepository
	restrictions *mocks.MockRestrictionRepository
	stats        *mocks.MockStatsRepository
	svc          service.OutcomeService
}

func newOutcomeFixture(t *testing.T) *outcomeFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockRepository(ctrl)
	f := &outcomeFixture{
		messages:     mocks.NewMockMessageRepository(ctrl),
		sequences:    mocks.NewMockSequenceRepository(ctrl),
		contactSeqs:  mocks.NewMockContactSequenceRepository(ctrl),
		restrictions: mocks.NewMockRestrictionRepository(ctrl),
		stats:        mocks.NewMockStatsRepository(ctrl),
	}

	mockRepo.EXPECT().Messages().Return(f.messages).AnyTimes()
	mockRepo.EXPECT().Sequences().Return(f.sequences).AnyTimes()
	mockRepo.EXPECT().ContactSequences().Return(f.contactSeqs).AnyTimes()
	mockRepo.EXPECT().Restrictions().Return(f.restrictions).AnyTimes()
	mockRepo.EXPECT().Stats().Return(f.stats).AnyTimes()

	cfg := &config.Config{
		Engine: config.EngineConfig{
			MaxAttempts: 3,
		},
	}

	logger := zap.NewNop()
	schedule := service.NewScheduleService(cfg, mockRepo, logger)
	f.svc = service.NewOutcomeService(cfg, mockRepo, schedule, logger)
	return f
}

func pendingMessage() *models.ScheduledMessage {
	return &models.ScheduledMessage{
		ID:         1,
		ContactID:  3,
		SequenceID: 5,
		StageID:    11,
		Status:     models.MessageStatusPending,
		Attempts:   0,
	}
}

func TestOutcomeService_HandleOutcome_SuccessAdvancesAndSchedulesNextStage(t *testing.T) {
	f := newOutcomeFixture(t)

	msg := pendingMessage()
	seq := &models.Sequence{ID: 5, InstanceID: 7, Status: models.SequenceStatusActive}
	deliveredStage := &models.Stage{ID: 11, SequenceID: 5, OrderIndex: 0}
	nextStage := &models.Stage{ID: 12, SequenceID: 5, OrderIndex: 1, Delay: 1, DelayUnit: models.DelayUnitDays}

	f.messages.EXPECT().GetByID(int64(1)).Return(msg, nil)
	f.messages.EXPECT().
		UpdateStatusFrom(int64(1), models.MessageStatusPending, models.MessageStatusSent, 0, nil, gomock.Not(gomock.Nil())).
		Return(true, nil)

	f.sequences.EXPECT().GetSequence(int64(5)).Return(seq, nil).Times(2)
	f.stats.EXPECT().Increment(int64(7), gomock.Any(), models.StatDelta{Sent: 1}).Return(nil)

	cs := &models.ContactSequence{ID: 21, ContactID: 3, SequenceID: 5, Status: models.ContactSequenceStatusActive}
	f.contactSeqs.EXPECT().GetActive(int64(3), int64(5)).Return(cs, nil)
	f.sequences.EXPECT().GetStage(int64(11)).Return(deliveredStage, nil)
	f.sequences.EXPECT().GetNextStage(int64(5), 0).Return(nextStage, nil)
	f.contactSeqs.EXPECT().Advance(int64(21), 1, int64(12), gomock.Any()).Return(nil)

	// The next stage is scheduled through the regular scheduling path.
	f.restrictions.EXPECT().ListActiveForSequence(int64(5)).Return(nil, nil)
	f.stats.EXPECT().Increment(int64(7), gomock.Any(), models.StatDelta{Scheduled: 1}).Return(nil)

	var scheduledNext *models.ScheduledMessage
	f.messages.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.ScheduledMessage) (int64, error) {
		scheduledNext = m
		return 2, nil
	})

	updated, err := f.svc.HandleOutcome(1, models.OutcomeSuccess, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, models.MessageStatusSent, updated.Status)
	assert.True(t, updated.SentAt.Valid)

	require.NotNil(t, scheduledNext)
	assert.Equal(t, int64(12), scheduledNext.StageID)
	assert.Equal(t, models.MessageStatusWaiting, scheduledNext.Status)
}

func TestOutcomeService_HandleOutcome_LastStageCompletesRun(t *testing.T) {
	f := newOutcomeFixture(t)

	msg := pendingMessage()
	seq := &models.Sequence{ID: 5, InstanceID: 7, Status: models.SequenceStatusActive}
	deliveredStage := &models.Stage{ID: 11, SequenceID: 5, OrderIndex: 2}

	f.messages.EXPECT().GetByID(int64(1)).Return(msg, nil)
	f.messages.EXPECT().
		UpdateStatusFrom(int64(1), models.MessageStatusPending, models.MessageStatusSent, 0, nil, gomock.Not(gomock.Nil())).
		Return(true, nil)

	f.sequences.EXPECT().GetSequence(int64(5)).Return(seq, nil)
	f.stats.EXPECT().Increment(int64(7), gomock.Any(), models.StatDelta{Sent: 1}).Return(nil)

	cs := &models.ContactSequence{ID: 21, ContactID: 3, SequenceID: 5, Status: models.ContactSequenceStatusActive}
	f.contactSeqs.EXPECT().GetActive(int64(3), int64(5)).Return(cs, nil)
	f.sequences.EXPECT().GetStage(int64(11)).Return(deliveredStage, nil)
	f.sequences.EXPECT().GetNextStage(int64(5), 2).Return(nil, repository.ErrNotFound)
	f.contactSeqs.EXPECT().Complete(int64(21), gomock.Any()).Return(nil)
	f.stats.EXPECT().Increment(int64(7), gomock.Any(), models.StatDelta{Completed: 1}).Return(nil)

	updated, err := f.svc.HandleOutcome(1, models.OutcomeSuccess, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusSent, updated.Status)
}

func TestOutcomeService_HandleOutcome_FailureIncrementsAttempts(t *testing.T) {
	f := newOutcomeFixture(t)

	msg := pendingMessage()
	errDetail := "timeout talking to channel"

	f.messages.EXPECT().GetByID(int64(1)).Return(msg, nil)
	f.messages.EXPECT().
		UpdateStatusFrom(int64(1), models.MessageStatusPending, models.MessageStatusFailed, 1, &errDetail, nil).
		Return(true, nil)
	f.sequences.EXPECT().GetSequence(int64(5)).Return(&models.Sequence{ID: 5, InstanceID: 7}, nil)
	f.stats.EXPECT().Increment(int64(7), gomock.Any(), models.StatDelta{Failed: 1}).Return(nil)

	updated, err := f.svc.HandleOutcome(1, models.OutcomeFailure, nil, &errDetail)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusFailed, updated.Status)
	assert.Equal(t, 1, updated.Attempts)
	assert.Equal(t, errDetail, updated.Error.String)
}

func TestOutcomeService_HandleOutcome_ThirdFailureIsPersistent(t *testing.T) {
	f := newOutcomeFixture(t)

	msg := pendingMessage()
	msg.Status = models.MessageStatusFailed
	msg.Attempts = 2

	f.messages.EXPECT().GetByID(int64(1)).Return(msg, nil)
	f.messages.EXPECT().
		UpdateStatusFrom(int64(1), models.MessageStatusFailed, models.MessageStatusPersistentError, 3, nil, nil).
		Return(true, nil)
	f.sequences.EXPECT().GetSequence(int64(5)).Return(&models.Sequence{ID: 5, InstanceID: 7}, nil)
	f.stats.EXPECT().Increment(int64(7), gomock.Any(), models.StatDelta{Failed: 1}).Return(nil)

	updated, err := f.svc.HandleOutcome(1, models.OutcomeFailure, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusPersistentError, updated.Status)
	assert.Equal(t, 3, updated.Attempts)
}

func TestOutcomeService_HandleOutcome_TerminalMessageIsNoOp(t *testing.T) {
	f := newOutcomeFixture(t)

	msg := pendingMessage()
	msg.Status = models.MessageStatusSent

	// Only the read happens; no update, no stats, no advancement.
	f.messages.EXPECT().GetByID(int64(1)).Return(msg, nil)

	updated, err := f.svc.HandleOutcome(1, models.OutcomeSuccess, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusSent, updated.Status)
}

func TestOutcomeService_HandleOutcome_WaitingMessageRejected(t *testing.T) {
	f := newOutcomeFixture(t)

	msg := pendingMessage()
	msg.Status = models.MessageStatusWaiting

	f.messages.EXPECT().GetByID(int64(1)).Return(msg, nil)

	updated, err := f.svc.HandleOutcome(1, models.OutcomeSuccess, nil, nil)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
	assert.Nil(t, updated)
}

func TestOutcomeService_HandleOutcome_MessageNotFound(t *testing.T) {
	f := newOutcomeFixture(t)

	f.messages.EXPECT().GetByID(int64(404)).Return(nil, repository.ErrNotFound)

	updated, err := f.svc.HandleOutcome(404, models.OutcomeSuccess, nil, nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, updated)
}

func TestOutcomeService_HandleOutcome_ConcurrentReportLoses(t *testing.T) {
	f := newOutcomeFixture(t)

	msg := pendingMessage()

	f.messages.EXPECT().GetByID(int64(1)).Return(msg, nil)
	f.messages.EXPECT().
		UpdateStatusFrom(int64(1), models.MessageStatusPending, models.MessageStatusSent, 0, nil, gomock.Not(gomock.Nil())).
		Return(false, nil)

	// The losing report re-reads and returns the winner's state without
	// touching stats or the contact sequence.
	winner := pendingMessage()
	winner.Status = models.MessageStatusSent
	winner.SentAt.Time = time.Now()
	winner.SentAt.Valid = true
	f.messages.EXPECT().GetByID(int64(1)).Return(winner, nil)

	updated, err := f.svc.HandleOutcome(1, models.OutcomeSuccess, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusSent, updated.Status)
}

func TestOutcomeService_HandleOutcome_AttemptsHintWins(t *testing.T) {
	f := newOutcomeFixture(t)

	msg := pendingMessage()
	hint := 2

	f.messages.EXPECT().GetByID(int64(1)).Return(msg, nil)
	// Hint 2 plus this failure reaches the cap of 3.
	f.messages.EXPECT().
		UpdateStatusFrom(int64(1), models.MessageStatusPending, models.MessageStatusPersistentError, 3, nil, nil).
		Return(true, nil)
	f.sequences.EXPECT().GetSequence(int64(5)).Return(&models.Sequence{ID: 5, InstanceID: 7}, nil)
	f.stats.EXPECT().Increment(int64(7), gomock.Any(), models.StatDelta{Failed: 1}).Return(nil)

	updated, err := f.svc.HandleOutcome(1, models.OutcomeFailure, &hint, nil)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusPersistentError, updated.Status)
}

func TestOutcomeService_HandleOutcome_AdvanceFailureDoesNotFailReport(t *testing.T) {
	f := newOutcomeFixture(t)

	msg := pendingMessage()

	f.messages.EXPECT().GetByID(int64(1)).Return(msg, nil)
	f.messages.EXPECT().
		UpdateStatusFrom(int64(1), models.MessageStatusPending, models.MessageStatusSent, 0, nil, gomock.Not(gomock.Nil())).
		Return(true, nil)
	f.sequences.EXPECT().GetSequence(int64(5)).Return(&models.Sequence{ID: 5, InstanceID: 7}, nil)
	f.stats.EXPECT().Increment(int64(7), gomock.Any(), models.StatDelta{Sent: 1}).Return(nil)

	f.contactSeqs.EXPECT().GetActive(int64(3), int64(5)).Return(nil, errors.New("connection reset"))

	updated, err := f.svc.HandleOutcome(1, models.OutcomeSuccess, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusSent, updated.Status)
}
