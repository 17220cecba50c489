package repository

import (
	"errors"
	"time"

	"github.com/chatdrip/sequence-engine/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrActiveEnrollmentExists is returned when a contact already has an
	// active run through the sequence.
	ErrActiveEnrollmentExists = errors.New("active enrollment already exists")
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	Messages() MessageRepository
	Sequences() SequenceRepository
	Restrictions() RestrictionRepository
	ContactSequences() ContactSequenceRepository
	Contacts() ContactRepository
	Stats() StatsRepository
}

// MessageRepository defines scheduled message operations.
type MessageRepository interface {
	Create(msg *models.ScheduledMessage) (int64, error)
	GetByID(id int64) (*models.ScheduledMessage, error)
	// ClaimDue atomically moves up to limit due waiting messages to
	// pending and returns them ordered by scheduled time. Rows claimed by
	// one sweep never appear in a concurrent sweep's result.
	ClaimDue(now time.Time, limit int) ([]*models.ScheduledMessage, error)
	// UpdateStatusFrom applies a conditional status transition keyed on
	// the expected prior status. It reports false when the row was not in
	// that status, which serializes concurrent outcome reports.
	UpdateStatusFrom(id int64, from, to models.MessageStatus, attempts int, errorMsg *string, sentAt *time.Time) (bool, error)
	GetSentMessages(offset, limit int) ([]*models.ScheduledMessage, error)
	GetTotalSentCount() (int64, error)
}

// SequenceRepository defines sequence and stage lookups.
type SequenceRepository interface {
	GetSequence(id int64) (*models.Sequence, error)
	GetStage(id int64) (*models.Stage, error)
	GetFirstStage(sequenceID int64) (*models.Stage, error)
	// GetNextStage returns the stage following afterIndex, or ErrNotFound
	// when the sequence has no further stages.
	GetNextStage(sequenceID int64, afterIndex int) (*models.Stage, error)
	GetInstance(id int64) (*models.Instance, error)
}

// RestrictionRepository defines blackout window lookups.
type RestrictionRepository interface {
	// ListActiveForSequence returns all active restrictions bound to the
	// sequence, global ones included.
	ListActiveForSequence(sequenceID int64) ([]models.TimeRestriction, error)
}

// ContactSequenceRepository defines enrollment progress operations.
type ContactSequenceRepository interface {
	Create(contactID, sequenceID int64, firstStage *models.Stage) (*models.ContactSequence, error)
	GetActive(contactID, sequenceID int64) (*models.ContactSequence, error)
	Advance(id int64, stageIndex int, stageID int64, at time.Time) error
	Complete(id int64, at time.Time) error
	Remove(id int64, at time.Time) error
}

// ContactRepository defines contact and client lookups.
type ContactRepository interface {
	GetContact(id int64) (*models.Contact, error)
	GetClient(id int64) (*models.Client, error)
}

// StatsRepository defines daily counter operations.
type StatsRepository interface {
	// Increment atomically adds the delta to the (instance, date) row,
	// creating it when absent.
	Increment(instanceID int64, date time.Time, delta models.StatDelta) error
	GetByInstanceAndDate(instanceID int64, date time.Time) (*models.DailyStat, error)
}
