// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// SequenceStatus is the lifecycle state of a sequence definition.
type SequenceStatus string

const (
	SequenceStatusActive   SequenceStatus = "active"
	SequenceStatusInactive SequenceStatus = "inactive"
)

// StageType determines how the stage content is interpreted by the channel.
type StageType string

const (
	StageTypeMessage StageType = "message"
	StageTypePattern StageType = "pattern"
	StageTypeTypebot StageType = "typebot"
)

// DelayUnit is the unit of a stage's delay value.
type DelayUnit string

const (
	DelayUnitMinutes DelayUnit = "minutes"
	DelayUnitHours   DelayUnit = "hours"
	DelayUnitDays    DelayUnit = "days"
)

// ContactSequenceStatus is the state of one contact's run through a sequence.
type ContactSequenceStatus string

const (
	ContactSequenceStatusActive    ContactSequenceStatus = "active"
	ContactSequenceStatusCompleted ContactSequenceStatus = "completed"
	ContactSequenceStatusRemoved   ContactSequenceStatus = "removed"
)

// Client is an account on the conversation platform.
type Client struct {
	ID                int64     `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	ChatwootAccountID int64     `db:"chatwoot_account_id" json:"chatwoot_account_id"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// Instance is a messaging channel with its credentials.
type Instance struct {
	ID        int64     `db:"id" json:"id"`
	ClientID  int64     `db:"client_id" json:"client_id"`
	Name      string    `db:"name" json:"name"`
	APIURL    string    `db:"api_url" json:"api_url"`
	Token     string    `db:"token" json:"-"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Contact is a person the engine messages.
type Contact struct {
	ID                     int64     `db:"id" json:"id"`
	ClientID               int64     `db:"client_id" json:"client_id"`
	Name                   string    `db:"name" json:"name"`
	PhoneNumber            string    `db:"phone_number" json:"phone_number"`
	ChatwootContactID      int64     `db:"chatwoot_contact_id" json:"chatwoot_contact_id"`
	ChatwootConversationID int64     `db:"chatwoot_conversation_id" json:"chatwoot_conversation_id"`
	CreatedAt              time.Time `db:"created_at" json:"created_at"`
}

// Sequence is an ordered drip campaign bound to one instance.
type Sequence struct {
	ID         int64          `db:"id" json:"id"`
	InstanceID int64          `db:"instance_id" json:"instance_id"`
	Name       string         `db:"name" json:"name"`
	Status     SequenceStatus `db:"status" json:"status"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

// Stage is one step within a sequence.
type Stage struct {
	ID         int64     `db:"id" json:"id"`
	SequenceID int64     `db:"sequence_id" json:"sequence_id"`
	OrderIndex int       `db:"order_index" json:"order_index"`
	StageType  StageType `db:"stage_type" json:"stage_type"`
	Content    string    `db:"content" json:"content"`
	Delay      int       `db:"delay" json:"delay"`
	DelayUnit  DelayUnit `db:"delay_unit" json:"delay_unit"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// DelayMinutes converts the stage delay to minutes. Unknown units are
// treated as minutes.
func (s *Stage) DelayMinutes() int {
	switch s.DelayUnit {
	case DelayUnitHours:
		return s.Delay * 60
	case DelayUnitDays:
		return s.Delay * 1440
	default:
		return s.Delay
	}
}

// TimeRestriction is a recurring blackout window. Start and end are stored
// as integer hour/minute pairs; an end at or before the start denotes a
// window crossing midnight.
type TimeRestriction struct {
	ID          int64         `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Active      bool          `db:"active" json:"active"`
	IsGlobal    bool          `db:"is_global" json:"is_global"`
	Days        pq.Int64Array `db:"days" json:"days"`
	StartHour   int           `db:"start_hour" json:"start_hour"`
	StartMinute int           `db:"start_minute" json:"start_minute"`
	EndHour     int           `db:"end_hour" json:"end_hour"`
	EndMinute   int           `db:"end_minute" json:"end_minute"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}

// StartOffset returns the window start as minutes from midnight.
func (r *TimeRestriction) StartOffset() int {
	return r.StartHour*60 + r.StartMinute
}

// EndOffset returns the window end as minutes from midnight.
func (r *TimeRestriction) EndOffset() int {
	return r.EndHour*60 + r.EndMinute
}

// AppliesOn reports whether the restriction covers the given weekday.
func (r *TimeRestriction) AppliesOn(d time.Weekday) bool {
	for _, day := range r.Days {
		if time.Weekday(day) == d {
			return true
		}
	}
	return false
}

// ContactSequence is the join record tracking one contact's progress
// through one sequence. At most one active row exists per (contact,
// sequence) pair.
type ContactSequence struct {
	ID                int64                 `db:"id" json:"id"`
	ContactID         int64                 `db:"contact_id" json:"contact_id"`
	SequenceID        int64                 `db:"sequence_id" json:"sequence_id"`
	Status            ContactSequenceStatus `db:"status" json:"status"`
	CurrentStageIndex int                   `db:"current_stage_index" json:"current_stage_index"`
	CurrentStageID    sql.NullInt64         `db:"current_stage_id" json:"current_stage_id,omitempty"`
	StartedAt         time.Time             `db:"started_at" json:"started_at"`
	LastMessageAt     sql.NullTime          `db:"last_message_at" json:"last_message_at,omitempty"`
	CompletedAt       sql.NullTime          `db:"completed_at" json:"completed_at,omitempty"`
	RemovedAt         sql.NullTime          `db:"removed_at" json:"removed_at,omitempty"`
	CreatedAt         time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time             `db:"updated_at" json:"updated_at"`
}

// ScheduledMessage is one in-flight unit of outbound work tied to a stage.
type ScheduledMessage struct {
	ID               int64          `db:"id" json:"id"`
	ContactID        int64          `db:"contact_id" json:"contact_id"`
	SequenceID       int64          `db:"sequence_id" json:"sequence_id"`
	StageID          int64          `db:"stage_id" json:"stage_id"`
	RawScheduledTime time.Time      `db:"raw_scheduled_time" json:"raw_scheduled_time"`
	ScheduledTime    time.Time      `db:"scheduled_time" json:"scheduled_time"`
	Status           MessageStatus  `db:"status" json:"status"`
	Attempts         int            `db:"attempts" json:"attempts"`
	SentAt           sql.NullTime   `db:"sent_at" json:"sent_at,omitempty"`
	Error            sql.NullString `db:"error" json:"error,omitempty"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

// StatDelta carries counter increments for one daily stats upsert.
type StatDelta struct {
	Scheduled int
	Sent      int
	Failed    int
	Completed int
}

// DailyStat is one row of per-instance, per-day counters. Counters only
// ever grow.
type DailyStat struct {
	ID                 int64     `db:"id" json:"id"`
	InstanceID         int64     `db:"instance_id" json:"instance_id"`
	StatDate           time.Time `db:"stat_date" json:"stat_date"`
	MessagesScheduled  int64     `db:"messages_scheduled" json:"messages_scheduled"`
	MessagesSent       int64     `db:"messages_sent" json:"messages_sent"`
	MessagesFailed     int64     `db:"messages_failed" json:"messages_failed"`
	CompletedSequences int64     `db:"completed_sequences" json:"completed_sequences"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}
