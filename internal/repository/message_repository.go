package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/chatdrip/sequence-engine/internal/models"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

const messageColumns = `id, contact_id, sequence_id, stage_id, raw_scheduled_time, scheduled_time, status, attempts, sent_at, error, created_at, updated_at`

// Create inserts a new scheduled message in waiting status.
func (r *messageRepository) Create(msg *models.ScheduledMessage) (int64, error) {
	query := `
		INSERT INTO scheduled_messages
			(contact_id, sequence_id, stage_id, raw_scheduled_time, scheduled_time, status, attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $7)
		RETURNING id
	`

	var id int64
	now := time.Now()
	err := r.db.QueryRow(query,
		msg.ContactID, msg.SequenceID, msg.StageID,
		msg.RawScheduledTime, msg.ScheduledTime, models.MessageStatusWaiting, now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create scheduled message: %w", err)
	}

	return id, nil
}

// GetByID retrieves a single message.
func (r *messageRepository) GetByID(id int64) (*models.ScheduledMessage, error) {
	query := fmt.Sprintf(`SELECT %s FROM scheduled_messages WHERE id = $1`, messageColumns)

	var msg models.ScheduledMessage
	err := r.db.Get(&msg, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	return &msg, nil
}

// ClaimDue transitions due waiting messages to pending and returns them.
// The claim is a single conditional update so overlapping sweeps cannot
// take the same rows; SKIP LOCKED keeps a slow sweep from blocking the next
// one.
func (r *messageRepository) ClaimDue(now time.Time, limit int) ([]*models.ScheduledMessage, error) {
	query := fmt.Sprintf(`
		WITH claimed AS (
			UPDATE scheduled_messages
			SET status = $1, updated_at = $2
			WHERE id IN (
				SELECT id FROM scheduled_messages
				WHERE status = $3 AND scheduled_time <= $2
				ORDER BY scheduled_time ASC
				LIMIT $4
				FOR UPDATE SKIP LOCKED
			)
			RETURNING %s
		)
		SELECT %s FROM claimed ORDER BY scheduled_time ASC
	`, messageColumns, messageColumns)

	var messages []*models.ScheduledMessage
	err := r.db.Select(&messages, query, models.MessageStatusPending, now, models.MessageStatusWaiting, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim due messages: %w", err)
	}

	return messages, nil
}

// UpdateStatusFrom applies the transition only when the row still holds the
// expected prior status.
func (r *messageRepository) UpdateStatusFrom(id int64, from, to models.MessageStatus, attempts int, errorMsg *string, sentAt *time.Time) (bool, error) {
	query := `
		UPDATE scheduled_messages
		SET status = $3,
		    attempts = $4,
		    error = $5,
		    sent_at = COALESCE($6, sent_at),
		    updated_at = $7
		WHERE id = $1 AND status = $2
	`

	var errMsg sql.NullString
	if errorMsg != nil {
		errMsg = sql.NullString{String: *errorMsg, Valid: true}
	}

	var sent sql.NullTime
	if sentAt != nil {
		sent = sql.NullTime{Time: *sentAt, Valid: true}
	}

	res, err := r.db.Exec(query, id, from, to, attempts, errMsg, sent, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to update message status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows == 1, nil
}

// GetSentMessages retrieves sent messages with pagination.
func (r *messageRepository) GetSentMessages(offset, limit int) ([]*models.ScheduledMessage, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM scheduled_messages
		WHERE status = $1
		ORDER BY sent_at DESC
		LIMIT $2 OFFSET $3
	`, messageColumns)

	var messages []*models.ScheduledMessage
	err := r.db.Select(&messages, query, models.MessageStatusSent, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get sent messages: %w", err)
	}

	return messages, nil
}

// GetTotalSentCount returns the total count of sent messages.
func (r *messageRepository) GetTotalSentCount() (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM scheduled_messages WHERE status = $1`

	err := r.db.Get(&count, query, models.MessageStatusSent)
	if err != nil {
		return 0, fmt.Errorf("failed to get total sent count: %w", err)
	}

	return count, nil
}
