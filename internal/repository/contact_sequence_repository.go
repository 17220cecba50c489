package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/chatdrip/sequence-engine/internal/models"
)

type contactSequenceRepository struct {
	db *sqlx.DB
}

func NewContactSequenceRepository(db *sqlx.DB) ContactSequenceRepository {
	return &contactSequenceRepository{
		db: db,
	}
}

const contactSequenceColumns = `id, contact_id, sequence_id, status, current_stage_index, current_stage_id, started_at, last_message_at, completed_at, removed_at, created_at, updated_at`

// Create inserts a new active enrollment. The partial unique index on
// (contact_id, sequence_id) for active rows enforces the single-active-run
// invariant; a violation maps to ErrActiveEnrollmentExists.
func (r *contactSequenceRepository) Create(contactID, sequenceID int64, firstStage *models.Stage) (*models.ContactSequence, error) {
	query := fmt.Sprintf(`
		INSERT INTO contact_sequences
			(contact_id, sequence_id, status, current_stage_index, current_stage_id, started_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6, $6)
		RETURNING %s
	`, contactSequenceColumns)

	var stageID sql.NullInt64
	stageIndex := 0
	if firstStage != nil {
		stageID = sql.NullInt64{Int64: firstStage.ID, Valid: true}
		stageIndex = firstStage.OrderIndex
	}

	var cs models.ContactSequence
	err := r.db.Get(&cs, query, contactID, sequenceID, models.ContactSequenceStatusActive, stageIndex, stageID, time.Now())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrActiveEnrollmentExists
		}
		return nil, fmt.Errorf("failed to create contact sequence: %w", err)
	}

	return &cs, nil
}

// GetActive retrieves the single active run of a contact through a
// sequence.
func (r *contactSequenceRepository) GetActive(contactID, sequenceID int64) (*models.ContactSequence, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM contact_sequences
		WHERE contact_id = $1 AND sequence_id = $2 AND status = $3
	`, contactSequenceColumns)

	var cs models.ContactSequence
	err := r.db.Get(&cs, query, contactID, sequenceID, models.ContactSequenceStatusActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active contact sequence: %w", err)
	}

	return &cs, nil
}

// Advance moves an active run to the next stage and records the message
// time.
func (r *contactSequenceRepository) Advance(id int64, stageIndex int, stageID int64, at time.Time) error {
	query := `
		UPDATE contact_sequences
		SET current_stage_index = $2,
		    current_stage_id = $3,
		    last_message_at = $4,
		    updated_at = $4
		WHERE id = $1 AND status = $5
	`

	_, err := r.db.Exec(query, id, stageIndex, stageID, at, models.ContactSequenceStatusActive)
	if err != nil {
		return fmt.Errorf("failed to advance contact sequence: %w", err)
	}

	return nil
}

// Complete closes an active run after its last stage was delivered.
func (r *contactSequenceRepository) Complete(id int64, at time.Time) error {
	query := `
		UPDATE contact_sequences
		SET status = $2,
		    completed_at = $3,
		    last_message_at = $3,
		    updated_at = $3
		WHERE id = $1 AND status = $4
	`

	_, err := r.db.Exec(query, id, models.ContactSequenceStatusCompleted, at, models.ContactSequenceStatusActive)
	if err != nil {
		return fmt.Errorf("failed to complete contact sequence: %w", err)
	}

	return nil
}

// Remove closes an active run on behalf of an operator or tag change.
func (r *contactSequenceRepository) Remove(id int64, at time.Time) error {
	query := `
		UPDATE contact_sequences
		SET status = $2,
		    removed_at = $3,
		    updated_at = $3
		WHERE id = $1 AND status = $4
	`

	_, err := r.db.Exec(query, id, models.ContactSequenceStatusRemoved, at, models.ContactSequenceStatusActive)
	if err != nil {
		return fmt.Errorf("failed to remove contact sequence: %w", err)
	}

	return nil
}
