package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chatdrip/sequence-engine/internal/models"
)

type sequenceRepository struct {
	db *sqlx.DB
}

func NewSequenceRepository(db *sqlx.DB) SequenceRepository {
	return &sequenceRepository{
		db: db,
	}
}

const stageColumns = `id, sequence_id, order_index, stage_type, content, delay, delay_unit, created_at`

// GetSequence retrieves a sequence by id.
func (r *sequenceRepository) GetSequence(id int64) (*models.Sequence, error) {
	query := `
		SELECT id, instance_id, name, status, created_at, updated_at
		FROM sequences
		WHERE id = $1
	`

	var seq models.Sequence
	err := r.db.Get(&seq, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sequence: %w", err)
	}

	return &seq, nil
}

// GetStage retrieves a stage by id.
func (r *sequenceRepository) GetStage(id int64) (*models.Stage, error) {
	query := fmt.Sprintf(`SELECT %s FROM stages WHERE id = $1`, stageColumns)

	var stage models.Stage
	err := r.db.Get(&stage, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}

	return &stage, nil
}

// GetFirstStage retrieves the lowest-indexed stage of a sequence.
func (r *sequenceRepository) GetFirstStage(sequenceID int64) (*models.Stage, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM stages
		WHERE sequence_id = $1
		ORDER BY order_index ASC
		LIMIT 1
	`, stageColumns)

	var stage models.Stage
	err := r.db.Get(&stage, query, sequenceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get first stage: %w", err)
	}

	return &stage, nil
}

// GetNextStage retrieves the stage that follows the given order index.
func (r *sequenceRepository) GetNextStage(sequenceID int64, afterIndex int) (*models.Stage, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM stages
		WHERE sequence_id = $1 AND order_index > $2
		ORDER BY order_index ASC
		LIMIT 1
	`, stageColumns)

	var stage models.Stage
	err := r.db.Get(&stage, query, sequenceID, afterIndex)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get next stage: %w", err)
	}

	return &stage, nil
}

// GetInstance retrieves the channel instance a sequence is bound to.
func (r *sequenceRepository) GetInstance(id int64) (*models.Instance, error) {
	query := `
		SELECT id, client_id, name, api_url, token, active, created_at
		FROM instances
		WHERE id = $1
	`

	var instance models.Instance
	err := r.db.Get(&instance, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}

	return &instance, nil
}
