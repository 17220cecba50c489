package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chatdrip/sequence-engine/internal/models"
)

type restrictionRepository struct {
	db *sqlx.DB
}

func NewRestrictionRepository(db *sqlx.DB) RestrictionRepository {
	return &restrictionRepository{
		db: db,
	}
}

// ListActiveForSequence returns all active restrictions that apply to the
// sequence: global windows plus windows bound through the join table.
func (r *restrictionRepository) ListActiveForSequence(sequenceID int64) ([]models.TimeRestriction, error) {
	query := `
		SELECT id, name, active, is_global, days, start_hour, start_minute, end_hour, end_minute, created_at
		FROM time_restrictions
		WHERE active = TRUE
		  AND (is_global = TRUE OR id IN (
			SELECT restriction_id FROM sequence_time_restrictions WHERE sequence_id = $1
		  ))
		ORDER BY id ASC
	`

	var restrictions []models.TimeRestriction
	err := r.db.Select(&restrictions, query, sequenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list restrictions for sequence: %w", err)
	}

	return restrictions, nil
}
