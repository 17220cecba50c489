package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/chatdrip/sequence-engine/internal/models"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// Increment adds the delta to the (instance, date) row in one upsert
// statement, so concurrent increments for the same key never lose counts.
func (r *statsRepository) Increment(instanceID int64, date time.Time, delta models.StatDelta) error {
	query := `
		INSERT INTO daily_stats
			(instance_id, stat_date, messages_scheduled, messages_sent, messages_failed, completed_sequences, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (instance_id, stat_date) DO UPDATE SET
			messages_scheduled  = daily_stats.messages_scheduled + EXCLUDED.messages_scheduled,
			messages_sent       = daily_stats.messages_sent + EXCLUDED.messages_sent,
			messages_failed     = daily_stats.messages_failed + EXCLUDED.messages_failed,
			completed_sequences = daily_stats.completed_sequences + EXCLUDED.completed_sequences,
			updated_at          = EXCLUDED.updated_at
	`

	day := date.Truncate(24 * time.Hour)
	_, err := r.db.Exec(query, instanceID, day,
		delta.Scheduled, delta.Sent, delta.Failed, delta.Completed, time.Now())
	if err != nil {
		return fmt.Errorf("failed to increment daily stats: %w", err)
	}

	return nil
}

// GetByInstanceAndDate retrieves one day's counters for an instance.
func (r *statsRepository) GetByInstanceAndDate(instanceID int64, date time.Time) (*models.DailyStat, error) {
	query := `
		SELECT id, instance_id, stat_date, messages_scheduled, messages_sent, messages_failed, completed_sequences, created_at, updated_at
		FROM daily_stats
		WHERE instance_id = $1 AND stat_date = $2
	`

	var stat models.DailyStat
	err := r.db.Get(&stat, query, instanceID, date.Truncate(24*time.Hour))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}

	return &stat, nil
}
