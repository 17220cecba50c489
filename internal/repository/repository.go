package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db               *sqlx.DB
	messages         MessageRepository
	sequences        SequenceRepository
	restrictions     RestrictionRepository
	contactSequences ContactSequenceRepository
	contacts         ContactRepository
	stats            StatsRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:               db,
		messages:         NewMessageRepository(db),
		sequences:        NewSequenceRepository(db),
		restrictions:     NewRestrictionRepository(db),
		contactSequences: NewContactSequenceRepository(db),
		contacts:         NewContactRepository(db),
		stats:            NewStatsRepository(db),
	}
}

func (r *repositoryImpl) Messages() MessageRepository {
	return r.messages
}

func (r *repositoryImpl) Sequences() SequenceRepository {
	return r.sequences
}

func (r *repositoryImpl) Restrictions() RestrictionRepository {
	return r.restrictions
}

func (r *repositoryImpl) ContactSequences() ContactSequenceRepository {
	return r.contactSequences
}

func (r *repositoryImpl) Contacts() ContactRepository {
	return r.contacts
}

func (r *repositoryImpl) Stats() StatsRepository {
	return r.stats
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
