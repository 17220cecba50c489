package repository_test

import (
	"testing"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatdrip/sequence-engine/internal/repository"
)

func TestRepository_Ping(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewRepository(db)
	assert.NoError(t, repo.Ping())
}

func TestSequenceRepository_StageLookups(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	f, err := seedFixture(db, 3)
	require.NoError(t, err)

	repo := repository.NewSequenceRepository(db)

	seq, err := repo.GetSequence(f.SequenceID)
	require.NoError(t, err)
	assert.Equal(t, f.InstanceID, seq.InstanceID)

	first, err := repo.GetFirstStage(f.SequenceID)
	require.NoError(t, err)
	assert.Equal(t, f.StageIDs[0], first.ID)
	assert.Equal(t, 0, first.OrderIndex)

	second, err := repo.GetNextStage(f.SequenceID, first.OrderIndex)
	require.NoError(t, err)
	assert.Equal(t, f.StageIDs[1], second.ID)

	third, err := repo.GetNextStage(f.SequenceID, second.OrderIndex)
	require.NoError(t, err)
	assert.Equal(t, f.StageIDs[2], third.ID)

	// Past the last stage the chain ends.
	_, err = repo.GetNextStage(f.SequenceID, third.OrderIndex)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	instance, err := repo.GetInstance(f.InstanceID)
	require.NoError(t, err)
	assert.Equal(t, f.ClientID, instance.ClientID)
}

func TestSequenceRepository_GetFirstStage_EmptySequence(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	f, err := seedFixture(db, 0)
	require.NoError(t, err)

	repo := repository.NewSequenceRepository(db)

	stage, err := repo.GetFirstStage(f.SequenceID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, stage)
}

func TestRestrictionRepository_ListActiveForSequence(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	f, err := seedFixture(db, 1)
	require.NoError(t, err)

	boundID, err := insertRestriction(db, f.SequenceID, false, "{1,2,3,4,5}", 22, 0, 8, 0, true)
	require.NoError(t, err)
	globalID, err := insertRestriction(db, 0, true, "{0,6}", 0, 0, 23, 59, true)
	require.NoError(t, err)

	// Inactive and unbound windows never apply.
	_, err = insertRestriction(db, f.SequenceID, false, "{1}", 12, 0, 13, 0, false)
	require.NoError(t, err)

	var otherSeq int64
	err = db.QueryRow(`INSERT INTO sequences (instance_id, name, status) VALUES ($1, 'Other', 'active') RETURNING id`, f.InstanceID).Scan(&otherSeq)
	require.NoError(t, err)
	_, err = insertRestriction(db, otherSeq, false, "{1}", 9, 0, 17, 0, true)
	require.NoError(t, err)

	repo := repository.NewRestrictionRepository(db)

	restrictions, err := repo.ListActiveForSequence(f.SequenceID)
	require.NoError(t, err)
	require.Len(t, restrictions, 2)

	ids := []int64{restrictions[0].ID, restrictions[1].ID}
	assert.Contains(t, ids, boundID)
	assert.Contains(t, ids, globalID)

	for _, r := range restrictions {
		if r.ID == boundID {
			assert.Equal(t, 22, r.StartHour)
			assert.Equal(t, 8, r.EndHour)
			assert.Len(t, r.Days, 5)
		}
	}
}

func TestContactRepository_Lookups(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	f, err := seedFixture(db, 1)
	require.NoError(t, err)

	repo := repository.NewContactRepository(db)

	contact, err := repo.GetContact(f.ContactID)
	require.NoError(t, err)
	assert.Equal(t, "+15550001111", contact.PhoneNumber)
	assert.Equal(t, f.ClientID, contact.ClientID)

	client, err := repo.GetClient(f.ClientID)
	require.NoError(t, err)
	assert.Equal(t, int64(900), client.ChatwootAccountID)

	_, err = repo.GetContact(99999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
