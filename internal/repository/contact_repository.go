package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chatdrip/sequence-engine/internal/models"
)

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// GetContact retrieves a contact by id.
func (r *contactRepository) GetContact(id int64) (*models.Contact, error) {
	query := `
		SELECT id, client_id, name, phone_number, chatwoot_contact_id, chatwoot_conversation_id, created_at
		FROM contacts
		WHERE id = $1
	`

	var contact models.Contact
	err := r.db.Get(&contact, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return &contact, nil
}

// GetClient retrieves the owning client account.
func (r *contactRepository) GetClient(id int64) (*models.Client, error) {
	query := `
		SELECT id, name, chatwoot_account_id, created_at
		FROM clients
		WHERE id = $1
	`

	var client models.Client
	err := r.db.Get(&client, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &client, nil
}
