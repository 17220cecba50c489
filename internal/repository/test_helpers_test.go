package repository_test

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// testFixture holds the ids of one seeded client/instance/contact/sequence
// graph plus its stage chain, so message and enrollment tests have valid
// foreign keys to hang rows on.
type testFixture struct {
	ClientID   int64
	InstanceID int64
	ContactID  int64
	SequenceID int64
	StageIDs   []int64
}

func seedFixture(db *sqlx.DB, stageCount int) (*testFixture, error) {
	f := &testFixture{}

	err := db.QueryRow(`
		INSERT INTO clients (name, chatwoot_account_id) VALUES ('Acme', 900) RETURNING id
	`).Scan(&f.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to seed client: %w", err)
	}

	err = db.QueryRow(`
		INSERT INTO instances (client_id, name, api_url, token)
		VALUES ($1, 'main-line', 'https://channel.example.com', 'tok') RETURNING id
	`, f.ClientID).Scan(&f.InstanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to seed instance: %w", err)
	}

	err = db.QueryRow(`
		INSERT INTO contacts (client_id, name, phone_number, chatwoot_contact_id, chatwoot_conversation_id)
		VALUES ($1, 'Ada', '+15550001111', 31, 32) RETURNING id
	`, f.ClientID).Scan(&f.ContactID)
	if err != nil {
		return nil, fmt.Errorf("failed to seed contact: %w", err)
	}

	err = db.QueryRow(`
		INSERT INTO sequences (instance_id, name, status)
		VALUES ($1, 'Onboarding', 'active') RETURNING id
	`, f.InstanceID).Scan(&f.SequenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to seed sequence: %w", err)
	}

	for i := 0; i < stageCount; i++ {
		var stageID int64
		err = db.QueryRow(`
			INSERT INTO stages (sequence_id, order_index, content, delay, delay_unit)
			VALUES ($1, $2, $3, 30, 'minutes') RETURNING id
		`, f.SequenceID, i, fmt.Sprintf("Stage %d body", i)).Scan(&stageID)
		if err != nil {
			return nil, fmt.Errorf("failed to seed stage %d: %w", i, err)
		}
		f.StageIDs = append(f.StageIDs, stageID)
	}

	return f, nil
}

func insertScheduledMessage(db *sqlx.DB, f *testFixture, stageID int64, status string, scheduledTime time.Time) (int64, error) {
	var id int64
	err := db.QueryRow(`
		INSERT INTO scheduled_messages
			(contact_id, sequence_id, stage_id, raw_scheduled_time, scheduled_time, status)
		VALUES ($1, $2, $3, $4, $4, $5)
		RETURNING id
	`, f.ContactID, f.SequenceID, stageID, scheduledTime, status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scheduled message: %w", err)
	}
	return id, nil
}

func insertSentMessage(db *sqlx.DB, f *testFixture, stageID int64, sentAt time.Time) (int64, error) {
	var id int64
	err := db.QueryRow(`
		INSERT INTO scheduled_messages
			(contact_id, sequence_id, stage_id, raw_scheduled_time, scheduled_time, status, sent_at)
		VALUES ($1, $2, $3, $4, $4, 'sent', $5)
		RETURNING id
	`, f.ContactID, f.SequenceID, stageID, sentAt.Add(-time.Hour), sentAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert sent message: %w", err)
	}
	return id, nil
}

func insertRestriction(db *sqlx.DB, sequenceID int64, global bool, days string, startHour, startMinute, endHour, endMinute int, active bool) (int64, error) {
	var id int64
	err := db.QueryRow(`
		INSERT INTO time_restrictions
			(name, active, is_global, days, start_hour, start_minute, end_hour, end_minute)
		VALUES ('window', $1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, active, global, days, startHour, startMinute, endHour, endMinute).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert restriction: %w", err)
	}

	if !global {
		if _, err := db.Exec(`
			INSERT INTO sequence_time_restrictions (sequence_id, restriction_id) VALUES ($1, $2)
		`, sequenceID, id); err != nil {
			return 0, fmt.Errorf("failed to bind restriction: %w", err)
		}
	}

	return id, nil
}
