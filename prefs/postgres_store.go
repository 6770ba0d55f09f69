package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, userID int, key string) ([]string, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM user_preferences WHERE user_id = $1 AND pref_key = $2
	`, userID, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load preference %s: %w", key, err)
	}

	var values []string
	if err := json.Unmarshal(payload, &values); err != nil {
		// A corrupt record is the same as no saved preferences.
		log.Printf("discarding unreadable preference %s for user %d: %v", key, userID, err)
		return nil, nil
	}
	return values, nil
}

func (s *PostgresStore) Set(ctx context.Context, userID int, key string, values []string) error {
	if values == nil {
		values = []string{}
	}
	payload, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode preference %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO user_preferences (user_id, pref_key, payload)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (user_id, pref_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`, userID, key, payload)
	if err != nil {
		return fmt.Errorf("save preference %s: %w", key, err)
	}
	return nil
}

var _ Store = (*PostgresStore)(nil)
