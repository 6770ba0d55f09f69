package drops

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ImportSchedule upserts administrative drop entries by id and returns the
// number of rows written. All rows land or none do.
func (r *PostgresRepository) ImportSchedule(ctx context.Context, entries []Entry) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin drop schedule transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO drop_schedule (id, drop_date, title, platform, drop_type, hot, category, region, msrp, notes)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id)
		DO UPDATE SET drop_date = EXCLUDED.drop_date, title = EXCLUDED.title,
			platform = EXCLUDED.platform, drop_type = EXCLUDED.drop_type,
			hot = EXCLUDED.hot, category = EXCLUDED.category, region = EXCLUDED.region,
			msrp = EXCLUDED.msrp, notes = EXCLUDED.notes, updated_at = NOW()
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare drop entry insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, entry := range entries {
		if _, err := stmt.ExecContext(ctx, entry.ID, entry.Date, entry.Title, entry.Platform,
			entry.Type, entry.Hot, entry.Category, entry.Region, entry.MSRP, entry.Notes); err != nil {
			return 0, fmt.Errorf("insert drop entry id=%s: %w", entry.ID, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit drop schedule transaction: %w", err)
	}

	return count, nil
}

var _ Repository = (*PostgresRepository)(nil)
