package postgres

import (
	"context"
	"database/sql"

	"yatranslator/internal/domain"
)

// JournalRepo implements repository.JournalRepository
type JournalRepo struct {
	db *sql.DB
}

// NewJournalRepo creates a new journal repository
func NewJournalRepo(db *sql.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

// Append writes one journal entry
func (r *JournalRepo) Append(ctx context.Context, entry domain.JournalEntry) error {
	query := `
		INSERT INTO journal (update_id, chat_id, username, kind, command, direction, status, error_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.UpdateID,
		entry.ChatID,
		entry.Username,
		string(entry.Kind),
		entry.Command,
		entry.Direction,
		string(entry.Status),
		entry.ErrorCode,
	)
	return err
}

// CleanOldEntries deletes entries older than specified days
func (r *JournalRepo) CleanOldEntries(ctx context.Context, days int) (int64, error) {
	query := `
		DELETE FROM journal
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	res, err := r.db.ExecContext(ctx, query, days)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
