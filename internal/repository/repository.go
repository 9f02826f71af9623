package repository

import (
	"context"

	"yatranslator/internal/domain"
)

// JournalRepository defines request journal operations
type JournalRepository interface {
	Append(ctx context.Context, entry domain.JournalEntry) error
	CleanOldEntries(ctx context.Context, days int) (int64, error)
}
