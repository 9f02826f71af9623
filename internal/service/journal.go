package service

import (
	"context"

	"yatranslator/internal/domain"
	"yatranslator/internal/repository"

	"go.uber.org/zap"
)

// JournalService records handled updates and prunes old records.
// A service without a repository is disabled and does nothing.
type JournalService struct {
	repo          repository.JournalRepository
	retentionDays int
	logger        *zap.Logger
}

// NewJournalService creates a new journal service. repo may be nil.
func NewJournalService(repo repository.JournalRepository, retentionDays int, logger *zap.Logger) *JournalService {
	return &JournalService{
		repo:          repo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// Enabled reports whether entries are stored
func (s *JournalService) Enabled() bool {
	return s != nil && s.repo != nil
}

// Record stores entry. Failures are logged and never returned,
// the journal must not interfere with update handling.
func (s *JournalService) Record(ctx context.Context, entry domain.JournalEntry) {
	if !s.Enabled() {
		return
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		s.logger.Warn("Failed to append journal entry",
			zap.Error(err),
			zap.Int("update_id", entry.UpdateID),
		)
	}
}

// CleanupOldEntries removes entries older than the retention period
func (s *JournalService) CleanupOldEntries(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}

	s.logger.Info("Starting cleanup of old journal entries", zap.Int("retention_days", s.retentionDays))

	removed, err := s.repo.CleanOldEntries(ctx, s.retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old journal entries", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully", zap.Int64("removed", removed))
	return nil
}
