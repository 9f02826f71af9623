package postgres

import (
	"context"
	"fmt"
	"testing"

	"yatranslator/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestJournalRepo_Append(t *testing.T) {
	tests := []struct {
		name          string
		entry         domain.JournalEntry
		mockError     error
		expectedError bool
	}{
		{
			name: "translation entry",
			entry: domain.JournalEntry{
				UpdateID:  10,
				ChatID:    555,
				Username:  "alice",
				Kind:      domain.KindTranslation,
				Direction: "ru-en",
				Status:    domain.StatusSuccess,
			},
		},
		{
			name: "failed translation with code",
			entry: domain.JournalEntry{
				UpdateID:  11,
				ChatID:    555,
				Username:  "alice",
				Kind:      domain.KindTranslation,
				Direction: "en-ru",
				Status:    domain.StatusFailed,
				ErrorCode: 402,
			},
		},
		{
			name: "database error",
			entry: domain.JournalEntry{
				UpdateID: 12,
				Kind:     domain.KindCommand,
				Command:  "stats",
				Status:   domain.StatusDenied,
			},
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewJournalRepo(db)

			exp := mock.ExpectExec("INSERT INTO journal").
				WithArgs(tt.entry.UpdateID, tt.entry.ChatID, tt.entry.Username, string(tt.entry.Kind),
					tt.entry.Command, tt.entry.Direction, string(tt.entry.Status), tt.entry.ErrorCode)
			if tt.mockError != nil {
				exp.WillReturnError(tt.mockError)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err = repo.Append(context.Background(), tt.entry)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestJournalRepo_CleanOldEntries(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewJournalRepo(db)

	mock.ExpectExec("DELETE FROM journal").
		WithArgs(30).
		WillReturnResult(sqlmock.NewResult(0, 5))

	removed, err := repo.CleanOldEntries(context.Background(), 30)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalRepo_CleanOldEntries_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewJournalRepo(db)

	mock.ExpectExec("DELETE FROM journal").
		WithArgs(30).
		WillReturnError(fmt.Errorf("db error"))

	removed, err := repo.CleanOldEntries(context.Background(), 30)

	assert.Error(t, err)
	assert.Zero(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
