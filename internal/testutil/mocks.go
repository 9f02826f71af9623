package testutil

import (
	"context"

	"yatranslator/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockJournalRepository is a mock for JournalRepository
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) Append(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) CleanOldEntries(ctx context.Context, days int) (int64, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(int64), args.Error(1)
}

// MockMessenger is a mock for the messaging client
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) FetchUpdates(ctx context.Context, offset int) ([]domain.Update, error) {
	args := m.Called(ctx, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Update), args.Error(1)
}

func (m *MockMessenger) SendMessage(ctx context.Context, reply domain.Reply) error {
	args := m.Called(ctx, reply)
	return args.Error(0)
}

// MockTranslator is a mock for the translation client
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text string, direction domain.Direction) (string, error) {
	args := m.Called(ctx, text, direction)
	return args.String(0), args.Error(1)
}

// MockClassifier is a mock for the script classifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) IsReference(text string) bool {
	args := m.Called(text)
	return args.Bool(0)
}
