package testutil

import (
	"time"

	"yatranslator/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestState creates bot state over the supported languages
func NewTestState(start time.Time) *domain.State {
	return domain.NewState(domain.SupportedLanguages, start)
}

// NewTestUpdate creates a text message update
func NewTestUpdate(updateID int, username, text string) domain.Update {
	return domain.Update{
		UpdateID:     updateID,
		ChatID:       555,
		MessageID:    updateID * 10,
		FromUsername: username,
		Text:         text,
		HasMessage:   true,
	}
}
