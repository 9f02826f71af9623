package handler

import (
	"context"
	"strings"

	"yatranslator/internal/domain"
	"yatranslator/internal/format"

	"go.uber.org/zap"
)

// handleStart handles /start command
func (d *Dispatcher) handleStart(ctx context.Context, st *domain.State, upd domain.Update) domain.Outcome {
	d.logger.Info("User started bot",
		zap.Int64("chat_id", upd.ChatID),
		zap.String("username", upd.FromUsername),
	)

	d.record(ctx, upd, domain.JournalEntry{
		Kind:    domain.KindCommand,
		Command: "start",
		Status:  domain.StatusSuccess,
	})

	return replyTo(upd, helpText(st.Languages()), domain.FormatMarkdown)
}

// helpText lists one command per supported language, in table order
func helpText(languages domain.Languages) string {
	var b strings.Builder
	b.WriteString(format.Bold(msgHelpHeader))
	b.WriteString("\n")
	for _, name := range languages.Names() {
		b.WriteString("/")
		b.WriteString(format.Escape(name))
		b.WriteString("\n")
	}
	return b.String()
}
