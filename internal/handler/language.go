package handler

import (
	"context"

	"yatranslator/internal/domain"
	"yatranslator/internal/format"

	"go.uber.org/zap"
)

// handleLanguage treats an unknown command token as a language selection.
// This is the only path that counts requests in the stats.
func (d *Dispatcher) handleLanguage(ctx context.Context, st *domain.State, upd domain.Update, token string) domain.Outcome {
	st.RecordRequest(upd.FromUsername)

	changed := st.SetLanguage(token)

	d.logger.Info("Language selection",
		zap.String("username", upd.FromUsername),
		zap.String("requested", token),
		zap.String("language", st.TargetLanguage()),
		zap.Bool("supported", changed),
	)

	status := domain.StatusSuccess
	prefix := msgLanguageChanged
	if !changed {
		status = domain.StatusUnsupported
		prefix = msgLanguageUnsupported
	}

	d.record(ctx, upd, domain.JournalEntry{
		Kind:    domain.KindCommand,
		Command: token,
		Status:  status,
	})

	return replyTo(upd, prefix+format.Italic(st.TargetLanguage()), domain.FormatMarkdown)
}
