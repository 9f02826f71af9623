package handler

import (
	"context"
	"errors"
	"fmt"

	"yatranslator/internal/domain"
	"yatranslator/internal/format"

	"go.uber.org/zap"
)

// direction picks reference->target for reference-script text and target->reference otherwise
func (d *Dispatcher) direction(st *domain.State, text string) domain.Direction {
	if d.classifier.IsReference(text) {
		return domain.Direction{From: domain.ReferenceLanguageCode, To: st.TargetCode()}
	}
	return domain.Direction{From: st.TargetCode(), To: domain.ReferenceLanguageCode}
}

// handleTranslate translates free text. Translation requests are not counted in the stats.
func (d *Dispatcher) handleTranslate(ctx context.Context, st *domain.State, upd domain.Update) domain.Outcome {
	dir := d.direction(st, upd.Text)

	entry := domain.JournalEntry{
		Kind:      domain.KindTranslation,
		Direction: dir.String(),
		Status:    domain.StatusSuccess,
	}
	defer func() { d.record(ctx, upd, entry) }()

	translated, err := d.translator.Translate(ctx, upd.Text, dir)
	if err != nil {
		entry.Status = domain.StatusFailed

		var providerErr *domain.ProviderError
		if errors.As(err, &providerErr) {
			entry.ErrorCode = providerErr.Code
			d.logger.Warn("Translation rejected by provider",
				zap.Int("code", providerErr.Code),
				zap.String("direction", dir.String()),
				zap.Int("update_id", upd.UpdateID),
			)
			return replyTo(upd, fmt.Sprintf(msgTranslateFailed, providerErr.Code), domain.FormatPlain)
		}

		d.logger.Error("Translation request failed",
			zap.Error(err),
			zap.String("direction", dir.String()),
			zap.Int("update_id", upd.UpdateID),
		)
		return replyTo(upd, msgTranslateUnavailable, domain.FormatPlain)
	}

	text := format.Bold(translated) + " (" + format.Italic(st.TargetLanguage()) + ")"
	return replyTo(upd, text, domain.FormatMarkdown)
}
