package middleware

import (
	"context"

	"yatranslator/internal/domain"

	"go.uber.org/zap"
)

// CommandFunc handles one command update
type CommandFunc func(ctx context.Context, st *domain.State, upd domain.Update) domain.Outcome

// Middleware wraps a CommandFunc
type Middleware func(next CommandFunc) CommandFunc

// AdminOptions defines how admin-only checks behave
type AdminOptions struct {
	// Username is the admin identity, compared exactly and case-sensitively
	Username string
	// DenyReply is sent to non-admins. Empty means they are silently ignored.
	DenyReply string
}

// AdminOnly ensures that only the admin user can invoke downstream handlers
func AdminOnly(opts AdminOptions, logger *zap.Logger) Middleware {
	return func(next CommandFunc) CommandFunc {
		return func(ctx context.Context, st *domain.State, upd domain.Update) domain.Outcome {
			if upd.FromUsername != "" && upd.FromUsername == opts.Username {
				return next(ctx, st, upd)
			}

			logger.Info("Admin command rejected",
				zap.String("username", upd.FromUsername),
				zap.Int("update_id", upd.UpdateID),
			)

			if opts.DenyReply == "" {
				return domain.Outcome{Kind: domain.OutcomeDenied, Silent: true}
			}
			return domain.Outcome{
				Kind: domain.OutcomeDenied,
				Reply: domain.Reply{
					ChatID:           upd.ChatID,
					ReplyToMessageID: upd.MessageID,
					Text:             opts.DenyReply,
					Format:           domain.FormatPlain,
				},
			}
		}
	}
}
