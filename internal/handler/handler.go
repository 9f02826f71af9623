package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yatranslator/internal/domain"
	"yatranslator/internal/middleware"
	"yatranslator/internal/service"

	"go.uber.org/zap"
)

// Messenger delivers replies to chats
type Messenger interface {
	SendMessage(ctx context.Context, reply domain.Reply) error
}

// Translator translates text in the given direction
type Translator interface {
	Translate(ctx context.Context, text string, direction domain.Direction) (string, error)
}

// ScriptClassifier reports whether text is written in the reference script
type ScriptClassifier interface {
	IsReference(text string) bool
}

// Dispatcher classifies updates and produces replies
type Dispatcher struct {
	messenger  Messenger
	translator Translator
	classifier ScriptClassifier
	journal    *service.JournalService
	logger     *zap.Logger
	now        func() time.Time

	commands map[string]middleware.CommandFunc
}

// NewDispatcher creates a new dispatcher instance
func NewDispatcher(
	messenger Messenger,
	translator Translator,
	classifier ScriptClassifier,
	journal *service.JournalService,
	admin middleware.AdminOptions,
	logger *zap.Logger,
) *Dispatcher {
	d := &Dispatcher{
		messenger:  messenger,
		translator: translator,
		classifier: classifier,
		journal:    journal,
		logger:     logger,
		now:        time.Now,
	}
	d.registerCommands(admin)
	return d
}

// registerCommands registers all fixed commands.
// Any other command token is a language selection.
func (d *Dispatcher) registerCommands(admin middleware.AdminOptions) {
	adminOnly := middleware.AdminOnly(admin, d.logger)

	d.commands = map[string]middleware.CommandFunc{
		"start":  d.handleStart,
		"stats":  adminOnly(d.handleStats),
		"uptime": adminOnly(d.handleUptime),
	}
}

// Handle routes upd and sends the resulting reply, if any
func (d *Dispatcher) Handle(ctx context.Context, st *domain.State, upd domain.Update) error {
	out := d.Route(ctx, st, upd)
	if !out.ShouldSend() {
		return nil
	}

	if err := d.messenger.SendMessage(ctx, out.Reply); err != nil {
		return fmt.Errorf("failed to reply to update %d: %w", upd.UpdateID, err)
	}
	return nil
}

// Route classifies upd, applies its effect on st and returns what should be sent back
func (d *Dispatcher) Route(ctx context.Context, st *domain.State, upd domain.Update) domain.Outcome {
	if !upd.HasMessage || upd.Text == "" {
		return domain.Outcome{Kind: domain.OutcomeSkipped}
	}

	if !strings.HasPrefix(upd.Text, "/") {
		return d.handleTranslate(ctx, st, upd)
	}

	token := commandToken(upd.Text)
	cmd, ok := d.commands[token]
	if !ok {
		return d.handleLanguage(ctx, st, upd, token)
	}

	out := cmd(ctx, st, upd)
	if out.Kind == domain.OutcomeDenied {
		d.record(ctx, upd, domain.JournalEntry{
			Kind:    domain.KindCommand,
			Command: token,
			Status:  domain.StatusDenied,
		})
	}
	return out
}

// commandToken extracts the command name from "/name@bot args"
func commandToken(text string) string {
	fields := strings.Fields(strings.TrimPrefix(text, "/"))
	if len(fields) == 0 {
		return ""
	}
	token := fields[0]
	if i := strings.IndexByte(token, '@'); i >= 0 {
		token = token[:i]
	}
	return token
}

// record fills the update fields of entry and stores it in the journal
func (d *Dispatcher) record(ctx context.Context, upd domain.Update, entry domain.JournalEntry) {
	entry.UpdateID = upd.UpdateID
	entry.ChatID = upd.ChatID
	entry.Username = upd.FromUsername
	d.journal.Record(ctx, entry)
}

func replyTo(upd domain.Update, text string, format domain.Format) domain.Outcome {
	return domain.Outcome{
		Kind: domain.OutcomeReply,
		Reply: domain.Reply{
			ChatID:           upd.ChatID,
			ReplyToMessageID: upd.MessageID,
			Text:             text,
			Format:           format,
		},
	}
}
