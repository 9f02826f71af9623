package poller

import (
	"context"
	"time"

	"yatranslator/internal/domain"

	"go.uber.org/zap"
)

// Fetcher returns updates with ids >= offset in ascending order
type Fetcher interface {
	FetchUpdates(ctx context.Context, offset int) ([]domain.Update, error)
}

// Dispatcher handles a single update against the bot state
type Dispatcher interface {
	Handle(ctx context.Context, st *domain.State, upd domain.Update) error
}

// Loop repeatedly fetches updates and feeds them to the dispatcher.
// It owns the bot state; nothing else may touch it while Run is active.
type Loop struct {
	fetcher    Fetcher
	dispatcher Dispatcher
	state      *domain.State
	interval   time.Duration
	logger     *zap.Logger
}

// New creates a poll loop idling interval between fetches
func New(fetcher Fetcher, dispatcher Dispatcher, state *domain.State, interval time.Duration, logger *zap.Logger) *Loop {
	return &Loop{
		fetcher:    fetcher,
		dispatcher: dispatcher,
		state:      state,
		interval:   interval,
		logger:     logger,
	}
}

// Run polls until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("Poll loop started",
		zap.Duration("interval", l.interval),
		zap.Int("offset", l.state.LastOffset()),
	)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Poll loop stopped", zap.Int("offset", l.state.LastOffset()))
			return ctx.Err()
		case <-timer.C:
		}

		l.RunOnce(ctx)
		timer.Reset(l.interval)
	}
}

// RunOnce performs one fetch and dispatches the batch in order.
// It returns the number of updates consumed.
func (l *Loop) RunOnce(ctx context.Context) int {
	offset := l.state.LastOffset() + 1

	updates, err := l.fetcher.FetchUpdates(ctx, offset)
	if err != nil {
		if ctx.Err() == nil {
			l.logger.Warn("Failed to fetch updates", zap.Error(err), zap.Int("offset", offset))
		}
		return 0
	}

	consumed := 0
	for _, upd := range updates {
		// The offset moves before dispatch so a failing update is never redelivered
		if !l.state.Advance(upd.UpdateID) {
			l.logger.Warn("Skipping already consumed update",
				zap.Int("update_id", upd.UpdateID),
				zap.Int("offset", l.state.LastOffset()),
			)
			continue
		}
		consumed++

		l.logger.Info("Update received",
			zap.Int("update_id", upd.UpdateID),
			zap.Int64("chat_id", upd.ChatID),
			zap.String("username", upd.FromUsername),
			zap.String("text", upd.Text),
		)

		if err := l.dispatcher.Handle(ctx, l.state, upd); err != nil {
			l.logger.Error("Failed to handle update",
				zap.Error(err),
				zap.Int("update_id", upd.UpdateID),
			)
		}
	}

	return consumed
}
