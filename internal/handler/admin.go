package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"yatranslator/internal/domain"
)

// handleStats reports usage counters. Admin only.
func (d *Dispatcher) handleStats(ctx context.Context, st *domain.State, upd domain.Update) domain.Outcome {
	d.record(ctx, upd, domain.JournalEntry{
		Kind:    domain.KindCommand,
		Command: "stats",
		Status:  domain.StatusSuccess,
	})

	text := fmt.Sprintf("total=%d users={%s}", st.RequestCount(), strings.Join(st.KnownUsers(), ", "))
	return replyTo(upd, text, domain.FormatPlain)
}

// handleUptime reports hours since start. Admin only.
func (d *Dispatcher) handleUptime(ctx context.Context, st *domain.State, upd domain.Update) domain.Outcome {
	d.record(ctx, upd, domain.JournalEntry{
		Kind:    domain.KindCommand,
		Command: "uptime",
		Status:  domain.StatusSuccess,
	})

	hours := st.Uptime(d.now()).Hours()
	text := "uptime=" + strconv.FormatFloat(hours, 'f', -1, 64) + " hours"
	return replyTo(upd, text, domain.FormatPlain)
}
