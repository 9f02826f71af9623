package middleware

import (
	"context"
	"testing"
	"time"

	"yatranslator/internal/domain"
	"yatranslator/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestAdminOnly(t *testing.T) {
	allowed := domain.Outcome{Kind: domain.OutcomeReply, Reply: domain.Reply{Text: "secret"}}

	tests := []struct {
		name           string
		admin          string
		denyReply      string
		username       string
		expectedCalled bool
		expectedSend   bool
		expectedKind   domain.OutcomeKind
		expectedSilent bool
	}{
		{
			name:           "admin passes",
			admin:          "boss",
			username:       "boss",
			expectedCalled: true,
			expectedSend:   true,
			expectedKind:   domain.OutcomeReply,
		},
		{
			name:           "other user silently dropped",
			admin:          "boss",
			username:       "alice",
			expectedKind:   domain.OutcomeDenied,
			expectedSilent: true,
		},
		{
			name:           "case sensitive",
			admin:          "boss",
			username:       "Boss",
			expectedKind:   domain.OutcomeDenied,
			expectedSilent: true,
		},
		{
			name:           "empty username never matches",
			admin:          "",
			username:       "",
			expectedKind:   domain.OutcomeDenied,
			expectedSilent: true,
		},
		{
			name:         "explicit denial when configured",
			admin:        "boss",
			denyReply:    "nope",
			username:     "alice",
			expectedSend: true,
			expectedKind: domain.OutcomeDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := func(ctx context.Context, st *domain.State, upd domain.Update) domain.Outcome {
				called = true
				return allowed
			}

			h := AdminOnly(AdminOptions{Username: tt.admin, DenyReply: tt.denyReply}, testutil.NewTestLogger())(next)

			upd := testutil.NewTestUpdate(1, tt.username, "/stats")
			out := h(context.Background(), testutil.NewTestState(time.Now()), upd)

			assert.Equal(t, tt.expectedCalled, called)
			assert.Equal(t, tt.expectedKind, out.Kind)
			assert.Equal(t, tt.expectedSilent, out.Silent)
			assert.Equal(t, tt.expectedSend, out.ShouldSend())
			if tt.denyReply != "" {
				assert.Equal(t, tt.denyReply, out.Reply.Text)
				assert.Equal(t, upd.ChatID, out.Reply.ChatID)
			}
		})
	}
}
