package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"yatranslator/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Client fetches updates and sends messages through the Telegram Bot API
type Client struct {
	bot             *tele.Bot
	longPollSeconds int
}

// Settings configures the Telegram client
type Settings struct {
	Token           string
	APIURL          string
	HTTPClient      *http.Client
	LongPollSeconds int
}

// NewClient creates a client. No request is made until the first call.
func NewClient(s Settings) (*Client, error) {
	bot, err := tele.NewBot(tele.Settings{
		URL:     s.APIURL,
		Token:   s.Token,
		Client:  s.HTTPClient,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return &Client{bot: bot, longPollSeconds: s.LongPollSeconds}, nil
}

type updatesResponse struct {
	Ok     bool          `json:"ok"`
	Result []tele.Update `json:"result"`
}

// FetchUpdates returns updates with ids >= offset, in the order Telegram sent them.
// An empty batch is not an error.
func (c *Client) FetchUpdates(ctx context.Context, offset int) ([]domain.Update, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	err := await(ctx, func() (err error) {
		data, err = c.bot.Raw("getUpdates", map[string]string{
			"offset":  strconv.Itoa(offset),
			"timeout": strconv.Itoa(c.longPollSeconds),
		})
		return err
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("getUpdates failed: %w", err)
	}

	var resp updatesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode updates: %w", err)
	}
	if !resp.Ok {
		return nil, fmt.Errorf("getUpdates returned ok=false")
	}

	updates := make([]domain.Update, 0, len(resp.Result))
	for _, u := range resp.Result {
		updates = append(updates, toDomainUpdate(u))
	}
	return updates, nil
}

func toDomainUpdate(u tele.Update) domain.Update {
	upd := domain.Update{UpdateID: u.ID}
	if u.Message == nil {
		return upd
	}

	upd.HasMessage = true
	upd.MessageID = u.Message.ID
	upd.Text = u.Message.Text
	if u.Message.Chat != nil {
		upd.ChatID = u.Message.Chat.ID
	}
	if u.Message.Sender != nil {
		upd.FromUsername = u.Message.Sender.Username
	}
	return upd
}

// SendMessage delivers a reply. Text is passed through untouched.
func (c *Client) SendMessage(ctx context.Context, reply domain.Reply) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := &tele.SendOptions{}
	if reply.ReplyToMessageID != 0 {
		opts.ReplyTo = &tele.Message{ID: reply.ReplyToMessageID}
	}
	if reply.Format == domain.FormatMarkdown {
		opts.ParseMode = tele.ModeMarkdown
	}

	err := await(ctx, func() error {
		_, err := c.bot.Send(tele.ChatID(reply.ChatID), reply.Text, opts)
		return err
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("sendMessage failed: %w", err)
	}
	return nil
}

// await runs fn in its own goroutine and returns early with ctx.Err() once
// ctx is done. telebot has no context support, so an abandoned call keeps
// running until the HTTP client timeout and its result is discarded.
func await(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
