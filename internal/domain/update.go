package domain

// Update is one inbound chat event
type Update struct {
	UpdateID     int
	ChatID       int64
	MessageID    int
	FromUsername string
	Text         string
	// HasMessage is false for updates that carry no message (edits, callbacks, etc.)
	HasMessage bool
}

// Format selects how outbound text is rendered by the messaging platform
type Format int

const (
	FormatPlain Format = iota
	FormatMarkdown
)

// Reply is an outbound message sent in response to an update
type Reply struct {
	ChatID           int64
	ReplyToMessageID int
	Text             string
	Format           Format
}
