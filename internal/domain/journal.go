package domain

import "time"

// EntryKind classifies a journaled update
type EntryKind string

const (
	KindCommand     EntryKind = "command"
	KindTranslation EntryKind = "translation"
)

// EntryStatus is the outcome of a journaled update
type EntryStatus string

const (
	StatusSuccess     EntryStatus = "ok"
	StatusFailed      EntryStatus = "failed"
	StatusDenied      EntryStatus = "denied"
	StatusUnsupported EntryStatus = "unsupported"
)

// JournalEntry is one diagnostic record of a handled update
type JournalEntry struct {
	UpdateID  int
	ChatID    int64
	Username  string
	Kind      EntryKind
	Command   string
	Direction string
	Status    EntryStatus
	ErrorCode int
	CreatedAt time.Time
}
