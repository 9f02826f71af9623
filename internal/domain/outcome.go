package domain

// OutcomeKind tells what handling an update produced
type OutcomeKind int

const (
	// OutcomeReply means Reply must be sent
	OutcomeReply OutcomeKind = iota
	// OutcomeDenied means a privileged command was refused
	OutcomeDenied
	// OutcomeSkipped means the update carried nothing to handle
	OutcomeSkipped
)

// Outcome is the result of dispatching one update
type Outcome struct {
	Kind  OutcomeKind
	Reply Reply
	// Silent applies to OutcomeDenied: when true nothing is sent back
	Silent bool
}

// ShouldSend reports whether the outcome carries a message for the chat
func (o Outcome) ShouldSend() bool {
	switch o.Kind {
	case OutcomeReply:
		return true
	case OutcomeDenied:
		return !o.Silent
	}
	return false
}
