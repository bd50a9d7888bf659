package domain

// EventType classifies a domain event observed on the ledger.
type EventType string

const (
	EventCardCreated      EventType = "card_created"
	EventCardToppedUp     EventType = "card_topped_up"
	EventPaymentProcessed EventType = "payment_processed"
	EventCardDeactivated  EventType = "card_deactivated"
	EventBalanceWithdrawn EventType = "balance_withdrawn"
	EventAccountUpdated   EventType = "account_updated"
	EventError            EventType = "error"
	EventUnknown          EventType = "unknown"
)

// Event is a transient domain event derived from ledger output.
// It is never persisted beyond what deduplication requires.
type Event struct {
	Type       EventType `json:"event_type"`
	Signature  string    `json:"signature,omitempty"`
	Slot       uint64    `json:"slot"`
	Payload    string    `json:"payload,omitempty"`
	Confidence float64   `json:"confidence"`
}

// Dispatchable reports whether the event should trigger side effects.
// Unknown events are audited, never dispatched.
func (e Event) Dispatchable() bool {
	return e.Type != EventUnknown
}
