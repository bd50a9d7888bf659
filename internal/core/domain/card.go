package domain

import (
	"time"
)

// Card limits enforced before anything reaches the ledger.
const (
	MaxCardIDLen            = 32
	MaxMetadataLen          = 256
	MaxMerchantReferenceLen = 64
)

// CardState represents the lifecycle state of a virtual card.
type CardState string

const (
	CardStateActive    CardState = "ACTIVE"
	CardStateInactive  CardState = "INACTIVE"
	CardStateWithdrawn CardState = "WITHDRAWN"
)

// Card is the backend's mirror of an on-ledger virtual card.
// Balance converges to the on-ledger value but may lag behind it.
type Card struct {
	ID            string    `json:"card_id"`
	UserID        string    `json:"user_id"`
	Owner         Address   `json:"owner"`
	CardAddress   Address   `json:"card_address"`
	EscrowAddress Address   `json:"escrow_address"`
	Balance       int64     `json:"balance"` // smallest token unit
	BalanceLimit  int64     `json:"balance_limit"`
	IsActive      bool      `json:"is_active"`
	Metadata      string    `json:"metadata,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// State derives the lifecycle state from the mirrored fields.
func (c *Card) State() CardState {
	switch {
	case c.IsActive:
		return CardStateActive
	case c.Balance > 0:
		return CardStateInactive
	default:
		return CardStateWithdrawn
	}
}

// BridgeState is the singleton program state account.
type BridgeState struct {
	Authority  Address `json:"authority"`
	TotalCards uint64  `json:"total_cards"`
}

// BalanceOp tags the direction of a mirrored balance mutation.
type BalanceOp string

const (
	BalanceOpTopUp   BalanceOp = "top_up"
	BalanceOpPayment BalanceOp = "payment"
)
