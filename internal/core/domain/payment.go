package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is the backend record of one card payment. The ledger
// transaction, not this record, decides whether funds moved.
type Payment struct {
	ID                uuid.UUID     `json:"id"`
	CardID            string        `json:"card_id"`
	MerchantID        string        `json:"merchant_id"`
	Amount            int64         `json:"amount"` // smallest token unit
	MerchantReference string        `json:"merchant_reference"`
	LedgerSignature   string        `json:"ledger_signature,omitempty"`
	Status            PaymentStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
}

// IsTerminal returns true once the payment reached a final status.
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusFailed
}

// Merchant describes a payee as known to the custodial backend.
type Merchant struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Pubkey       Address `json:"pubkey"`
	TokenAccount Address `json:"token_account"`
	IsActive     bool    `json:"is_active"`
}
