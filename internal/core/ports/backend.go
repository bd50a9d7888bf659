package ports

import (
	"context"

	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
)

// CardRegistration is the payload for registering a created card with
// the custodial backend. Addresses come from the ledger submission
// result, never recomputed at registration time.
type CardRegistration struct {
	CardID          string
	UserID          string
	CardAddress     domain.Address
	EscrowAddress   domain.Address
	BalanceLimit    int64
	Metadata        string
	LedgerSignature string // idempotency key for the backend write
}

// PaymentHistoryQuery filters payment history lookups.
type PaymentHistoryQuery struct {
	UserID string
	CardID string
	Limit  int
	Offset int
}

// BackendClient is the consumed contract over the custodial backend.
// Every balance-mutating call is idempotent keyed by ledger signature.
// Lookups return (nil, nil) when the entity does not exist.
type BackendClient interface {
	RegisterCard(ctx context.Context, reg CardRegistration) error
	GetCard(ctx context.Context, cardID, userID string) (*domain.Card, error)
	GetUserCards(ctx context.Context, userID string) ([]domain.Card, error)
	UpdateCardBalance(ctx context.Context, cardID string, amount int64, op domain.BalanceOp, ledgerSignature string) error
	DeactivateCard(ctx context.Context, cardID string) error
	GetMerchant(ctx context.Context, merchantID string) (*domain.Merchant, error)
	RecordPayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, ledgerSignature string) error
	GetPaymentHistory(ctx context.Context, q PaymentHistoryQuery) ([]domain.Payment, error)
}
