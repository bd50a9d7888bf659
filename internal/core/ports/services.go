package ports

import (
	"context"

	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
)

// --- Card orchestration ---

// CreateCardRequest holds validated input for card creation.
type CreateCardRequest struct {
	UserID       string
	Owner        domain.Address
	CardID       string
	BalanceLimit int64
	Metadata     string
	Mint         domain.Address
}

// CreateCardResult is the outcome of card creation. Registered is
// false on degraded success: the ledger committed but the backend
// record is pending reconciliation.
type CreateCardResult struct {
	CardID        string         `json:"card_id"`
	CardAddress   domain.Address `json:"card_address"`
	EscrowAddress domain.Address `json:"escrow_address"`
	Signature     string         `json:"tx_signature"`
	Registered    bool           `json:"registered"`
}

// TopUpRequest holds validated input for a card top-up.
type TopUpRequest struct {
	UserID string
	Owner  domain.Address
	CardID string
	Amount int64
	Mint   domain.Address
}

// PaymentRequest holds validated input for a card payment.
type PaymentRequest struct {
	UserID            string
	Owner             domain.Address
	CardID            string
	MerchantID        string
	Amount            int64
	MerchantReference string
}

// PaymentResult is the outcome of a payment.
type PaymentResult struct {
	Payment          *domain.Payment `json:"payment"`
	Signature        string          `json:"tx_signature"`
	RemainingBalance int64           `json:"remaining_balance"`
	Synchronized     bool            `json:"synchronized"`
}

// WithdrawRequest holds validated input for a balance withdrawal.
type WithdrawRequest struct {
	UserID string
	Owner  domain.Address
	CardID string
	Mint   domain.Address
}

// OperationResult is the outcome of top-up, deactivation and withdrawal.
type OperationResult struct {
	CardID       string `json:"card_id"`
	Amount       int64  `json:"amount,omitempty"`
	Signature    string `json:"tx_signature"`
	Synchronized bool   `json:"synchronized"`
}

// RetryRegistrationRequest repairs a degraded-success card creation.
// The ledger signature keys the idempotent backend write.
type RetryRegistrationRequest struct {
	UserID          string
	Owner           domain.Address
	CardID          string
	BalanceLimit    int64
	Metadata        string
	LedgerSignature string
}

// CardService sequences card lifecycle operations: one ledger
// transaction, then on confirmed success one backend mutation.
type CardService interface {
	CreateCard(ctx context.Context, req CreateCardRequest) (*CreateCardResult, error)
	TopUpCard(ctx context.Context, req TopUpRequest) (*OperationResult, error)
	ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
	DeactivateCard(ctx context.Context, userID string, owner domain.Address, cardID string) (*OperationResult, error)
	WithdrawBalance(ctx context.Context, req WithdrawRequest) (*OperationResult, error)
	RetryRegistration(ctx context.Context, req RetryRegistrationRequest) error
	ListCards(ctx context.Context, userID string) ([]domain.Card, error)
	GetPaymentHistory(ctx context.Context, q PaymentHistoryQuery) ([]domain.Payment, error)
}

// --- Bridge status ---

// BridgeStatus is the deployment-wide view served by the status endpoint.
type BridgeStatus struct {
	State       *domain.BridgeState `json:"bridge_state"`
	CurrentSlot uint64              `json:"current_slot"`
	ProgramID   domain.Address      `json:"program_id"`
}

// BridgeInit reports the outcome of a bridge initialization.
type BridgeInit struct {
	BridgeStateAddress domain.Address `json:"bridge_state_address"`
	Authority          domain.Address `json:"authority"`
	Signature          string         `json:"tx_signature"`
}

// BridgeService reads deployment-wide bridge state from the ledger
// and performs the one-time initialization of that state.
type BridgeService interface {
	Initialize(ctx context.Context, authority domain.Address) (*BridgeInit, error)
	Status(ctx context.Context) (*BridgeStatus, error)
}

// --- Notifications ---

// Notification is a side-effect payload produced from a domain event.
type Notification struct {
	Event       domain.Event `json:"event"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Severity    string       `json:"severity,omitempty"`
}

// Notifier delivers notifications. Single attempt per call; bounded
// retry is the caller's concern. Failures never propagate past the
// reconciliation monitor.
type Notifier interface {
	SendWebhook(ctx context.Context, n Notification) error
	SendPush(ctx context.Context, userID string, n Notification) error
	SendEmail(ctx context.Context, userID string, n Notification) error
}

// --- Auth ---

// TokenClaims holds the parsed bearer token claims.
type TokenClaims struct {
	UserID string
	Owner  domain.Address
}

// TokenService validates backend-issued bearer tokens.
type TokenService interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// SignatureService signs outbound webhook payloads (HMAC-SHA256).
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}
