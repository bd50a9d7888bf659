package ports

import (
	"context"

	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
)

// AccountMeta describes one account referenced by a transaction.
type AccountMeta struct {
	Address  domain.Address
	Signer   bool
	Writable bool
}

// Transaction is an unsigned program invocation: the program to call,
// the ordered account list, and the instruction payload.
type Transaction struct {
	ProgramID domain.Address
	Accounts  []AccountMeta
	Data      []byte
}

// LogEntry is one transaction's log output as delivered by the
// log subscription. Delivery is at-least-once; consumers must dedup
// by (Signature, Slot).
type LogEntry struct {
	Signature string
	Slot      uint64
	Logs      []string
	Err       string // non-empty if the transaction failed on-ledger
}

// AccountChange is one account-change notification.
type AccountChange struct {
	Slot     uint64
	Data     []byte
	Owner    domain.Address
	Lamports uint64
}

// AccountInfo is the current state of a ledger account.
type AccountInfo struct {
	Data     []byte
	Owner    domain.Address
	Lamports uint64
}

// LedgerClient is the consumed contract over the external ledger.
// Submit failures map to typed apperror values: LGR_* for program
// rejections (terminal), RPC_* for transport problems (retryable by
// the caller with a fresh submission, never retried blindly here).
type LedgerClient interface {
	// Submit sends a transaction and returns its signature.
	Submit(ctx context.Context, tx *Transaction) (string, error)
	// Confirm blocks until the signature is confirmed or fails.
	Confirm(ctx context.Context, signature string) error
	// GetAccount fetches raw account bytes. Returns (nil, nil) when the
	// account does not exist.
	GetAccount(ctx context.Context, addr domain.Address) (*AccountInfo, error)
	// SubscribeLogs streams transaction logs mentioning programID.
	// The channel closes when the subscription drops; callers resubscribe.
	SubscribeLogs(ctx context.Context, programID domain.Address) (<-chan LogEntry, error)
	// SubscribeAccountChanges streams state changes for one account.
	SubscribeAccountChanges(ctx context.Context, addr domain.Address) (<-chan AccountChange, error)
	// Health reports node health.
	Health(ctx context.Context) error
	// CurrentSlot returns the node's current slot.
	CurrentSlot(ctx context.Context) (uint64, error)
}
