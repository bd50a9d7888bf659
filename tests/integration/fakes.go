package integration

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"
	"github.com/aurexlabs/aurex-bridge/pkg/apperror"

	"github.com/google/uuid"
)

// Instruction discriminators as the bridge program defines them.
const (
	insCreateCard byte = iota + 1
	insTopUpCard
	insProcessPayment
	insDeactivateCard
	insWithdrawBalance
	insInitializeBridge
)

// fakeLedger is an in-memory ledger node that executes bridge program
// instructions against per-card account state, enforcing the same
// business rules as the deployed program. Submit applies the
// transaction synchronously; Confirm always succeeds for known
// signatures.

type ledgerCard struct {
	balance int64
	limit   int64
	active  bool
}

type fakeLedger struct {
	mu         sync.Mutex
	cards      map[domain.Address]*ledgerCard
	confirmed  map[string]bool
	sigSeq     int
	slot       uint64
	submitted  int
	bridgeAddr domain.Address
	bridge     *domain.BridgeState
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		cards:     make(map[domain.Address]*ledgerCard),
		confirmed: make(map[string]bool),
		slot:      100,
	}
}

func (l *fakeLedger) Submit(_ context.Context, tx *ports.Transaction) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.submitted++
	cardAddr := tx.Accounts[0].Address
	card := l.cards[cardAddr]
	data := tx.Data

	switch data[0] {
	case insInitializeBridge:
		if l.bridge != nil {
			return "", apperror.ErrLedgerRejected("bridge state already initialized")
		}
		var authority domain.Address
		copy(authority[:], data[1:33])
		l.bridgeAddr = cardAddr
		l.bridge = &domain.BridgeState{Authority: authority}

	case insCreateCard:
		if card != nil {
			return "", apperror.ErrCardExists()
		}
		// card id (skipped), then the balance limit
		idLen := binary.LittleEndian.Uint32(data[1:5])
		limit := int64(binary.LittleEndian.Uint64(data[5+idLen : 13+idLen]))
		l.cards[cardAddr] = &ledgerCard{limit: limit, active: true}
		if l.bridge != nil {
			l.bridge.TotalCards++
		}

	case insTopUpCard:
		if card == nil {
			return "", apperror.ErrLedgerRejected("card account not found")
		}
		if !card.active {
			return "", apperror.ErrCardInactive()
		}
		amount := int64(binary.LittleEndian.Uint64(data[1:9]))
		if card.balance+amount > card.limit {
			return "", apperror.ErrBalanceLimitExceeded()
		}
		card.balance += amount

	case insProcessPayment:
		if card == nil {
			return "", apperror.ErrLedgerRejected("card account not found")
		}
		if !card.active {
			return "", apperror.ErrCardInactive()
		}
		amount := int64(binary.LittleEndian.Uint64(data[1:9]))
		if card.balance < amount {
			return "", apperror.ErrInsufficientBalance()
		}
		card.balance -= amount

	case insDeactivateCard:
		if card == nil {
			return "", apperror.ErrLedgerRejected("card account not found")
		}
		card.active = false

	case insWithdrawBalance:
		if card == nil {
			return "", apperror.ErrLedgerRejected("card account not found")
		}
		if card.active {
			return "", apperror.ErrCardStillActive()
		}
		if card.balance <= 0 {
			return "", apperror.ErrNoBalanceToWithdraw()
		}
		card.balance = 0

	default:
		return "", apperror.ErrLedgerRejected("unknown instruction")
	}

	l.sigSeq++
	l.slot++
	sig := fmt.Sprintf("sig-%06d", l.sigSeq)
	l.confirmed[sig] = true
	return sig, nil
}

func (l *fakeLedger) Confirm(_ context.Context, signature string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.confirmed[signature] {
		return apperror.ErrLedgerRejected("unknown signature")
	}
	return nil
}

func (l *fakeLedger) GetAccount(_ context.Context, addr domain.Address) (*ports.AccountInfo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.bridge != nil && addr == l.bridgeAddr {
		data, err := l.bridge.MarshalBinary()
		if err != nil {
			return nil, err
		}
		return &ports.AccountInfo{Data: data, Lamports: 1}, nil
	}
	if _, ok := l.cards[addr]; !ok {
		return nil, nil
	}
	return &ports.AccountInfo{Lamports: 1}, nil
}

func (l *fakeLedger) SubscribeLogs(ctx context.Context, _ domain.Address) (<-chan ports.LogEntry, error) {
	ch := make(chan ports.LogEntry)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (l *fakeLedger) SubscribeAccountChanges(ctx context.Context, _ domain.Address) (<-chan ports.AccountChange, error) {
	ch := make(chan ports.AccountChange)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (l *fakeLedger) Health(_ context.Context) error { return nil }

func (l *fakeLedger) CurrentSlot(_ context.Context) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.slot, nil
}

// cardBalance reads the escrowed balance held on the fake ledger.
func (l *fakeLedger) cardBalance(addr domain.Address) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.cards[addr]; ok {
		return c.balance
	}
	return 0
}

// fakeBackend is an in-memory custodial backend mirror. Registration
// is idempotent keyed by ledger signature, matching the real API.
type fakeBackend struct {
	mu               sync.Mutex
	cards            map[string]*domain.Card
	merchants        map[string]*domain.Merchant
	payments         map[string]*domain.Payment
	registeredSigs   map[string]bool
	failNextRegister bool
	registerCalls    int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		cards:          make(map[string]*domain.Card),
		merchants:      make(map[string]*domain.Merchant),
		payments:       make(map[string]*domain.Payment),
		registeredSigs: make(map[string]bool),
	}
}

func (b *fakeBackend) registerCallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.registerCalls
}

func (b *fakeBackend) addMerchant(m domain.Merchant) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.merchants[m.ID] = &m
}

func (b *fakeBackend) RegisterCard(_ context.Context, reg ports.CardRegistration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.registerCalls++
	if b.failNextRegister {
		b.failNextRegister = false
		return apperror.ErrBackendUnavailable(fmt.Errorf("backend down"))
	}
	if b.registeredSigs[reg.LedgerSignature] {
		return nil // idempotent replay
	}
	b.registeredSigs[reg.LedgerSignature] = true
	b.cards[reg.CardID] = &domain.Card{
		ID:            reg.CardID,
		UserID:        reg.UserID,
		CardAddress:   reg.CardAddress,
		EscrowAddress: reg.EscrowAddress,
		BalanceLimit:  reg.BalanceLimit,
		Metadata:      reg.Metadata,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}
	return nil
}

func (b *fakeBackend) GetCard(_ context.Context, cardID, userID string) (*domain.Card, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	card, ok := b.cards[cardID]
	if !ok || card.UserID != userID {
		return nil, nil
	}
	cp := *card
	return &cp, nil
}

func (b *fakeBackend) GetUserCards(_ context.Context, userID string) ([]domain.Card, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.Card
	for _, c := range b.cards {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (b *fakeBackend) UpdateCardBalance(_ context.Context, cardID string, amount int64, op domain.BalanceOp, ledgerSignature string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.registeredSigs[ledgerSignature] {
		return nil // idempotent replay
	}
	card, ok := b.cards[cardID]
	if !ok {
		return apperror.ErrNotFound("card")
	}
	switch op {
	case domain.BalanceOpTopUp:
		card.Balance += amount
	case domain.BalanceOpPayment:
		card.Balance -= amount
	}
	b.registeredSigs[ledgerSignature] = true
	return nil
}

func (b *fakeBackend) DeactivateCard(_ context.Context, cardID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	card, ok := b.cards[cardID]
	if !ok {
		return apperror.ErrNotFound("card")
	}
	card.IsActive = false
	return nil
}

func (b *fakeBackend) GetMerchant(_ context.Context, merchantID string) (*domain.Merchant, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.merchants[merchantID]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (b *fakeBackend) RecordPayment(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, p := range b.payments {
		if p.CardID == payment.CardID && p.MerchantReference == payment.MerchantReference {
			return nil, apperror.ErrDuplicateReference()
		}
	}
	cp := *payment
	cp.ID = uuid.New()
	b.payments[cp.ID.String()] = &cp
	out := cp
	return &out, nil
}

func (b *fakeBackend) UpdatePaymentStatus(_ context.Context, paymentID string, status domain.PaymentStatus, ledgerSignature string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.payments[paymentID]
	if !ok {
		return apperror.ErrNotFound("payment")
	}
	p.Status = status
	p.LedgerSignature = ledgerSignature
	return nil
}

func (b *fakeBackend) GetPaymentHistory(_ context.Context, q ports.PaymentHistoryQuery) ([]domain.Payment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.Payment
	for _, p := range b.payments {
		card, ok := b.cards[p.CardID]
		if !ok || card.UserID != q.UserID {
			continue
		}
		if q.CardID != "" && p.CardID != q.CardID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}
