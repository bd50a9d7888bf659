package service

import (
	"context"
	"sync"
	"time"

	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"
	"github.com/aurexlabs/aurex-bridge/internal/derive"
	"github.com/aurexlabs/aurex-bridge/pkg/apperror"

	"github.com/rs/zerolog"
)

// CardServiceImpl implements ports.CardService.
//
// Every lifecycle operation is a two-phase sequence: one ledger
// transaction, then, only after confirmed success, one backend
// mutation. The ledger write is authoritative; if it fails nothing
// happened and no backend state is touched. If the backend write fails
// after ledger success the operation returns its result together with
// a degraded-success error carrying the ledger signature, and the
// reconciliation path retries the backend write idempotently.
type CardServiceImpl struct {
	ledger  ports.LedgerClient
	backend ports.BackendClient
	builder *txBuilder
	deriver *derive.Deriver
	locks   cardLocks
	log     zerolog.Logger
}

// NewCardService creates a new CardServiceImpl for the given program.
func NewCardService(ledger ports.LedgerClient, backend ports.BackendClient, programID domain.Address, log zerolog.Logger) *CardServiceImpl {
	return &CardServiceImpl{
		ledger:  ledger,
		backend: backend,
		builder: newTxBuilder(programID),
		deriver: derive.New(programID),
		log:     log,
	}
}

// cardLocks serializes operations per (owner, cardID). The ledger
// serializes writes to the same account anyway; this advisory lock
// only prevents concurrent submissions racing on a stale balance
// pre-check. Entries are never reclaimed; cardinality is bounded by
// the number of cards this process has touched.
type cardLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func (l *cardLocks) lock(owner domain.Address, cardID string) func() {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[string]*sync.Mutex)
	}
	key := owner.String() + ":" + cardID
	cl, ok := l.m[key]
	if !ok {
		cl = &sync.Mutex{}
		l.m[key] = cl
	}
	l.mu.Unlock()

	cl.Lock()
	return cl.Unlock
}

// CreateCard derives the card and escrow addresses, creates both on
// the ledger and registers the card with the backend using the
// addresses that went into the submitted transaction. Duplicate
// (owner, cardID) pairs are rejected by the program itself.
func (s *CardServiceImpl) CreateCard(ctx context.Context, req ports.CreateCardRequest) (*ports.CreateCardResult, error) {
	if req.BalanceLimit <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if len(req.Metadata) > domain.MaxMetadataLen {
		return nil, apperror.ErrMetadataTooLong()
	}
	if req.Mint.IsZero() {
		return nil, apperror.Validation("mint address required")
	}

	unlock := s.locks.lock(req.Owner, req.CardID)
	defer unlock()

	tx, cardAddr, escrowAddr, err := s.builder.buildCreateCard(req.Owner, req.CardID, req.BalanceLimit, req.Metadata, req.Mint)
	if err != nil {
		return nil, err
	}

	sig, err := s.ledger.Submit(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Confirm(ctx, sig); err != nil {
		return nil, err
	}

	result := &ports.CreateCardResult{
		CardID:        req.CardID,
		CardAddress:   cardAddr,
		EscrowAddress: escrowAddr,
		Signature:     sig,
	}

	// Phase two runs on a detached context: cancellation after the
	// ledger committed must not abandon the backend write.
	reg := ports.CardRegistration{
		CardID:          req.CardID,
		UserID:          req.UserID,
		CardAddress:     cardAddr,
		EscrowAddress:   escrowAddr,
		BalanceLimit:    req.BalanceLimit,
		Metadata:        req.Metadata,
		LedgerSignature: sig,
	}
	if err := s.backend.RegisterCard(context.WithoutCancel(ctx), reg); err != nil {
		s.log.Error().Err(err).
			Str("card_id", req.CardID).
			Str("signature", sig).
			Msg("card created on ledger but backend registration failed")
		return result, apperror.ErrBackendInconsistent(req.CardID, sig, err)
	}
	result.Registered = true

	s.log.Info().
		Str("card_id", req.CardID).
		Str("card_address", cardAddr.String()).
		Str("signature", sig).
		Int64("balance_limit", req.BalanceLimit).
		Msg("card created")

	return result, nil
}

// RetryRegistration repairs a degraded-success creation. The backend
// write is idempotent keyed by the ledger signature, so repeated
// retries register the card at most once.
func (s *CardServiceImpl) RetryRegistration(ctx context.Context, req ports.RetryRegistrationRequest) error {
	if req.LedgerSignature == "" {
		return apperror.Validation("ledger signature required")
	}

	cardAddr, err := s.deriver.CardAddress(req.Owner, req.CardID)
	if err != nil {
		return err
	}

	reg := ports.CardRegistration{
		CardID:          req.CardID,
		UserID:          req.UserID,
		CardAddress:     cardAddr,
		EscrowAddress:   s.deriver.EscrowAddress(cardAddr),
		BalanceLimit:    req.BalanceLimit,
		Metadata:        req.Metadata,
		LedgerSignature: req.LedgerSignature,
	}
	if err := s.backend.RegisterCard(ctx, reg); err != nil {
		return err
	}

	s.log.Info().
		Str("card_id", req.CardID).
		Str("signature", req.LedgerSignature).
		Msg("card registration reconciled")
	return nil
}

// TopUpCard moves funds from the owner's token account into the card
// escrow, then mirrors the new balance into the backend.
func (s *CardServiceImpl) TopUpCard(ctx context.Context, req ports.TopUpRequest) (*ports.OperationResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Mint.IsZero() {
		return nil, apperror.Validation("mint address required")
	}

	unlock := s.locks.lock(req.Owner, req.CardID)
	defer unlock()

	card, err := s.getActiveCard(ctx, req.CardID, req.UserID)
	if err != nil {
		return nil, err
	}

	tx, err := s.builder.buildTopUp(req.Owner, req.CardID, req.Amount, req.Mint)
	if err != nil {
		return nil, err
	}

	sig, err := s.ledger.Submit(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Confirm(ctx, sig); err != nil {
		return nil, err
	}

	result := &ports.OperationResult{CardID: req.CardID, Amount: req.Amount, Signature: sig}

	if err := s.backend.UpdateCardBalance(context.WithoutCancel(ctx), req.CardID, req.Amount, domain.BalanceOpTopUp, sig); err != nil {
		s.log.Error().Err(err).
			Str("card_id", req.CardID).
			Str("signature", sig).
			Msg("top-up confirmed on ledger but backend balance update failed")
		return result, apperror.ErrBackendInconsistent(req.CardID, sig, err)
	}
	result.Synchronized = true

	s.log.Info().
		Str("card_id", card.ID).
		Int64("amount", req.Amount).
		Str("signature", sig).
		Msg("card topped up")

	return result, nil
}

// ProcessPayment pays a merchant from the card escrow. A Payment
// record goes in as pending before submission and is finalized once
// the ledger answers; the balance pre-check is advisory only, since the
// program is the enforcing authority under concurrent spends.
func (s *CardServiceImpl) ProcessPayment(ctx context.Context, req ports.PaymentRequest) (*ports.PaymentResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.MerchantReference == "" {
		return nil, apperror.Validation("merchant reference required")
	}
	if len(req.MerchantReference) > domain.MaxMerchantReferenceLen {
		return nil, apperror.ErrMerchantReferenceTooLong()
	}

	unlock := s.locks.lock(req.Owner, req.CardID)
	defer unlock()

	card, err := s.getActiveCard(ctx, req.CardID, req.UserID)
	if err != nil {
		return nil, err
	}
	if card.Balance < req.Amount {
		return nil, apperror.ErrInsufficientBalance()
	}

	merchant, err := s.backend.GetMerchant(ctx, req.MerchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	if !merchant.IsActive {
		return nil, apperror.ErrMerchantInactive()
	}

	pending, err := s.backend.RecordPayment(ctx, &domain.Payment{
		CardID:            req.CardID,
		MerchantID:        req.MerchantID,
		Amount:            req.Amount,
		MerchantReference: req.MerchantReference,
		Status:            domain.PaymentStatusPending,
		CreatedAt:         time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	tx, err := s.builder.buildProcessPayment(req.Owner, req.CardID, req.Amount, req.MerchantReference, merchant)
	if err != nil {
		return nil, err
	}

	sig, err := s.ledger.Submit(ctx, tx)
	if err == nil {
		err = s.ledger.Confirm(ctx, sig)
	}
	if err != nil {
		// The ledger rejected or never saw the transaction: no funds
		// moved, finalize the record as failed (best effort).
		if ferr := s.backend.UpdatePaymentStatus(context.WithoutCancel(ctx), pending.ID.String(), domain.PaymentStatusFailed, ""); ferr != nil {
			s.log.Warn().Err(ferr).Str("payment_id", pending.ID.String()).Msg("failed to mark payment failed")
		}
		return nil, err
	}

	result := &ports.PaymentResult{
		Payment:          pending,
		Signature:        sig,
		RemainingBalance: card.Balance - req.Amount,
	}

	detached := context.WithoutCancel(ctx)
	syncErr := s.backend.UpdateCardBalance(detached, req.CardID, req.Amount, domain.BalanceOpPayment, sig)
	if syncErr == nil {
		syncErr = s.backend.UpdatePaymentStatus(detached, pending.ID.String(), domain.PaymentStatusCompleted, sig)
	}
	if syncErr != nil {
		s.log.Error().Err(syncErr).
			Str("card_id", req.CardID).
			Str("payment_id", pending.ID.String()).
			Str("signature", sig).
			Msg("payment settled on ledger but backend update failed")
		return result, apperror.ErrBackendInconsistent(req.CardID, sig, syncErr)
	}

	pending.Status = domain.PaymentStatusCompleted
	pending.LedgerSignature = sig
	result.Synchronized = true

	s.log.Info().
		Str("card_id", req.CardID).
		Str("merchant_id", req.MerchantID).
		Int64("amount", req.Amount).
		Str("signature", sig).
		Msg("payment processed")

	return result, nil
}

// DeactivateCard flips the card inactive on the ledger, then in the
// backend. Later spends fail at the program with CardInactive, which
// is forwarded as a typed error, never masked.
func (s *CardServiceImpl) DeactivateCard(ctx context.Context, userID string, owner domain.Address, cardID string) (*ports.OperationResult, error) {
	unlock := s.locks.lock(owner, cardID)
	defer unlock()

	if _, err := s.getActiveCard(ctx, cardID, userID); err != nil {
		return nil, err
	}

	tx, err := s.builder.buildDeactivate(owner, cardID)
	if err != nil {
		return nil, err
	}

	sig, err := s.ledger.Submit(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Confirm(ctx, sig); err != nil {
		return nil, err
	}

	result := &ports.OperationResult{CardID: cardID, Signature: sig}

	if err := s.backend.DeactivateCard(context.WithoutCancel(ctx), cardID); err != nil {
		s.log.Error().Err(err).
			Str("card_id", cardID).
			Str("signature", sig).
			Msg("card deactivated on ledger but backend update failed")
		return result, apperror.ErrBackendInconsistent(cardID, sig, err)
	}
	result.Synchronized = true

	s.log.Info().Str("card_id", cardID).Str("signature", sig).Msg("card deactivated")
	return result, nil
}

// WithdrawBalance drains the escrow of a deactivated card back to the
// owner's token account. The result records the signature; no further
// backend balance mutation is needed: the monitor observes the
// account change.
func (s *CardServiceImpl) WithdrawBalance(ctx context.Context, req ports.WithdrawRequest) (*ports.OperationResult, error) {
	if req.Mint.IsZero() {
		return nil, apperror.Validation("mint address required")
	}

	unlock := s.locks.lock(req.Owner, req.CardID)
	defer unlock()

	card, err := s.backend.GetCard(ctx, req.CardID, req.UserID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperror.ErrNotFound("card")
	}
	if card.IsActive {
		return nil, apperror.ErrCardStillActive()
	}
	if card.Balance <= 0 {
		return nil, apperror.ErrNoBalanceToWithdraw()
	}

	tx, err := s.builder.buildWithdraw(req.Owner, req.CardID, req.Mint)
	if err != nil {
		return nil, err
	}

	sig, err := s.ledger.Submit(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Confirm(ctx, sig); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("card_id", req.CardID).
		Int64("amount", card.Balance).
		Str("signature", sig).
		Msg("balance withdrawn")

	return &ports.OperationResult{
		CardID:       req.CardID,
		Amount:       card.Balance,
		Signature:    sig,
		Synchronized: true,
	}, nil
}

// ListCards returns the backend's view of the user's cards.
func (s *CardServiceImpl) ListCards(ctx context.Context, userID string) ([]domain.Card, error) {
	return s.backend.GetUserCards(ctx, userID)
}

// GetPaymentHistory returns recorded payments for the user.
func (s *CardServiceImpl) GetPaymentHistory(ctx context.Context, q ports.PaymentHistoryQuery) ([]domain.Payment, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	return s.backend.GetPaymentHistory(ctx, q)
}

// getActiveCard is the advisory pre-check shared by spend-side ops.
// The ledger may still reject on stale state under concurrency.
func (s *CardServiceImpl) getActiveCard(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	card, err := s.backend.GetCard(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperror.ErrNotFound("card")
	}
	if !card.IsActive {
		return nil, apperror.ErrCardInactive()
	}
	return card, nil
}
