package service

import (
	"context"

	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"
	"github.com/aurexlabs/aurex-bridge/internal/derive"
	"github.com/aurexlabs/aurex-bridge/pkg/apperror"

	"github.com/rs/zerolog"
)

// BridgeServiceImpl reads deployment-wide bridge state straight from
// the ledger. No backend involvement: the ledger is authoritative.
type BridgeServiceImpl struct {
	ledger    ports.LedgerClient
	deriver   *derive.Deriver
	builder   *txBuilder
	programID domain.Address
	log       zerolog.Logger
}

// NewBridgeService creates a BridgeServiceImpl.
func NewBridgeService(ledger ports.LedgerClient, programID domain.Address, log zerolog.Logger) *BridgeServiceImpl {
	return &BridgeServiceImpl{
		ledger:    ledger,
		deriver:   derive.New(programID),
		builder:   newTxBuilder(programID),
		programID: programID,
		log:       log,
	}
}

// Initialize creates the bridge state account with the given authority.
// Runs once per deployment; a second call is rejected before submitting.
func (s *BridgeServiceImpl) Initialize(ctx context.Context, authority domain.Address) (*ports.BridgeInit, error) {
	addr := s.deriver.BridgeStateAddress()

	info, err := s.ledger.GetAccount(ctx, addr)
	if err != nil {
		return nil, err
	}
	if info != nil {
		return nil, apperror.ErrLedgerRejected("bridge state already initialized")
	}

	tx := s.builder.buildInitialize(authority)

	sig, err := s.ledger.Submit(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Confirm(ctx, sig); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("authority", authority.String()).
		Str("bridge_state", addr.String()).
		Str("signature", sig).
		Msg("bridge state initialized")

	return &ports.BridgeInit{
		BridgeStateAddress: addr,
		Authority:          authority,
		Signature:          sig,
	}, nil
}

// Status fetches and decodes the bridge state account.
func (s *BridgeServiceImpl) Status(ctx context.Context) (*ports.BridgeStatus, error) {
	addr := s.deriver.BridgeStateAddress()

	info, err := s.ledger.GetAccount(ctx, addr)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, apperror.ErrNotFound("bridge state")
	}

	var state domain.BridgeState
	if err := state.UnmarshalBinary(info.Data); err != nil {
		s.log.Error().Err(err).Str("address", addr.String()).Msg("bridge state account is malformed")
		return nil, apperror.InternalError(err)
	}

	slot, err := s.ledger.CurrentSlot(ctx)
	if err != nil {
		// Slot is advisory; state alone is still a useful answer.
		s.log.Warn().Err(err).Msg("failed to read current slot")
	}

	return &ports.BridgeStatus{
		State:       &state,
		CurrentSlot: slot,
		ProgramID:   s.programID,
	}, nil
}
