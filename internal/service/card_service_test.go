package service

import (
	"context"
	"testing"

	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports/mocks"
	"github.com/aurexlabs/aurex-bridge/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cardTestDeps struct {
	svc     *CardServiceImpl
	ledger  *mocks.MockLedgerClient
	backend *mocks.MockBackendClient
	ctrl    *gomock.Controller
}

func setupCardService(t *testing.T) *cardTestDeps {
	ctrl := gomock.NewController(t)
	d := &cardTestDeps{
		ledger:  mocks.NewMockLedgerClient(ctrl),
		backend: mocks.NewMockBackendClient(ctrl),
		ctrl:    ctrl,
	}
	d.svc = NewCardService(d.ledger, d.backend, testProgramID(), zerolog.Nop())
	return d
}

func testProgramID() domain.Address {
	var a domain.Address
	copy(a[:], []byte("bridge-program-test-0000000000ab"))
	return a
}

func testOwner() domain.Address {
	var a domain.Address
	copy(a[:], []byte("owner-address-test-0000000000001"))
	return a
}

func testMint() domain.Address {
	var a domain.Address
	copy(a[:], []byte("mint-address-test-00000000000001"))
	return a
}

func activeCard(cardID string, balance int64) *domain.Card {
	return &domain.Card{
		ID:           cardID,
		Owner:        testOwner(),
		Balance:      balance,
		BalanceLimit: 1_000_000,
		IsActive:     true,
	}
}

// ==================== CreateCard Tests ====================

func TestCardService_CreateCard_Success(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.CreateCardRequest{
		UserID:       "user-1",
		Owner:        testOwner(),
		CardID:       "card-001",
		BalanceLimit: 500_000,
		Metadata:     "shopping",
		Mint:         testMint(),
	}

	d.ledger.EXPECT().Submit(ctx, gomock.Any()).Return("sig-create-1", nil)
	d.ledger.EXPECT().Confirm(ctx, "sig-create-1").Return(nil)
	d.backend.EXPECT().RegisterCard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reg ports.CardRegistration) error {
			assert.Equal(t, "card-001", reg.CardID)
			assert.Equal(t, "user-1", reg.UserID)
			assert.Equal(t, "sig-create-1", reg.LedgerSignature)
			assert.False(t, reg.CardAddress.IsZero())
			assert.False(t, reg.EscrowAddress.IsZero())
			return nil
		})

	result, err := d.svc.CreateCard(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "card-001", result.CardID)
	assert.Equal(t, "sig-create-1", result.Signature)
	assert.True(t, result.Registered)
	assert.NotEqual(t, result.CardAddress, result.EscrowAddress)
}

func TestCardService_CreateCard_ValidationErrors(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	longMeta := make([]byte, domain.MaxMetadataLen+1)
	for i := range longMeta {
		longMeta[i] = 'x'
	}

	tests := []struct {
		name string
		req  ports.CreateCardRequest
		code string
	}{
		{
			name: "zero balance limit",
			req:  ports.CreateCardRequest{Owner: testOwner(), CardID: "c", Mint: testMint()},
			code: "VAL_002",
		},
		{
			name: "metadata too long",
			req: ports.CreateCardRequest{
				Owner: testOwner(), CardID: "c", BalanceLimit: 100,
				Metadata: string(longMeta), Mint: testMint(),
			},
			code: "VAL_004",
		},
		{
			name: "missing mint",
			req:  ports.CreateCardRequest{Owner: testOwner(), CardID: "c", BalanceLimit: 100},
			code: "VAL_001",
		},
		{
			name: "card id too long",
			req: ports.CreateCardRequest{
				Owner: testOwner(), CardID: "this-card-id-is-way-over-thirty-two-bytes-long",
				BalanceLimit: 100, Mint: testMint(),
			},
			code: "VAL_003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.svc.CreateCard(ctx, tt.req)
			require.Error(t, err)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestCardService_CreateCard_LedgerRejected_NoBackendWrite(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.CreateCardRequest{
		UserID: "user-1", Owner: testOwner(), CardID: "card-dup",
		BalanceLimit: 100, Mint: testMint(),
	}

	// Program rejects the duplicate; no backend method is expected.
	d.ledger.EXPECT().Submit(ctx, gomock.Any()).Return("", apperror.ErrCardExists())

	result, err := d.svc.CreateCard(ctx, req)
	assert.Nil(t, result)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_005", appErr.Code)
}

func TestCardService_CreateCard_DegradedSuccess(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.CreateCardRequest{
		UserID: "user-1", Owner: testOwner(), CardID: "card-002",
		BalanceLimit: 100, Mint: testMint(),
	}

	d.ledger.EXPECT().Submit(ctx, gomock.Any()).Return("sig-degraded", nil)
	d.ledger.EXPECT().Confirm(ctx, "sig-degraded").Return(nil)
	d.backend.EXPECT().RegisterCard(gomock.Any(), gomock.Any()).
		Return(apperror.ErrBackendUnavailable(assert.AnError))

	result, err := d.svc.CreateCard(ctx, req)

	// Ledger committed: the result survives alongside the typed error.
	require.NotNil(t, result)
	assert.Equal(t, "sig-degraded", result.Signature)
	assert.False(t, result.Registered)

	require.Error(t, err)
	assert.True(t, apperror.IsDegradedSuccess(err))
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "sig-degraded", appErr.LedgerSignature)
}

func TestCardService_CreateCard_MirrorSurvivesCallerCancellation(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := ports.CreateCardRequest{
		UserID: "user-1", Owner: testOwner(), CardID: "card-003",
		BalanceLimit: 100, Mint: testMint(),
	}

	d.ledger.EXPECT().Submit(gomock.Any(), gomock.Any()).Return("sig-cancel", nil)
	d.ledger.EXPECT().Confirm(gomock.Any(), "sig-cancel").
		DoAndReturn(func(_ context.Context, _ string) error {
			// Caller gives up right as the ledger confirms.
			cancel()
			return nil
		})
	d.backend.EXPECT().RegisterCard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(regCtx context.Context, reg ports.CardRegistration) error {
			assert.NoError(t, regCtx.Err(), "mirror write must run on a live context")
			assert.Equal(t, "sig-cancel", reg.LedgerSignature)
			return nil
		})

	result, err := d.svc.CreateCard(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Registered)
}

func TestCardService_RetryRegistration_Idempotent(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.RetryRegistrationRequest{
		UserID: "user-1", Owner: testOwner(), CardID: "card-002",
		BalanceLimit: 100, LedgerSignature: "sig-degraded",
	}

	// Backend treats the signature as the idempotency key; repeating
	// the call is safe.
	d.backend.EXPECT().RegisterCard(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, reg ports.CardRegistration) error {
			assert.Equal(t, "sig-degraded", reg.LedgerSignature)
			assert.False(t, reg.CardAddress.IsZero())
			return nil
		}).Times(2)

	require.NoError(t, d.svc.RetryRegistration(ctx, req))
	require.NoError(t, d.svc.RetryRegistration(ctx, req))
}

func TestCardService_RetryRegistration_RequiresSignature(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	err := d.svc.RetryRegistration(context.Background(), ports.RetryRegistrationRequest{
		UserID: "user-1", Owner: testOwner(), CardID: "card-002",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)
}

// ==================== TopUpCard Tests ====================

func TestCardService_TopUpCard_Success(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.TopUpRequest{
		UserID: "user-1", Owner: testOwner(), CardID: "card-001",
		Amount: 25_000, Mint: testMint(),
	}

	d.backend.EXPECT().GetCard(ctx, "card-001", "user-1").Return(activeCard("card-001", 0), nil)
	d.ledger.EXPECT().Submit(ctx, gomock.Any()).Return("sig-topup", nil)
	d.ledger.EXPECT().Confirm(ctx, "sig-topup").Return(nil)
	d.backend.EXPECT().UpdateCardBalance(gomock.Any(), "card-001", int64(25_000), domain.BalanceOpTopUp, "sig-topup").Return(nil)

	result, err := d.svc.TopUpCard(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(25_000), result.Amount)
	assert.Equal(t, "sig-topup", result.Signature)
	assert.True(t, result.Synchronized)
}

func TestCardService_TopUpCard_InactiveCard(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	inactive := activeCard("card-001", 100)
	inactive.IsActive = false

	d.backend.EXPECT().GetCard(ctx, "card-001", "user-1").Return(inactive, nil)

	_, err := d.svc.TopUpCard(ctx, ports.TopUpRequest{
		UserID: "user-1", Owner: testOwner(), CardID: "card-001",
		Amount: 100, Mint: testMint(),
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_001", appErr.Code)
}

func TestCardService_TopUpCard_LimitExceededByProgram(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.TopUpRequest{
		UserID: "user-1", Owner: testOwner(), CardID: "card-001",
		Amount: 900_000, Mint: testMint(),
	}

	// The pre-check passed on stale state; the program enforces the
	// limit and the rejection is forwarded untouched.
	d.backend.EXPECT().GetCard(ctx, "card-001", "user-1").Return(activeCard("card-001", 500_000), nil)
	d.ledger.EXPECT().Submit(ctx, gomock.Any()).Return("", apperror.ErrBalanceLimitExceeded())

	_, err := d.svc.TopUpCard(ctx, req)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_003", appErr.Code)
}

// ==================== ProcessPayment Tests ====================

func paymentReq() ports.PaymentRequest {
	return ports.PaymentRequest{
		UserID: "user-1", Owner: testOwner(), CardID: "card-001",
		MerchantID: "merch-1", Amount: 40_000, MerchantReference: "ORDER-001",
	}
}

func activeMerchant() *domain.Merchant {
	return &domain.Merchant{
		ID: "merch-1", Name: "Coffee", IsActive: true,
		Pubkey: testOwner(), TokenAccount: testMint(),
	}
}

func TestCardService_ProcessPayment_Success(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	paymentID := uuid.New()

	d.backend.EXPECT().GetCard(ctx, "card-001", "user-1").Return(activeCard("card-001", 100_000), nil)
	d.backend.EXPECT().GetMerchant(ctx, "merch-1").Return(activeMerchant(), nil)
	d.backend.EXPECT().RecordPayment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
			assert.Equal(t, domain.PaymentStatusPending, p.Status)
			out := *p
			out.ID = paymentID
			return &out, nil
		})
	d.ledger.EXPECT().Submit(ctx, gomock.Any()).Return("sig-pay", nil)
	d.ledger.EXPECT().Confirm(ctx, "sig-pay").Return(nil)
	d.backend.EXPECT().UpdateCardBalance(gomock.Any(), "card-001", int64(40_000), domain.BalanceOpPayment, "sig-pay").Return(nil)
	d.backend.EXPECT().UpdatePaymentStatus(gomock.Any(), paymentID.String(), domain.PaymentStatusCompleted, "sig-pay").Return(nil)

	result, err := d.svc.ProcessPayment(ctx, paymentReq())
	require.NoError(t, err)
	assert.Equal(t, "sig-pay", result.Signature)
	assert.Equal(t, int64(60_000), result.RemainingBalance)
	assert.True(t, result.Synchronized)
	assert.Equal(t, domain.PaymentStatusCompleted, result.Payment.Status)
	assert.Equal(t, "sig-pay", result.Payment.LedgerSignature)
}

func TestCardService_ProcessPayment_InsufficientBalance(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.backend.EXPECT().GetCard(ctx, "card-001", "user-1").Return(activeCard("card-001", 10_000), nil)

	_, err := d.svc.ProcessPayment(ctx, paymentReq())
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_002", appErr.Code)
}

func TestCardService_ProcessPayment_MerchantInactive(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchant := activeMerchant()
	merchant.IsActive = false

	d.backend.EXPECT().GetCard(ctx, "card-001", "user-1").Return(activeCard("card-001", 100_000), nil)
	d.backend.EXPECT().GetMerchant(ctx, "merch-1").Return(merchant, nil)

	_, err := d.svc.ProcessPayment(ctx, paymentReq())
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BCK_004", appErr.Code)
}

func TestCardService_ProcessPayment_LedgerFailure_MarksPaymentFailed(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	paymentID := uuid.New()

	d.backend.EXPECT().GetCard(ctx, "card-001", "user-1").Return(activeCard("card-001", 100_000), nil)
	d.backend.EXPECT().GetMerchant(ctx, "merch-1").Return(activeMerchant(), nil)
	d.backend.EXPECT().RecordPayment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
			out := *p
			out.ID = paymentID
			return &out, nil
		})
	d.ledger.EXPECT().Submit(ctx, gomock.Any()).Return("sig-fail", nil)
	d.ledger.EXPECT().Confirm(ctx, "sig-fail").Return(apperror.ErrCardInactive())
	// No funds moved: the pending record is finalized as failed and no
	// balance update happens.
	d.backend.EXPECT().UpdatePaymentStatus(gomock.Any(), paymentID.String(), domain.PaymentStatusFailed, "").Return(nil)

	result, err := d.svc.ProcessPayment(ctx, paymentReq())
	assert.Nil(t, result)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_001", appErr.Code)
}

func TestCardService_ProcessPayment_DegradedSuccess(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	paymentID := uuid.New()

	d.backend.EXPECT().GetCard(ctx, "card-001", "user-1").Return(activeCard("card-001", 100_000), nil)
	d.backend.EXPECT().GetMerchant(ctx, "merch-1").Return(activeMerchant(), nil)
	d.backend.EXPECT().RecordPayment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
			out := *p
			out.ID = paymentID
			return &out, nil
		})
	d.ledger.EXPECT().Submit(ctx, gomock.Any()).Return("sig-pay2", nil)
	d.ledger.EXPECT().Confirm(ctx, "sig-pay2").Return(nil)
	d.backend.EXPECT().UpdateCardBalance(gomock.Any(), "card-001", int64(40_000), domain.BalanceOpPayment, "sig-pay2").
		Return(apperror.ErrBackendUnavailable(assert.AnError))

	result, err := d.svc.ProcessPayment(ctx, paymentReq())
	require.NotNil(t, result)
	assert.Equal(t, "sig-pay2", result.Signature)
	assert.False(t, result.Synchronized)
	assert.True(t, apperror.IsDegradedSuccess(err))
}

// ==================== Deactivate / Withdraw Tests ====================

func TestCardService_DeactivateCard_Success(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.backend.EXPECT().GetCard(ctx, "card-001", "user-1").Return(activeCard("card-001", 60_000), nil)
	d.ledger.EXPECT().Submit(ctx, gomock.Any()).Return("sig-deact", nil)
	d.ledger.EXPECT().Confirm(ctx, "sig-deact").Return(nil)
	d.backend.EXPECT().DeactivateCard(gomock.Any(), "card-001").Return(nil)

	result, err := d.svc.DeactivateCard(ctx, "user-1", testOwner(), "card-001")
	require.NoError(t, err)
	assert.Equal(t, "sig-deact", result.Signature)
	assert.True(t, result.Synchronized)
}

func TestCardService_WithdrawBalance_RequiresInactiveCard(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.backend.EXPECT().GetCard(ctx, "card-001", "user-1").Return(activeCard("card-001", 60_000), nil)

	_, err := d.svc.WithdrawBalance(ctx, ports.WithdrawRequest{
		UserID: "user-1", Owner: testOwner(), CardID: "card-001", Mint: testMint(),
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_004", appErr.Code)
}

func TestCardService_WithdrawBalance_Success(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	card := activeCard("card-001", 60_000)
	card.IsActive = false

	d.backend.EXPECT().GetCard(ctx, "card-001", "user-1").Return(card, nil)
	d.ledger.EXPECT().Submit(ctx, gomock.Any()).Return("sig-withdraw", nil)
	d.ledger.EXPECT().Confirm(ctx, "sig-withdraw").Return(nil)

	result, err := d.svc.WithdrawBalance(ctx, ports.WithdrawRequest{
		UserID: "user-1", Owner: testOwner(), CardID: "card-001", Mint: testMint(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(60_000), result.Amount)
	assert.Equal(t, "sig-withdraw", result.Signature)
}

func TestCardService_WithdrawBalance_EmptyEscrow(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	card := activeCard("card-001", 0)
	card.IsActive = false

	d.backend.EXPECT().GetCard(ctx, "card-001", "user-1").Return(card, nil)

	_, err := d.svc.WithdrawBalance(ctx, ports.WithdrawRequest{
		UserID: "user-1", Owner: testOwner(), CardID: "card-001", Mint: testMint(),
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_006", appErr.Code)
}

func TestCardService_GetPaymentHistory_ClampsLimit(t *testing.T) {
	d := setupCardService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.backend.EXPECT().GetPaymentHistory(ctx, ports.PaymentHistoryQuery{UserID: "user-1", Limit: 100}).
		Return([]domain.Payment{}, nil)

	_, err := d.svc.GetPaymentHistory(ctx, ports.PaymentHistoryQuery{UserID: "user-1", Limit: 400})
	require.NoError(t, err)
}
