package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)

	// LedgerSignature carries the committed transaction signature on
	// degraded-success errors so reconciliation can retry idempotently.
	LedgerSignature string `json:"ledger_signature,omitempty"`
	// Retryable tells the caller whether resubmission may succeed.
	Retryable bool `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL): rejected before anything reaches the ledger ----

func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Amount must be a positive integer in base units", http.StatusBadRequest)
}

func ErrCardIDInvalid() *AppError {
	return New("VAL_003", "Card ID must be non-empty and at most 32 bytes", http.StatusBadRequest)
}

func ErrMetadataTooLong() *AppError {
	return New("VAL_004", "Metadata exceeds 256 bytes", http.StatusBadRequest)
}

func ErrMerchantReferenceTooLong() *AppError {
	return New("VAL_005", "Merchant reference exceeds 64 bytes", http.StatusBadRequest)
}

// ---- Ledger rejections (LGR): program business rules, terminal ----

func ErrCardInactive() *AppError {
	return New("LGR_001", "Card is inactive", http.StatusConflict)
}

func ErrInsufficientBalance() *AppError {
	return New("LGR_002", "Insufficient card balance", http.StatusPaymentRequired)
}

func ErrBalanceLimitExceeded() *AppError {
	return New("LGR_003", "Top-up would exceed the card balance limit", http.StatusUnprocessableEntity)
}

func ErrCardStillActive() *AppError {
	return New("LGR_004", "Card must be deactivated before withdrawal", http.StatusConflict)
}

func ErrCardExists() *AppError {
	return New("LGR_005", "Card already exists for this owner", http.StatusConflict)
}

func ErrNoBalanceToWithdraw() *AppError {
	return New("LGR_006", "Card escrow holds no balance", http.StatusConflict)
}

func ErrLedgerRejected(reason string) *AppError {
	return New("LGR_000", fmt.Sprintf("Ledger rejected transaction: %s", reason), http.StatusConflict)
}

// ---- Ledger availability (RPC): retryable by the caller ----

func ErrLedgerTimeout(err error) *AppError {
	e := Wrap("RPC_001", "Ledger confirmation timed out", http.StatusGatewayTimeout, err)
	e.Retryable = true
	return e
}

func ErrLedgerUnavailable(err error) *AppError {
	e := Wrap("RPC_002", "Ledger RPC unavailable", http.StatusBadGateway, err)
	e.Retryable = true
	return e
}

// ---- Reconciliation (RCN): ledger committed, backend lagging ----

// ErrBackendInconsistent marks a degraded success: the ledger write
// landed but the mirror write did not. Funds moved; the caller must
// not treat this as a failure of the underlying operation.
func ErrBackendInconsistent(cardID, ledgerSignature string, err error) *AppError {
	e := Wrap("RCN_001",
		fmt.Sprintf("Ledger transaction committed but backend update failed for card %s", cardID),
		http.StatusAccepted, err)
	e.LedgerSignature = ledgerSignature
	return e
}

// ---- Backend lookups (BCK) ----

func ErrNotFound(entity string) *AppError {
	return New("BCK_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrDuplicateReference() *AppError {
	return New("BCK_002", "Merchant reference already used for this card", http.StatusConflict)
}

func ErrBackendUnavailable(err error) *AppError {
	return Wrap("BCK_003", "Custodial backend unavailable", http.StatusBadGateway, err)
}

func ErrMerchantInactive() *AppError {
	return New("BCK_004", "Merchant is not active", http.StatusUnprocessableEntity)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// IsDegradedSuccess reports whether err is a reconciliation-pending
// outcome rather than a failure.
func IsDegradedSuccess(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == "RCN_001"
}
