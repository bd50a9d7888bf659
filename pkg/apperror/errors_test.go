package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("LGR_002", "Insufficient card balance", http.StatusPaymentRequired),
			expected: "[LGR_002] Insufficient card balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("RPC_002", "Ledger RPC unavailable", http.StatusBadGateway, fmt.Errorf("connection refused")),
			expected: "[RPC_002] Ledger RPC unavailable: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestLedgerErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"CardInactive", ErrCardInactive(), "LGR_001", http.StatusConflict},
		{"InsufficientBalance", ErrInsufficientBalance(), "LGR_002", http.StatusPaymentRequired},
		{"BalanceLimitExceeded", ErrBalanceLimitExceeded(), "LGR_003", http.StatusUnprocessableEntity},
		{"CardStillActive", ErrCardStillActive(), "LGR_004", http.StatusConflict},
		{"CardExists", ErrCardExists(), "LGR_005", http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.False(t, tt.err.Retryable)
		})
	}
}

func TestRetryableErrors(t *testing.T) {
	cause := fmt.Errorf("dial tcp: timeout")

	assert.True(t, ErrLedgerTimeout(cause).Retryable)
	assert.True(t, ErrLedgerUnavailable(cause).Retryable)
	assert.False(t, ErrCardInactive().Retryable)
}

func TestBackendInconsistent(t *testing.T) {
	cause := fmt.Errorf("backend 503")
	err := ErrBackendInconsistent("card-1", "sig123", cause)

	assert.Equal(t, "RCN_001", err.Code)
	assert.Equal(t, "sig123", err.LedgerSignature)
	assert.True(t, IsDegradedSuccess(err))
	assert.False(t, IsDegradedSuccess(ErrCardInactive()))
	assert.True(t, errors.Is(err, cause))
}
