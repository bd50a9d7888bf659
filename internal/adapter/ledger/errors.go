package ledger

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/aurexlabs/aurex-bridge/pkg/apperror"
)

// Custom program error codes, in enum declaration order starting at
// the program error base.
const (
	codeCardIDTooLong = 6000 + iota
	codeMetadataTooLong
	codeCardInactive
	codeBalanceLimitExceeded
	codeInsufficientBalance
	codeMerchantReferenceTooLong
	codeCardStillActive
	codeNoBalanceToWithdraw
)

// programErrors maps both the numeric custom code and the message
// marker, since nodes render rejections either way.
var programErrors = []struct {
	code   int
	marker string
	err    func() *apperror.AppError
}{
	{codeCardInactive, "CardInactive", apperror.ErrCardInactive},
	{codeInsufficientBalance, "InsufficientBalance", apperror.ErrInsufficientBalance},
	{codeBalanceLimitExceeded, "BalanceLimitExceeded", apperror.ErrBalanceLimitExceeded},
	{codeCardStillActive, "CardStillActive", apperror.ErrCardStillActive},
	{codeNoBalanceToWithdraw, "NoBalanceToWithdraw", apperror.ErrNoBalanceToWithdraw},
	{codeCardIDTooLong, "CardIdTooLong", apperror.ErrCardIDInvalid},
	{codeMetadataTooLong, "MetadataTooLong", apperror.ErrMetadataTooLong},
	{codeMerchantReferenceTooLong, "MerchantReferenceTooLong", apperror.ErrMerchantReferenceTooLong},
}

// mapProgramError turns a rendered program rejection into its typed
// terminal error. Unrecognized rejections pass through as LGR_000 so
// nothing gets misreported as retryable.
func mapProgramError(msg string) *apperror.AppError {
	for _, pe := range programErrors {
		if strings.Contains(msg, pe.marker) || strings.Contains(msg, fmt.Sprintf("%d", pe.code)) {
			return pe.err()
		}
	}
	if strings.Contains(msg, "already in use") || strings.Contains(msg, "already exists") {
		return apperror.ErrCardExists()
	}
	return apperror.ErrLedgerRejected(msg)
}

// mapNodeError classifies a JSON-RPC level error. Preflight failures
// embed the program rejection in the message; everything else is a
// node availability problem.
func mapNodeError(rpcErr *rpcError) *apperror.AppError {
	if strings.Contains(rpcErr.Message, "Transaction simulation failed") ||
		strings.Contains(rpcErr.Message, "custom program error") {
		return mapProgramError(rpcErr.Message)
	}
	return apperror.ErrLedgerUnavailable(fmt.Errorf("rpc error %d: %s", rpcErr.Code, rpcErr.Message))
}

// mapTransportError classifies an HTTP transport failure.
func mapTransportError(err error) *apperror.AppError {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperror.ErrLedgerTimeout(err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.ErrLedgerTimeout(err)
	}
	return apperror.ErrLedgerUnavailable(err)
}
