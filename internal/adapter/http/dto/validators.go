package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	safeIDRe     = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	ledgerAddrRe = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("ledger_addr", validateLedgerAddr)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeIDRe.MatchString(fl.Field().String())
}

// validateLedgerAddr accepts a 32-byte hex-encoded ledger address.
func validateLedgerAddr(fl validator.FieldLevel) bool {
	return ledgerAddrRe.MatchString(fl.Field().String())
}
