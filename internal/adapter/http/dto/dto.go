package dto

// CreateCardRequest is the request body for card creation.
type CreateCardRequest struct {
	CardID       string `json:"card_id" binding:"required,max=32,safe_id"`
	BalanceLimit int64  `json:"balance_limit" binding:"required,gt=0"`
	Metadata     string `json:"metadata" binding:"max=256"`
	Mint         string `json:"mint" binding:"required,ledger_addr"`
}

// TopUpRequest is the request body for a card top-up.
type TopUpRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Mint   string `json:"mint" binding:"required,ledger_addr"`
}

// PaymentRequest is the request body for a card payment.
type PaymentRequest struct {
	MerchantID        string `json:"merchant_id" binding:"required,safe_id"`
	Amount            int64  `json:"amount" binding:"required,gt=0"`
	MerchantReference string `json:"merchant_reference" binding:"required,max=64"`
}

// WithdrawRequest is the request body for a balance withdrawal.
type WithdrawRequest struct {
	Mint string `json:"mint" binding:"required,ledger_addr"`
}

// RetryRegistrationRequest repairs a degraded-success card creation.
type RetryRegistrationRequest struct {
	BalanceLimit    int64  `json:"balance_limit" binding:"required,gt=0"`
	Metadata        string `json:"metadata" binding:"max=256"`
	LedgerSignature string `json:"ledger_signature" binding:"required"`
}
