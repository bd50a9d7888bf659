package handler

import (
	"github.com/aurexlabs/aurex-bridge/internal/adapter/http/dto"
	"github.com/aurexlabs/aurex-bridge/internal/adapter/http/middleware"
	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"
	"github.com/aurexlabs/aurex-bridge/pkg/apperror"
	"github.com/aurexlabs/aurex-bridge/pkg/response"

	"github.com/gin-gonic/gin"
)

// CardHandler handles card lifecycle endpoints.
type CardHandler struct {
	cardSvc ports.CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardSvc ports.CardService) *CardHandler {
	return &CardHandler{cardSvc: cardSvc}
}

// caller reads the authenticated identity set by the JWT middleware.
func caller(c *gin.Context) (string, domain.Address, bool) {
	userID := c.GetString(middleware.CtxUserID)
	ownerVal, ok := c.Get(middleware.CtxOwner)
	if userID == "" || !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", domain.Address{}, false
	}
	owner, ok := ownerVal.(domain.Address)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", domain.Address{}, false
	}
	return userID, owner, true
}

// CreateCard handles POST /api/v1/cards.
func (h *CardHandler) CreateCard(c *gin.Context) {
	userID, owner, ok := caller(c)
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	mint, err := domain.ParseAddress(req.Mint)
	if err != nil {
		response.Error(c, apperror.Validation("invalid mint address"))
		return
	}

	result, err := h.cardSvc.CreateCard(c.Request.Context(), ports.CreateCardRequest{
		UserID:       userID,
		Owner:        owner,
		CardID:       req.CardID,
		BalanceLimit: req.BalanceLimit,
		Metadata:     req.Metadata,
		Mint:         mint,
	})
	if err != nil {
		// Degraded success: the card exists on the ledger and the
		// client must not resubmit. 202 with the partial result.
		if apperror.IsDegradedSuccess(err) && result != nil {
			response.Accepted(c, result)
			return
		}
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListCards handles GET /api/v1/cards.
func (h *CardHandler) ListCards(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	cards, err := h.cardSvc.ListCards(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cards)
}

// TopUpCard handles POST /api/v1/cards/:card_id/topup.
func (h *CardHandler) TopUpCard(c *gin.Context) {
	userID, owner, ok := caller(c)
	if !ok {
		return
	}

	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	mint, err := domain.ParseAddress(req.Mint)
	if err != nil {
		response.Error(c, apperror.Validation("invalid mint address"))
		return
	}

	result, err := h.cardSvc.TopUpCard(c.Request.Context(), ports.TopUpRequest{
		UserID: userID,
		Owner:  owner,
		CardID: c.Param("card_id"),
		Amount: req.Amount,
		Mint:   mint,
	})
	if err != nil {
		if apperror.IsDegradedSuccess(err) && result != nil {
			response.Accepted(c, result)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// ProcessPayment handles POST /api/v1/cards/:card_id/payments.
func (h *CardHandler) ProcessPayment(c *gin.Context) {
	userID, owner, ok := caller(c)
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.cardSvc.ProcessPayment(c.Request.Context(), ports.PaymentRequest{
		UserID:            userID,
		Owner:             owner,
		CardID:            c.Param("card_id"),
		MerchantID:        req.MerchantID,
		Amount:            req.Amount,
		MerchantReference: req.MerchantReference,
	})
	if err != nil {
		if apperror.IsDegradedSuccess(err) && result != nil {
			response.Accepted(c, result)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// DeactivateCard handles POST /api/v1/cards/:card_id/deactivate.
func (h *CardHandler) DeactivateCard(c *gin.Context) {
	userID, owner, ok := caller(c)
	if !ok {
		return
	}

	result, err := h.cardSvc.DeactivateCard(c.Request.Context(), userID, owner, c.Param("card_id"))
	if err != nil {
		if apperror.IsDegradedSuccess(err) && result != nil {
			response.Accepted(c, result)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// WithdrawBalance handles POST /api/v1/cards/:card_id/withdraw.
func (h *CardHandler) WithdrawBalance(c *gin.Context) {
	userID, owner, ok := caller(c)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	mint, err := domain.ParseAddress(req.Mint)
	if err != nil {
		response.Error(c, apperror.Validation("invalid mint address"))
		return
	}

	result, err := h.cardSvc.WithdrawBalance(c.Request.Context(), ports.WithdrawRequest{
		UserID: userID,
		Owner:  owner,
		CardID: c.Param("card_id"),
		Mint:   mint,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// RetryRegistration handles POST /api/v1/cards/:card_id/registration.
func (h *CardHandler) RetryRegistration(c *gin.Context) {
	userID, owner, ok := caller(c)
	if !ok {
		return
	}

	var req dto.RetryRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.cardSvc.RetryRegistration(c.Request.Context(), ports.RetryRegistrationRequest{
		UserID:          userID,
		Owner:           owner,
		CardID:          c.Param("card_id"),
		BalanceLimit:    req.BalanceLimit,
		Metadata:        req.Metadata,
		LedgerSignature: req.LedgerSignature,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"card_id": c.Param("card_id"), "registered": true})
}

// GetPaymentHistory handles GET /api/v1/payments.
func (h *CardHandler) GetPaymentHistory(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	q := ports.PaymentHistoryQuery{
		UserID: userID,
		CardID: c.Query("card_id"),
	}
	if limit, err := parseIntQuery(c, "limit"); err == nil {
		q.Limit = limit
	}
	if offset, err := parseIntQuery(c, "offset"); err == nil {
		q.Offset = offset
	}

	payments, err := h.cardSvc.GetPaymentHistory(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, payments)
}
