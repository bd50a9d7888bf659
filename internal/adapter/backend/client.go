// Package backend is the REST adapter over the custodial backend. It
// implements ports.BackendClient. Balance-mutating calls carry the
// ledger signature as an idempotency key, so the reconciliation path
// can replay them safely.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aurexlabs/aurex-bridge/config"
	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"
	"github.com/aurexlabs/aurex-bridge/pkg/apperror"

	"github.com/rs/zerolog"
)

// errStatusNotFound marks a 404 so lookups can answer (nil, nil).
var errStatusNotFound = errors.New("backend: not found")

// Client is an HTTP client for the custodial backend API.
type Client struct {
	baseURL       string
	apiKey        string
	retryAttempts int
	retryBackoff  time.Duration
	httpClient    *http.Client
	log           zerolog.Logger
}

// NewClient creates a backend client from configuration.
func NewClient(cfg config.BackendConfig, log zerolog.Logger) *Client {
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return &Client{
		baseURL:       cfg.BaseURL,
		apiKey:        cfg.APIKey,
		retryAttempts: attempts,
		retryBackoff:  cfg.RetryBackoff,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		log:           log,
	}
}

// RegisterCard creates the card record. Safe to replay: the backend
// dedups on the Idempotency-Key header.
func (c *Client) RegisterCard(ctx context.Context, reg ports.CardRegistration) error {
	body := map[string]any{
		"card_id":        reg.CardID,
		"user_id":        reg.UserID,
		"card_address":   reg.CardAddress.String(),
		"escrow_address": reg.EscrowAddress.String(),
		"balance_limit":  reg.BalanceLimit,
		"metadata":       reg.Metadata,
	}
	return c.do(ctx, http.MethodPost, "/v1/solana/cards", nil, body, reg.LedgerSignature, nil, true)
}

// GetCard returns (nil, nil) when the card does not exist.
func (c *Client) GetCard(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	var card domain.Card
	err := c.do(ctx, http.MethodGet, "/v1/solana/cards/"+url.PathEscape(cardID),
		url.Values{"user_id": {userID}}, nil, "", &card, true)
	if errors.Is(err, errStatusNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// GetUserCards lists the user's cards.
func (c *Client) GetUserCards(ctx context.Context, userID string) ([]domain.Card, error) {
	var cards []domain.Card
	err := c.do(ctx, http.MethodGet, "/v1/solana/cards",
		url.Values{"user_id": {userID}}, nil, "", &cards, true)
	if errors.Is(err, errStatusNotFound) {
		return []domain.Card{}, nil
	}
	return cards, err
}

// UpdateCardBalance mirrors a confirmed balance change. Idempotent by
// ledger signature.
func (c *Client) UpdateCardBalance(ctx context.Context, cardID string, amount int64, op domain.BalanceOp, ledgerSignature string) error {
	body := map[string]any{
		"amount":    amount,
		"operation": string(op),
	}
	return c.do(ctx, http.MethodPatch, "/v1/solana/cards/"+url.PathEscape(cardID)+"/balance",
		nil, body, ledgerSignature, nil, true)
}

// DeactivateCard marks the card inactive in the backend.
func (c *Client) DeactivateCard(ctx context.Context, cardID string) error {
	return c.do(ctx, http.MethodPatch, "/v1/solana/cards/"+url.PathEscape(cardID)+"/deactivate",
		nil, nil, "", nil, true)
}

// GetMerchant returns (nil, nil) when the merchant does not exist.
func (c *Client) GetMerchant(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	var merchant domain.Merchant
	err := c.do(ctx, http.MethodGet, "/v1/merchants/"+url.PathEscape(merchantID), nil, nil, "", &merchant, true)
	if errors.Is(err, errStatusNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &merchant, nil
}

// RecordPayment creates a pending payment record. Not retried here:
// there is no ledger signature yet to dedup on, and the backend
// rejects duplicate merchant references with 409.
func (c *Client) RecordPayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	body := map[string]any{
		"card_id":            payment.CardID,
		"merchant_id":        payment.MerchantID,
		"amount":             payment.Amount,
		"merchant_reference": payment.MerchantReference,
		"status":             string(payment.Status),
	}
	var created domain.Payment
	if err := c.do(ctx, http.MethodPost, "/v1/solana/payments", nil, body, "", &created, false); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePaymentStatus finalizes a payment record. Idempotent by
// ledger signature.
func (c *Client) UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, ledgerSignature string) error {
	body := map[string]any{
		"status":       string(status),
		"tx_signature": ledgerSignature,
	}
	return c.do(ctx, http.MethodPatch, "/v1/solana/payments/"+url.PathEscape(paymentID)+"/status",
		nil, body, ledgerSignature, nil, true)
}

// GetPaymentHistory lists recorded payments, newest first.
func (c *Client) GetPaymentHistory(ctx context.Context, q ports.PaymentHistoryQuery) ([]domain.Payment, error) {
	query := url.Values{"user_id": {q.UserID}}
	if q.CardID != "" {
		query.Set("card_id", q.CardID)
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		query.Set("offset", strconv.Itoa(q.Offset))
	}

	var payments []domain.Payment
	err := c.do(ctx, http.MethodGet, "/v1/solana/payments", query, nil, "", &payments, true)
	if errors.Is(err, errStatusNotFound) {
		return []domain.Payment{}, nil
	}
	return payments, err
}

// envelope is the backend's standard response wrapper.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// do performs one API call with bounded retry on transport failures
// and 5xx responses. retriable must be false for calls that are not
// idempotent.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, idempotencyKey string, out any, retriable bool) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("marshal %s %s: %w", method, path, err))
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	attempts := c.retryAttempts
	if !retriable {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return apperror.ErrBackendUnavailable(ctx.Err())
			case <-time.After(c.retryBackoff * time.Duration(attempt-1)):
			}
		}

		err := c.doOnce(ctx, method, endpoint, payload, idempotencyKey, out)
		if err == nil {
			return nil
		}

		// Only availability problems are worth another attempt.
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Code != "BCK_003" {
			return err
		}
		lastErr = err
		c.log.Warn().Err(err).
			Str("method", method).
			Str("path", path).
			Int("attempt", attempt).
			Msg("backend call failed")
	}
	return lastErr
}

func (c *Client) doOnce(ctx context.Context, method, endpoint string, payload []byte, idempotencyKey string, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apperror.InternalError(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.ErrBackendUnavailable(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.ErrBackendUnavailable(err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil || env.Data == nil {
			// Some endpoints answer without the wrapper.
			if err := json.Unmarshal(data, out); err != nil {
				return apperror.ErrBackendUnavailable(fmt.Errorf("decode response: %w", err))
			}
			return nil
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return apperror.ErrBackendUnavailable(fmt.Errorf("decode response data: %w", err))
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errStatusNotFound
	case resp.StatusCode == http.StatusConflict:
		return apperror.ErrDuplicateReference()
	default:
		return apperror.ErrBackendUnavailable(fmt.Errorf("%s %s: http %d: %s", method, endpoint, resp.StatusCode, truncate(data, 200)))
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
