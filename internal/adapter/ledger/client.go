// Package ledger is the JSON-RPC and websocket adapter over the
// external ledger node. It implements ports.LedgerClient: submission,
// confirmation polling, account reads and the two subscription streams.
package ledger

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/aurexlabs/aurex-bridge/config"
	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"
	"github.com/aurexlabs/aurex-bridge/pkg/apperror"

	"github.com/rs/zerolog"
)

// Client talks to one ledger node over JSON-RPC (reads, submission)
// and websocket (subscriptions).
type Client struct {
	rpcURL         string
	wsURL          string
	commitment     string
	confirmTimeout time.Duration
	confirmPoll    time.Duration
	httpClient     *http.Client
	log            zerolog.Logger

	reqID atomic.Uint64
}

// NewClient creates a ledger client from configuration.
func NewClient(cfg config.LedgerConfig, log zerolog.Logger) *Client {
	return &Client{
		rpcURL:         cfg.RPCURL,
		wsURL:          cfg.WSURL,
		commitment:     cfg.Commitment,
		confirmTimeout: cfg.ConfirmTimeout,
		confirmPoll:    cfg.ConfirmPoll,
		httpClient:     &http.Client{Timeout: cfg.SubmitTimeout},
		log:            log,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// call performs one JSON-RPC request. Transport failures map to RPC_*
// errors; node-level errors are returned for the caller to interpret.
func (c *Client) call(ctx context.Context, method string, params any, result any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.reqID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal %s request: %w", method, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return apperror.InternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.ErrLedgerUnavailable(err)
	}
	if resp.StatusCode != http.StatusOK {
		return apperror.ErrLedgerUnavailable(fmt.Errorf("%s: http %d", method, resp.StatusCode))
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(data, &rpcResp); err != nil {
		return apperror.ErrLedgerUnavailable(fmt.Errorf("%s: decode response: %w", method, err))
	}
	if rpcResp.Error != nil {
		return mapNodeError(rpcResp.Error)
	}
	if result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return apperror.ErrLedgerUnavailable(fmt.Errorf("%s: decode result: %w", method, err))
		}
	}
	return nil
}

// Submit sends a transaction and returns its signature. The node runs
// preflight at the configured commitment, so program rejections
// surface here as typed LGR_* errors.
func (c *Client) Submit(ctx context.Context, tx *ports.Transaction) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(serializeTransaction(tx))

	var sig string
	err := c.call(ctx, "sendTransaction", []any{
		encoded,
		map[string]any{"encoding": "base64", "preflightCommitment": c.commitment},
	}, &sig)
	if err != nil {
		return "", err
	}

	c.log.Debug().Str("signature", sig).Msg("transaction submitted")
	return sig, nil
}

type signatureStatus struct {
	Slot               uint64          `json:"slot"`
	Err                json.RawMessage `json:"err"`
	ConfirmationStatus string          `json:"confirmationStatus"`
}

type signatureStatusResult struct {
	Value []*signatureStatus `json:"value"`
}

// Confirm polls the signature status until it reaches the configured
// commitment, fails on-ledger, or the confirmation window closes.
func (c *Client) Confirm(ctx context.Context, signature string) error {
	ctx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.confirmPoll)
	defer ticker.Stop()

	for {
		var res signatureStatusResult
		err := c.call(ctx, "getSignatureStatuses", []any{[]string{signature}}, &res)
		if err == nil && len(res.Value) > 0 && res.Value[0] != nil {
			status := res.Value[0]
			if len(status.Err) > 0 && string(status.Err) != "null" {
				return mapProgramError(string(status.Err))
			}
			if commitmentReached(status.ConfirmationStatus, c.commitment) {
				return nil
			}
		} else if err != nil {
			c.log.Debug().Err(err).Str("signature", signature).Msg("status poll failed")
		}

		select {
		case <-ctx.Done():
			return apperror.ErrLedgerTimeout(fmt.Errorf("signature %s not confirmed: %w", signature, ctx.Err()))
		case <-ticker.C:
		}
	}
}

func commitmentReached(status, want string) bool {
	if status == "" {
		return false
	}
	if want == "finalized" {
		return status == "finalized"
	}
	return status == "confirmed" || status == "finalized"
}

type accountInfoResult struct {
	Value *struct {
		Data     []string `json:"data"` // [base64 payload, encoding]
		Owner    string   `json:"owner"`
		Lamports uint64   `json:"lamports"`
	} `json:"value"`
}

// GetAccount fetches raw account bytes. Returns (nil, nil) when the
// account does not exist.
func (c *Client) GetAccount(ctx context.Context, addr domain.Address) (*ports.AccountInfo, error) {
	var res accountInfoResult
	err := c.call(ctx, "getAccountInfo", []any{
		addr.String(),
		map[string]any{"encoding": "base64", "commitment": c.commitment},
	}, &res)
	if err != nil {
		return nil, err
	}
	if res.Value == nil {
		return nil, nil
	}

	var data []byte
	if len(res.Value.Data) > 0 {
		data, err = base64.StdEncoding.DecodeString(res.Value.Data[0])
		if err != nil {
			return nil, apperror.ErrLedgerUnavailable(fmt.Errorf("decode account data: %w", err))
		}
	}

	owner, err := domain.ParseAddress(res.Value.Owner)
	if err != nil {
		return nil, apperror.ErrLedgerUnavailable(fmt.Errorf("parse account owner: %w", err))
	}

	return &ports.AccountInfo{
		Data:     data,
		Owner:    owner,
		Lamports: res.Value.Lamports,
	}, nil
}

// Health reports node health.
func (c *Client) Health(ctx context.Context) error {
	var status string
	if err := c.call(ctx, "getHealth", nil, &status); err != nil {
		return err
	}
	if status != "ok" {
		return apperror.ErrLedgerUnavailable(fmt.Errorf("node health: %s", status))
	}
	return nil
}

// CurrentSlot returns the node's current slot.
func (c *Client) CurrentSlot(ctx context.Context) (uint64, error) {
	var slot uint64
	if err := c.call(ctx, "getSlot", nil, &slot); err != nil {
		return 0, err
	}
	return slot, nil
}

// serializeTransaction encodes the wire form the node expects:
// program address, the ordered account list with signer/writable
// flags, then the length-prefixed instruction payload. Little-endian
// throughout, matching the account codecs.
func serializeTransaction(tx *ports.Transaction) []byte {
	buf := make([]byte, 0, 64+len(tx.Accounts)*34+len(tx.Data))
	buf = append(buf, tx.ProgramID[:]...)

	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(tx.Accounts)))
	buf = append(buf, n[:]...)
	for _, acct := range tx.Accounts {
		buf = append(buf, acct.Address[:]...)
		var flags byte
		if acct.Signer {
			flags |= 1
		}
		if acct.Writable {
			flags |= 2
		}
		buf = append(buf, flags)
	}

	binary.LittleEndian.PutUint32(n[:], uint32(len(tx.Data)))
	buf = append(buf, n[:]...)
	buf = append(buf, tx.Data...)
	return buf
}
