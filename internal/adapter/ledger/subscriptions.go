package ledger

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"
	"github.com/aurexlabs/aurex-bridge/pkg/apperror"

	"github.com/gorilla/websocket"
)

const subscriptionBuffer = 64

type wsNotification struct {
	Method string `json:"method"`
	Params struct {
		Result json.RawMessage `json:"result"`
	} `json:"params"`
}

type wsContext struct {
	Slot uint64 `json:"slot"`
}

type logsNotification struct {
	Context wsContext `json:"context"`
	Value   struct {
		Signature string          `json:"signature"`
		Err       json.RawMessage `json:"err"`
		Logs      []string        `json:"logs"`
	} `json:"value"`
}

type accountNotification struct {
	Context wsContext `json:"context"`
	Value   struct {
		Data     []string `json:"data"` // [base64 payload, encoding]
		Owner    string   `json:"owner"`
		Lamports uint64   `json:"lamports"`
	} `json:"value"`
}

// SubscribeLogs streams transaction logs mentioning programID. The
// returned channel closes when the connection drops; the consumer
// owns resubscription.
func (c *Client) SubscribeLogs(ctx context.Context, programID domain.Address) (<-chan ports.LogEntry, error) {
	conn, err := c.dialAndSubscribe(ctx, "logsSubscribe", []any{
		map[string]any{"mentions": []string{programID.String()}},
		map[string]any{"commitment": c.commitment},
	})
	if err != nil {
		return nil, err
	}

	ch := make(chan ports.LogEntry, subscriptionBuffer)
	go c.readLoop(ctx, conn, "logsNotification", func(result json.RawMessage) {
		var n logsNotification
		if err := json.Unmarshal(result, &n); err != nil {
			c.log.Warn().Err(err).Msg("malformed logs notification")
			return
		}
		entry := ports.LogEntry{
			Signature: n.Value.Signature,
			Slot:      n.Context.Slot,
			Logs:      n.Value.Logs,
		}
		if len(n.Value.Err) > 0 && string(n.Value.Err) != "null" {
			entry.Err = string(n.Value.Err)
		}
		select {
		case ch <- entry:
		case <-ctx.Done():
		}
	}, func() { close(ch) })

	return ch, nil
}

// SubscribeAccountChanges streams state changes for one account.
func (c *Client) SubscribeAccountChanges(ctx context.Context, addr domain.Address) (<-chan ports.AccountChange, error) {
	conn, err := c.dialAndSubscribe(ctx, "accountSubscribe", []any{
		addr.String(),
		map[string]any{"encoding": "base64", "commitment": c.commitment},
	})
	if err != nil {
		return nil, err
	}

	ch := make(chan ports.AccountChange, subscriptionBuffer)
	go c.readLoop(ctx, conn, "accountNotification", func(result json.RawMessage) {
		var n accountNotification
		if err := json.Unmarshal(result, &n); err != nil {
			c.log.Warn().Err(err).Msg("malformed account notification")
			return
		}
		change := ports.AccountChange{
			Slot:     n.Context.Slot,
			Lamports: n.Value.Lamports,
		}
		if len(n.Value.Data) > 0 {
			if data, err := base64.StdEncoding.DecodeString(n.Value.Data[0]); err == nil {
				change.Data = data
			}
		}
		if owner, err := domain.ParseAddress(n.Value.Owner); err == nil {
			change.Owner = owner
		}
		select {
		case ch <- change:
		case <-ctx.Done():
		}
	}, func() { close(ch) })

	return ch, nil
}

// dialAndSubscribe opens the websocket and sends one subscribe
// request. The subscription ack is consumed by the read loop, which
// ignores frames without a notification method.
func (c *Client) dialAndSubscribe(ctx context.Context, method string, params []any) (*websocket.Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.wsURL, nil)
	if err != nil {
		return nil, apperror.ErrLedgerUnavailable(fmt.Errorf("dial %s: %w", c.wsURL, err))
	}

	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      c.reqID.Add(1),
		Method:  method,
		Params:  params,
	}
	if err := conn.WriteJSON(req); err != nil {
		conn.Close()
		return nil, apperror.ErrLedgerUnavailable(fmt.Errorf("%s: %w", method, err))
	}

	c.log.Info().Str("method", method).Msg("ledger subscription established")
	return conn, nil
}

// readLoop pumps notification frames into handle until the connection
// drops or ctx is canceled, then runs done (closing the channel).
func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn, method string, handle func(json.RawMessage), done func()) {
	defer done()
	defer conn.Close()

	// Unblock ReadMessage on cancellation.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				c.log.Warn().Err(err).Str("method", method).Msg("subscription connection dropped")
			}
			return
		}

		var notif wsNotification
		if err := json.Unmarshal(data, &notif); err != nil || notif.Method != method {
			// Subscription acks and unrelated frames land here.
			continue
		}
		handle(notif.Params.Result)
	}
}
