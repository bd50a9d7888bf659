package ledger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aurexlabs/aurex-bridge/config"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// fakeWSNode accepts one subscription and plays back frames.
func fakeWSNode(t *testing.T, frames []any) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		// Consume the subscribe request and ack it.
		var req rpcRequest
		require.NoError(t, conn.ReadJSON(&req))
		require.NoError(t, conn.WriteJSON(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": 1}))

		for _, frame := range frames {
			require.NoError(t, conn.WriteJSON(frame))
		}
		// Hold the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)

	return NewClient(config.LedgerConfig{
		WSURL:         "ws" + strings.TrimPrefix(server.URL, "http"),
		Commitment:    "confirmed",
		SubmitTimeout: time.Second,
	}, zerolog.Nop())
}

func logsFrame(sig string, slot uint64, logs []string, errVal any) map[string]any {
	return map[string]any{
		"jsonrpc": "2.0",
		"method":  "logsNotification",
		"params": map[string]any{
			"subscription": 1,
			"result": map[string]any{
				"context": map[string]any{"slot": slot},
				"value":   map[string]any{"signature": sig, "err": errVal, "logs": logs},
			},
		},
	}
}

func TestSubscribeLogs_DeliversEntries(t *testing.T) {
	client := fakeWSNode(t, []any{
		logsFrame("sig-1", 10, []string{"Program log: CardCreated"}, nil),
		logsFrame("sig-2", 11, []string{"Program log: Error"}, map[string]any{"InstructionError": []any{0, "Custom"}}),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := client.SubscribeLogs(ctx, ledgerTestAddr(1))
	require.NoError(t, err)

	entry := recvLogEntry(t, ch)
	assert.Equal(t, "sig-1", entry.Signature)
	assert.Equal(t, uint64(10), entry.Slot)
	assert.Equal(t, []string{"Program log: CardCreated"}, entry.Logs)
	assert.Empty(t, entry.Err)

	entry = recvLogEntry(t, ch)
	assert.Equal(t, "sig-2", entry.Signature)
	assert.NotEmpty(t, entry.Err)
}

func TestSubscribeLogs_ChannelClosesOnCancel(t *testing.T) {
	client := fakeWSNode(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := client.SubscribeLogs(ctx, ledgerTestAddr(1))
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should close after cancellation")
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close")
	}
}

func TestSubscribeAccountChanges_DeliversChange(t *testing.T) {
	owner := ledgerTestAddr(7)
	client := fakeWSNode(t, []any{
		map[string]any{
			"jsonrpc": "2.0",
			"method":  "accountNotification",
			"params": map[string]any{
				"subscription": 1,
				"result": map[string]any{
					"context": map[string]any{"slot": 55},
					"value": map[string]any{
						"data":     []string{"qrs=", "base64"},
						"owner":    owner.String(),
						"lamports": 777,
					},
				},
			},
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := client.SubscribeAccountChanges(ctx, ledgerTestAddr(2))
	require.NoError(t, err)

	select {
	case change := <-ch:
		assert.Equal(t, uint64(55), change.Slot)
		assert.Equal(t, owner, change.Owner)
		assert.Equal(t, uint64(777), change.Lamports)
	case <-time.After(2 * time.Second):
		t.Fatal("no account change delivered")
	}
}

func TestSubscribe_DialFailure(t *testing.T) {
	client := NewClient(config.LedgerConfig{WSURL: "ws://127.0.0.1:1"}, zerolog.Nop())
	_, err := client.SubscribeLogs(context.Background(), ledgerTestAddr(1))
	require.Error(t, err)
}

func recvLogEntry(t *testing.T, ch <-chan ports.LogEntry) ports.LogEntry {
	t.Helper()
	select {
	case entry, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return entry
	case <-time.After(2 * time.Second):
		t.Fatal("no log entry delivered")
		return ports.LogEntry{}
	}
}
