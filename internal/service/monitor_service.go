package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"

	"github.com/rs/zerolog"
)

// MonitorOptions bounds the monitor's retry and probe behavior.
// Values come from configuration, not constants.
type MonitorOptions struct {
	ProgramID          domain.Address
	HealthInterval     time.Duration
	DedupTTL           time.Duration
	NotifyMaxAttempts  int
	NotifyBackoff      time.Duration
	ResubscribeBackoff time.Duration
}

// MonitorStats is a snapshot of the monitor's counters.
type MonitorStats struct {
	LogEntries     uint64 `json:"log_entries"`
	AccountChanges uint64 `json:"account_changes"`
	Duplicates     uint64 `json:"duplicates"`
	Dispatched     uint64 `json:"dispatched"`
	Dropped        uint64 `json:"dropped"`
	Unknown        uint64 `json:"unknown"`
	HealthFailures uint64 `json:"health_failures"`
	LastSlot       uint64 `json:"last_slot"`
}

// Monitor is the reconciliation monitor: an independent consumer of
// the program's log and account-change streams. It classifies entries
// into domain events and drives notifications with bounded retry. It
// never mutates card or payment records, and it tolerates missed
// events across restarts; it is a best-effort side channel, not the
// system of record.
type Monitor struct {
	ledger   ports.LedgerClient
	dedup    ports.DedupStore
	notifier ports.Notifier
	opts     MonitorOptions
	log      zerolog.Logger

	mu    sync.Mutex
	stats MonitorStats
}

// NewMonitor creates a Monitor.
func NewMonitor(ledger ports.LedgerClient, dedup ports.DedupStore, notifier ports.Notifier, opts MonitorOptions, log zerolog.Logger) *Monitor {
	if opts.NotifyMaxAttempts <= 0 {
		opts.NotifyMaxAttempts = 1
	}
	return &Monitor{
		ledger:   ledger,
		dedup:    dedup,
		notifier: notifier,
		opts:     opts,
		log:      log,
	}
}

// Run consumes both streams until ctx is canceled. Dropped
// subscriptions are re-established with backoff; gaps are accepted.
func (m *Monitor) Run(ctx context.Context) error {
	logCh := m.subscribeLogs(ctx)
	acctCh := m.subscribeAccountChanges(ctx)

	ticker := time.NewTicker(m.opts.HealthInterval)
	defer ticker.Stop()

	m.log.Info().
		Str("program_id", m.opts.ProgramID.String()).
		Dur("health_interval", m.opts.HealthInterval).
		Msg("reconciliation monitor started")

	for {
		select {
		case <-ctx.Done():
			m.log.Info().Interface("stats", m.Stats()).Msg("reconciliation monitor stopped")
			return ctx.Err()
		case entry, ok := <-logCh:
			if !ok {
				logCh = m.subscribeLogs(ctx)
				continue
			}
			m.handleLogEntry(ctx, entry)
		case change, ok := <-acctCh:
			if !ok {
				acctCh = m.subscribeAccountChanges(ctx)
				continue
			}
			m.handleAccountChange(ctx, change)
		case <-ticker.C:
			m.healthCheck(ctx)
		}
	}
}

// Stats returns a snapshot of the counters.
func (m *Monitor) Stats() MonitorStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

func (m *Monitor) handleLogEntry(ctx context.Context, entry ports.LogEntry) {
	m.count(func(s *MonitorStats) {
		s.LogEntries++
		if entry.Slot > s.LastSlot {
			s.LastSlot = entry.Slot
		}
	})

	// At-least-once delivery: drop repeats before side effects fire twice.
	key := fmt.Sprintf("log:%s:%d", entry.Signature, entry.Slot)
	first, err := m.dedup.FirstSeen(ctx, key, m.opts.DedupTTL)
	if err != nil {
		m.log.Warn().Err(err).Str("signature", entry.Signature).Msg("dedup check failed, processing anyway")
	} else if !first {
		m.count(func(s *MonitorStats) { s.Duplicates++ })
		return
	}

	for _, event := range ClassifyLogs(entry) {
		if !event.Dispatchable() {
			m.count(func(s *MonitorStats) { s.Unknown++ })
			m.log.Debug().
				Str("signature", event.Signature).
				Str("payload", event.Payload).
				Msg("unclassified log line recorded for audit")
			continue
		}
		m.dispatch(ctx, describeEvent(event))
	}
}

func (m *Monitor) handleAccountChange(ctx context.Context, change ports.AccountChange) {
	m.count(func(s *MonitorStats) {
		s.AccountChanges++
		if change.Slot > s.LastSlot {
			s.LastSlot = change.Slot
		}
	})

	// Account notifications carry no signature, so the key is the
	// subscribed address, the slot and a digest of the observed state.
	// Distinct changes within one slot stay distinct.
	key := fmt.Sprintf("acct:%s:%d:%s", m.opts.ProgramID, change.Slot, changeDigest(change))
	first, err := m.dedup.FirstSeen(ctx, key, m.opts.DedupTTL)
	if err != nil {
		m.log.Warn().Err(err).Uint64("slot", change.Slot).Msg("dedup check failed, processing anyway")
	} else if !first {
		m.count(func(s *MonitorStats) { s.Duplicates++ })
		return
	}

	m.dispatch(ctx, ports.Notification{
		Event: domain.Event{
			Type:       domain.EventAccountUpdated,
			Slot:       change.Slot,
			Payload:    fmt.Sprintf("owner=%s lamports=%d data_len=%d", change.Owner, change.Lamports, len(change.Data)),
			Confidence: 1,
		},
		Title:       "Account Updated",
		Description: "A program account changed on the ledger",
	})
}

// changeDigest fingerprints an account change by its observed state.
func changeDigest(change ports.AccountChange) string {
	h := sha256.New()
	h.Write(change.Owner[:])
	fmt.Fprintf(h, ":%d:", change.Lamports)
	h.Write(change.Data)
	return hex.EncodeToString(h.Sum(nil)[:8])
}

// dispatch delivers one notification with bounded exponential backoff.
// Permanent failure is logged and the event is dropped, never requeued:
// bounded resource use outranks guaranteed delivery on this channel.
func (m *Monitor) dispatch(ctx context.Context, n ports.Notification) {
	backoff := m.opts.NotifyBackoff
	for attempt := 1; attempt <= m.opts.NotifyMaxAttempts; attempt++ {
		err := m.notifier.SendWebhook(ctx, n)
		if err == nil {
			m.count(func(s *MonitorStats) { s.Dispatched++ })
			return
		}

		m.log.Warn().Err(err).
			Str("event_type", string(n.Event.Type)).
			Int("attempt", attempt).
			Msg("notification delivery failed")

		if attempt == m.opts.NotifyMaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	m.count(func(s *MonitorStats) { s.Dropped++ })
	m.log.Error().
		Str("event_type", string(n.Event.Type)).
		Str("signature", n.Event.Signature).
		Msg("notification dropped after exhausting retries")
}

// healthCheck probes the program account, node health and slot
// progress. A failed probe is reported, never fatal.
func (m *Monitor) healthCheck(ctx context.Context) {
	acct, err := m.ledger.GetAccount(ctx, m.opts.ProgramID)
	if err == nil && acct == nil {
		err = fmt.Errorf("program account %s not found", m.opts.ProgramID)
	}
	if err == nil {
		err = m.ledger.Health(ctx)
	}

	var slot uint64
	if err == nil {
		slot, err = m.ledger.CurrentSlot(ctx)
	}

	if err != nil {
		m.count(func(s *MonitorStats) { s.HealthFailures++ })
		m.log.Warn().Err(err).Msg("health probe failed")
		return
	}

	m.log.Debug().Uint64("slot", slot).Msg("health probe passed")
}

func (m *Monitor) subscribeLogs(ctx context.Context) <-chan ports.LogEntry {
	for {
		ch, err := m.ledger.SubscribeLogs(ctx, m.opts.ProgramID)
		if err == nil {
			return ch
		}
		m.log.Warn().Err(err).Msg("log subscription failed, retrying")
		select {
		case <-ctx.Done():
			return nil // nil channel blocks; Run exits via ctx.Done
		case <-time.After(m.opts.ResubscribeBackoff):
		}
	}
}

func (m *Monitor) subscribeAccountChanges(ctx context.Context) <-chan ports.AccountChange {
	for {
		ch, err := m.ledger.SubscribeAccountChanges(ctx, m.opts.ProgramID)
		if err == nil {
			return ch
		}
		m.log.Warn().Err(err).Msg("account subscription failed, retrying")
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(m.opts.ResubscribeBackoff):
		}
	}
}

func (m *Monitor) count(fn func(*MonitorStats)) {
	m.mu.Lock()
	fn(&m.stats)
	m.mu.Unlock()
}

// describeEvent maps a classified event to its notification copy.
func describeEvent(event domain.Event) ports.Notification {
	n := ports.Notification{Event: event}
	switch event.Type {
	case domain.EventCardCreated:
		n.Title = "New Virtual Card Created"
		n.Description = "A new virtual card has been created on the bridge"
	case domain.EventCardToppedUp:
		n.Title = "Card Topped Up"
		n.Description = "A virtual card has been topped up with funds"
	case domain.EventPaymentProcessed:
		n.Title = "Payment Processed"
		n.Description = "A payment has been processed through the bridge"
	case domain.EventCardDeactivated:
		n.Title = "Card Deactivated"
		n.Description = "A virtual card has been deactivated"
	case domain.EventBalanceWithdrawn:
		n.Title = "Balance Withdrawn"
		n.Description = "Remaining escrow balance was withdrawn"
	case domain.EventError:
		n.Title = "Bridge Error Detected"
		n.Description = fmt.Sprintf("Error in bridge operation: %s", event.Payload)
		n.Severity = "high"
	default:
		n.Title = string(event.Type)
		n.Description = event.Payload
	}
	return n
}
