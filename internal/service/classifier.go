package service

import (
	"strings"

	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"
)

// Marker-based classification is best effort: program logs are
// unstructured text, so matching is by event marker. Unmatched lines
// classify as Unknown and are kept for audit, never dispatched.
var eventMarkers = []struct {
	marker string
	typ    domain.EventType
}{
	{"CardCreated", domain.EventCardCreated},
	{"CardToppedUp", domain.EventCardToppedUp},
	{"PaymentProcessed", domain.EventPaymentProcessed},
	{"CardDeactivated", domain.EventCardDeactivated},
	{"BalanceWithdrawn", domain.EventBalanceWithdrawn},
}

const (
	markerConfidence = 0.9
	errorConfidence  = 0.5
)

// ClassifyLogs maps one log entry to zero or more domain events.
// Pure function: no retries, no I/O.
func ClassifyLogs(entry ports.LogEntry) []domain.Event {
	events := make([]domain.Event, 0, len(entry.Logs))
	for _, line := range entry.Logs {
		events = append(events, classifyLine(entry, line))
	}
	if entry.Err != "" {
		events = append(events, domain.Event{
			Type:       domain.EventError,
			Signature:  entry.Signature,
			Slot:       entry.Slot,
			Payload:    entry.Err,
			Confidence: 1,
		})
	}
	return events
}

func classifyLine(entry ports.LogEntry, line string) domain.Event {
	for _, m := range eventMarkers {
		if strings.Contains(line, m.marker) {
			return domain.Event{
				Type:       m.typ,
				Signature:  entry.Signature,
				Slot:       entry.Slot,
				Payload:    line,
				Confidence: markerConfidence,
			}
		}
	}
	if strings.Contains(line, "Error") {
		return domain.Event{
			Type:       domain.EventError,
			Signature:  entry.Signature,
			Slot:       entry.Slot,
			Payload:    line,
			Confidence: errorConfidence,
		}
	}
	return domain.Event{
		Type:      domain.EventUnknown,
		Signature: entry.Signature,
		Slot:      entry.Slot,
		Payload:   line,
	}
}
