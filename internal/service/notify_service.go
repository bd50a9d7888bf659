package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aurexlabs/aurex-bridge/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookPayload is the JSON structure sent to the configured webhook URL.
type WebhookPayload struct {
	EventType   string `json:"event_type"`
	Signature   string `json:"tx_signature,omitempty"`
	Slot        uint64 `json:"slot"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity,omitempty"`
	Payload     string `json:"payload,omitempty"`
}

// NotifyService implements ports.Notifier. Each Send is a single
// attempt; the reconciliation monitor owns the bounded retry policy.
type NotifyService struct {
	webhookURL string
	secret     string
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewNotifyService creates a new NotifyService. An empty webhookURL
// disables webhook dispatch (sends become no-ops).
func NewNotifyService(webhookURL, secret string, sigSvc ports.SignatureService, httpClient HTTPClient, log zerolog.Logger) *NotifyService {
	return &NotifyService{
		webhookURL: webhookURL,
		secret:     secret,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		log:        log,
	}
}

// SendWebhook delivers one signed webhook. Non-2xx responses are errors
// so the caller's retry policy can engage.
func (s *NotifyService) SendWebhook(ctx context.Context, n ports.Notification) error {
	if s.webhookURL == "" {
		s.log.Debug().Str("event_type", string(n.Event.Type)).Msg("webhook: no URL configured, skipping")
		return nil
	}

	payload := WebhookPayload{
		EventType:   string(n.Event.Type),
		Signature:   n.Event.Signature,
		Slot:        n.Event.Slot,
		Title:       n.Title,
		Description: n.Description,
		Severity:    n.Severity,
		Payload:     n.Event.Payload,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.secret != "" {
		req.Header.Set("X-Bridge-Signature", s.sigSvc.Sign(s.secret, string(body)))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: delivery: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook: non-2xx response: %d", resp.StatusCode)
	}

	s.log.Debug().
		Str("event_type", string(n.Event.Type)).
		Str("signature", n.Event.Signature).
		Msg("webhook delivered")
	return nil
}

// SendPush is a logged stub; the push transport lives with the backend.
func (s *NotifyService) SendPush(_ context.Context, userID string, n ports.Notification) error {
	s.log.Info().
		Str("user_id", userID).
		Str("event_type", string(n.Event.Type)).
		Msg("push notification (stub)")
	return nil
}

// SendEmail is a logged stub; the email transport lives with the backend.
func (s *NotifyService) SendEmail(_ context.Context, userID string, n ports.Notification) error {
	s.log.Info().
		Str("user_id", userID).
		Str("event_type", string(n.Event.Type)).
		Msg("email notification (stub)")
	return nil
}
