package ledger

import "context"

// HealthCheck implements ports.HealthChecker for the ledger node.
type HealthCheck struct {
	client *Client
}

func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.client.Health(ctx)
}

func (h *HealthCheck) Name() string {
	return "ledger"
}
