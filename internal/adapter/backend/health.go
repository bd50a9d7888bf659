package backend

import (
	"context"
	"fmt"
	"net/http"
)

// HealthCheck implements ports.HealthChecker for the custodial backend.
type HealthCheck struct {
	client *Client
}

func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.client.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := h.client.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("backend health returned status %d", resp.StatusCode)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "backend"
}
