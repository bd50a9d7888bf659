package handler

import (
	"strconv"

	"github.com/aurexlabs/aurex-bridge/internal/core/ports"
	"github.com/aurexlabs/aurex-bridge/pkg/response"

	"github.com/gin-gonic/gin"
)

// BridgeHandler serves deployment-wide bridge state.
type BridgeHandler struct {
	bridgeSvc ports.BridgeService
}

// NewBridgeHandler creates a new BridgeHandler.
func NewBridgeHandler(bridgeSvc ports.BridgeService) *BridgeHandler {
	return &BridgeHandler{bridgeSvc: bridgeSvc}
}

// Initialize handles POST /api/v1/bridge/initialize. The caller's
// ledger address becomes the bridge authority.
func (h *BridgeHandler) Initialize(c *gin.Context) {
	_, owner, ok := caller(c)
	if !ok {
		return
	}

	result, err := h.bridgeSvc.Initialize(c.Request.Context(), owner)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Status handles GET /api/v1/bridge/status.
func (h *BridgeHandler) Status(c *gin.Context) {
	status, err := h.bridgeSvc.Status(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}

// HealthCheck reports service health including dependency pings.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := 200
		if !allHealthy {
			status = "degraded"
			httpCode = 503
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}

// parseIntQuery parses a positive integer query parameter.
func parseIntQuery(c *gin.Context, name string) (int, error) {
	return strconv.Atoi(c.Query(name))
}
