package handler

import (
	"github.com/aurexlabs/aurex-bridge/internal/adapter/http/middleware"
	redisStore "github.com/aurexlabs/aurex-bridge/internal/adapter/storage/redis"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CardSvc        ports.CardService
	BridgeSvc      ports.BridgeService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Deep health check: pings the ledger node and Redis if enabled.
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// All API routes require a backend-issued bearer token.
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1", jwtAuth)

	cardHandler := NewCardHandler(deps.CardSvc)
	cards := v1.Group("/cards")
	{
		cards.POST("", rl("cards_create"), cardHandler.CreateCard)
		cards.GET("", rl("reads"), cardHandler.ListCards)
		cards.POST("/:card_id/topup", rl("cards_write"), cardHandler.TopUpCard)
		cards.POST("/:card_id/payments", rl("payments"), cardHandler.ProcessPayment)
		cards.POST("/:card_id/deactivate", rl("cards_write"), cardHandler.DeactivateCard)
		cards.POST("/:card_id/withdraw", rl("cards_write"), cardHandler.WithdrawBalance)
		cards.POST("/:card_id/registration", rl("cards_write"), cardHandler.RetryRegistration)
	}

	v1.GET("/payments", rl("reads"), cardHandler.GetPaymentHistory)

	bridgeHandler := NewBridgeHandler(deps.BridgeSvc)
	v1.POST("/bridge/initialize", rl("cards_write"), bridgeHandler.Initialize)
	v1.GET("/bridge/status", rl("reads"), bridgeHandler.Status)

	return r
}
