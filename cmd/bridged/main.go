package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aurexlabs/aurex-bridge/config"
	backendAdapter "github.com/aurexlabs/aurex-bridge/internal/adapter/backend"
	httpHandler "github.com/aurexlabs/aurex-bridge/internal/adapter/http/handler"
	ledgerAdapter "github.com/aurexlabs/aurex-bridge/internal/adapter/ledger"
	memStorage "github.com/aurexlabs/aurex-bridge/internal/adapter/storage/memory"
	redisStorage "github.com/aurexlabs/aurex-bridge/internal/adapter/storage/redis"
	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"
	"github.com/aurexlabs/aurex-bridge/internal/service"
	"github.com/aurexlabs/aurex-bridge/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Aurex Bridge")

	programID, err := domain.ParseAddress(cfg.Ledger.ProgramID)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid ledger program id")
	}

	ctx := context.Background()

	// Ledger node client
	ledgerClient := ledgerAdapter.NewClient(cfg.Ledger, log)
	log.Info().Str("rpc_url", cfg.Ledger.RPCURL).Msg("Ledger client initialized")

	// Card backend client
	backendClient := backendAdapter.NewClient(cfg.Backend, log)
	log.Info().Str("base_url", cfg.Backend.BaseURL).Msg("Backend client initialized")

	// Health checkers
	healthCheckers := []ports.HealthChecker{
		ledgerAdapter.NewHealthCheck(ledgerClient),
		backendAdapter.NewHealthCheck(backendClient),
	}

	// Redis is optional; without it rate limiting is disabled and the
	// monitor deduplicates in process memory.
	var rateLimitStore *redisStorage.RateLimitStore
	var dedupStore ports.DedupStore = memStorage.NewDedupStore()
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		dedupStore = redisStorage.NewDedupStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	cardSvc := service.NewCardService(ledgerClient, backendClient, programID, log)
	bridgeSvc := service.NewBridgeService(ledgerClient, programID, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CardSvc:        cardSvc,
		BridgeSvc:      bridgeSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// Reconciliation monitor runs alongside the API server unless a
	// dedicated monitor deployment handles it.
	monitorCtx, stopMonitor := context.WithCancel(ctx)
	defer stopMonitor()
	if cfg.Monitor.Enabled {
		sigSvc := service.NewHMACSignatureService()
		notifySvc := service.NewNotifyService(
			cfg.Webhook.URL,
			cfg.Webhook.Secret,
			sigSvc,
			&http.Client{Timeout: 10 * time.Second},
			log,
		)
		monitor := service.NewMonitor(ledgerClient, dedupStore, notifySvc, service.MonitorOptions{
			ProgramID:          programID,
			HealthInterval:     cfg.Monitor.HealthInterval,
			DedupTTL:           cfg.Monitor.DedupTTL,
			NotifyMaxAttempts:  cfg.Monitor.NotifyMaxAttempts,
			NotifyBackoff:      cfg.Monitor.NotifyBackoff,
			ResubscribeBackoff: cfg.Monitor.ResubscribeBackoff,
		}, log)
		go func() {
			if err := monitor.Run(monitorCtx); err != nil && monitorCtx.Err() == nil {
				log.Error().Err(err).Msg("Reconciliation monitor stopped")
			}
		}()
		log.Info().Msg("Reconciliation monitor started")
	}

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	stopMonitor()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
