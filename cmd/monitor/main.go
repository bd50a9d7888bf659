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
	ledgerAdapter "github.com/aurexlabs/aurex-bridge/internal/adapter/ledger"
	memStorage "github.com/aurexlabs/aurex-bridge/internal/adapter/storage/memory"
	redisStorage "github.com/aurexlabs/aurex-bridge/internal/adapter/storage/redis"
	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"
	"github.com/aurexlabs/aurex-bridge/internal/service"
	"github.com/aurexlabs/aurex-bridge/pkg/logger"
)

// Standalone reconciliation monitor. Deployments that scale the API
// horizontally run one of these instead of the in-process monitor, so
// each ledger event is classified and dispatched exactly once.
func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().Msg("Starting Aurex Bridge monitor")

	programID, err := domain.ParseAddress(cfg.Ledger.ProgramID)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid ledger program id")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ledgerClient := ledgerAdapter.NewClient(cfg.Ledger, log)

	var dedupStore ports.DedupStore = memStorage.NewDedupStore()
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		dedupStore = redisStorage.NewDedupStore(rdb)
		log.Info().Msg("Redis connected")
	} else {
		log.Warn().Msg("Redis disabled, deduplicating in process memory")
	}

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

	if err := monitor.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("Monitor stopped")
	}

	log.Info().Msg("Monitor exited")
}
