package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	Backend BackendConfig `mapstructure:"backend"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Monitor MonitorConfig `mapstructure:"monitor"`
	Webhook WebhookConfig `mapstructure:"webhook"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type LedgerConfig struct {
	RPCURL         string        `mapstructure:"rpc_url"`
	WSURL          string        `mapstructure:"ws_url"`
	ProgramID      string        `mapstructure:"program_id"` // hex address
	Commitment     string        `mapstructure:"commitment"`
	SubmitTimeout  time.Duration `mapstructure:"submit_timeout"`
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout"`
	ConfirmPoll    time.Duration `mapstructure:"confirm_poll"`
}

type BackendConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	APIKey        string        `mapstructure:"api_key"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
	RetryBackoff  time.Duration `mapstructure:"retry_backoff"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type MonitorConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	HealthInterval     time.Duration `mapstructure:"health_interval"`
	DedupTTL           time.Duration `mapstructure:"dedup_ttl"`
	NotifyMaxAttempts  int           `mapstructure:"notify_max_attempts"`
	NotifyBackoff      time.Duration `mapstructure:"notify_backoff"`
	ResubscribeBackoff time.Duration `mapstructure:"resubscribe_backoff"`
}

type WebhookConfig struct {
	URL    string `mapstructure:"url"`    // empty = webhook dispatch disabled
	Secret string `mapstructure:"secret"` // HMAC key for payload signatures
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: AXB_ (Aurex Bridge).
// Nested keys use underscore: AXB_LEDGER_RPC_URL, AXB_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("ledger.rpc_url", "http://localhost:8899")
	v.SetDefault("ledger.ws_url", "ws://localhost:8900")
	v.SetDefault("ledger.program_id", "")
	v.SetDefault("ledger.commitment", "confirmed")
	v.SetDefault("ledger.submit_timeout", "15s")
	v.SetDefault("ledger.confirm_timeout", "45s")
	v.SetDefault("ledger.confirm_poll", "500ms")
	v.SetDefault("backend.base_url", "http://localhost:4000")
	v.SetDefault("backend.api_key", "")
	v.SetDefault("backend.timeout", "10s")
	v.SetDefault("backend.retry_attempts", 3)
	v.SetDefault("backend.retry_backoff", "250ms")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("monitor.enabled", true)
	v.SetDefault("monitor.health_interval", "30s")
	v.SetDefault("monitor.dedup_ttl", "24h")
	v.SetDefault("monitor.notify_max_attempts", 5)
	v.SetDefault("monitor.notify_backoff", "500ms")
	v.SetDefault("monitor.resubscribe_backoff", "2s")
	v.SetDefault("webhook.url", "")
	v.SetDefault("webhook.secret", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "aurex-backend")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: AXB_LEDGER_RPC_URL -> ledger.rpc_url
	v.SetEnvPrefix("AXB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars alone are enough.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
