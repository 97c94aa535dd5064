package config

import (
	"time"
)

type (
	Config struct {
		App       App      `mapstructure:"app"`
		Postgres  Postgres `mapstructure:"postgres"`
		Redis     Redis    `mapstructure:"redis"`
		SecretKey string   `mapstructure:"secret_key"`

		NewRelicLicenseKey string `mapstructure:"new_relic_license_key"`

		Weavr              WeavrConfig              `mapstructure:"weavr"`
		MessageBroker      MessageBroker            `mapstructure:"message_broker"`
		Recon              ReconConfig              `mapstructure:"recon"`
		ExponentialBackoff ExponentialBackOffConfig `mapstructure:"exponential_backoff"`
		Webhook            WebhookConfig            `mapstructure:"webhook"`
	}

	App struct {
		Env             string        `mapstructure:"env"`
		HTTPPort        int           `mapstructure:"http_port"`
		GracefulTimeout time.Duration `mapstructure:"graceful_timeout"`
		Name            string        `mapstructure:"name"`
		LogLevel        string        `mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `mapstructure:"write"`
		Read  Database `mapstructure:"read"`
	}

	Database struct {
		Host              string `mapstructure:"host"`
		Port              string `mapstructure:"port"`
		User              string `mapstructure:"user"`
		Password          string `mapstructure:"password"`
		Name              string `mapstructure:"name"`
		Schema            string `mapstructure:"schema"`
		MaxOpenConnection int    `mapstructure:"max_open_connections"`
		MaxIdleConnection int    `mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		Db       int    `mapstructure:"db"`
	}

	// WeavrConfig configures the client for the remote system of record.
	WeavrConfig struct {
		BaseURL       string        `mapstructure:"base_url"`
		Timeout       time.Duration `mapstructure:"timeout"`
		RetryCount    int           `mapstructure:"retry_count"`
		RetryWaitTime int           `mapstructure:"retry_wait_time_ms"`

		// APIKey and AuthToken are the service-level credentials used by
		// background jobs. API callers may supply their own per request.
		APIKey    string `mapstructure:"api_key"`
		AuthToken string `mapstructure:"auth_token"`

		// ProfileID is the managed-account profile used on account creation.
		ProfileID string `mapstructure:"profile_id"`
		// ConsumerProfileID and CorporateProfileID are the identity profiles.
		ConsumerProfileID  string `mapstructure:"consumer_profile_id"`
		CorporateProfileID string `mapstructure:"corporate_profile_id"`
	}

	MessageBroker struct {
		Enabled          bool     `mapstructure:"enabled"`
		Brokers          []string `mapstructure:"brokers"`
		BalanceLogsTopic string   `mapstructure:"balance_logs_topic"`
	}

	// ReconConfig bounds the reconciliation sweep.
	ReconConfig struct {
		BatchSize int `mapstructure:"batch_size"`

		// MaxSyncAttempts is the ceiling of creation attempts per entity.
		// Entities at the ceiling are flagged for manual review and skipped.
		MaxSyncAttempts int `mapstructure:"max_sync_attempts"`
	}

	ExponentialBackOffConfig struct {
		MaxBackoffTime    time.Duration `mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `mapstructure:"backoff_multiplier"`
		MaxRetries        uint64        `mapstructure:"max_retries"`
	}

	WebhookConfig struct {
		// DedupTTL is how long processed event ids stay in the cache
		// fast-path. The storage unique constraint stays the source of truth.
		DedupTTL time.Duration `mapstructure:"dedup_ttl"`
	}
)

func (rc ReconConfig) BatchSizeOrDefault() int {
	if rc.BatchSize <= 0 {
		return 100
	}
	return rc.BatchSize
}

func (rc ReconConfig) MaxSyncAttemptsOrDefault() int {
	if rc.MaxSyncAttempts <= 0 {
		return 5
	}
	return rc.MaxSyncAttempts
}
