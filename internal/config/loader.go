package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads config.yaml from the given search paths, with every key
// overridable through WEAVR_SYNC_* environment variables.
func Load(searchPaths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if len(searchPaths) == 0 {
		searchPaths = []string{".", "./config", "/config"}
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("WEAVR_SYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// env-only setups run without a config file
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "go-weavr-sync")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http_port", 9570)
	v.SetDefault("app.graceful_timeout", "10s")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("weavr.timeout", "30s")
	v.SetDefault("weavr.retry_count", 0)
	v.SetDefault("weavr.retry_wait_time_ms", 200)

	v.SetDefault("recon.batch_size", 100)
	v.SetDefault("recon.max_sync_attempts", 5)

	v.SetDefault("exponential_backoff.max_backoff_time", "15s")
	v.SetDefault("exponential_backoff.backoff_multiplier", 1.5)
	v.SetDefault("exponential_backoff.max_retries", 3)

	v.SetDefault("webhook.dedup_ttl", "24h")
	v.SetDefault("message_broker.balance_logs_topic", "ledger-balance-logs")
}
