package publisher

import (
	"time"

	"github.com/Shopify/sarama"
)

// Short network timeouts so a broker outage cannot stall a ledger write.
const kafkaNetTimeout = 2 * time.Second

type Option func(*sarama.Config)

func WithRequiredAcks(acks sarama.RequiredAcks) Option {
	return func(cfg *sarama.Config) {
		cfg.Producer.RequiredAcks = acks
	}
}

func NewKafkaSyncProducer(brokers []string, opts ...Option) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.Timeout = kafkaNetTimeout
	cfg.Net.DialTimeout = kafkaNetTimeout
	cfg.Net.ReadTimeout = kafkaNetTimeout
	cfg.Net.WriteTimeout = kafkaNetTimeout

	for _, opt := range opts {
		opt(cfg)
	}

	return sarama.NewSyncProducer(brokers, cfg)
}
