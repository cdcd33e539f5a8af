package kafka

import (
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// IProducer defines the interface for publishing audit events.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	HealthCheck() error
	Close() error
}

// NewProducer creates a new synchronous Kafka producer.
func NewProducer(cfg Config) (IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.Timeout = 10 * time.Second
	config.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(cfg.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &producerImpl{producer: producer, topic: cfg.Topic}, nil
}
