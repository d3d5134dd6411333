package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/odds-devig-service/internal/models"
	"github.com/cypherlabdev/odds-devig-service/internal/service"
)

// KafkaConsumer consumes raw market quotes from Kafka and devigs them
type KafkaConsumer struct {
	reader   *kafka.Reader
	devigger service.Devigger
	cache    service.Cache
	logger   zerolog.Logger
}

// KafkaConsumerConfig holds Kafka consumer configuration
type KafkaConsumerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "raw_market_odds"
	GroupID string   // e.g., "odds-devig"
}

// NewKafkaConsumer creates a new Kafka consumer
func NewKafkaConsumer(
	config KafkaConsumerConfig,
	devigger service.Devigger,
	cache service.Cache,
	logger zerolog.Logger,
) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1e3,  // 1KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return &KafkaConsumer{
		reader:   reader,
		devigger: devigger,
		cache:    cache,
		logger:   logger.With().Str("component", "kafka_consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group_id", c.reader.Config().GroupID).
		Msg("started consuming from Kafka")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("stopping Kafka consumer")
			return c.reader.Close()

		default:
			// Read message
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if err == context.Canceled {
					return nil
				}
				c.logger.Error().Err(err).Msg("failed to fetch message")
				continue
			}

			// Process message
			if err := c.processMessage(ctx, msg); err != nil {
				c.logger.Error().
					Err(err).
					Int64("offset", msg.Offset).
					Str("key", string(msg.Key)).
					Msg("failed to process message")
				// Don't commit if processing failed
				continue
			}

			// Commit message
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error().Err(err).Msg("failed to commit message")
			}
		}
	}
}

// processMessage processes a single Kafka message
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	// Parse message
	var kafkaMsg models.KafkaMarketQuotesMessage
	if err := json.Unmarshal(msg.Value, &kafkaMsg); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	c.logger.Debug().
		Int("quote_count", len(kafkaMsg.Quotes)).
		Str("batch_id", kafkaMsg.BatchID).
		Msg("processing market quote batch")

	// Convert to pointers
	quotes := make([]*models.MarketQuote, len(kafkaMsg.Quotes))
	for i := range kafkaMsg.Quotes {
		quotes[i] = &kafkaMsg.Quotes[i]
	}

	// Remove the overround
	results, err := c.devigger.DevigBatch(quotes)
	if err != nil {
		return fmt.Errorf("failed to devig quotes: %w", err)
	}

	// Cache fair prices in Redis
	if err := c.cache.SetBatch(ctx, results); err != nil {
		return fmt.Errorf("failed to cache devig results: %w", err)
	}

	c.logger.Info().
		Int("input_count", len(quotes)).
		Int("output_count", len(results)).
		Str("batch_id", kafkaMsg.BatchID).
		Msg("processed and cached devigged markets")

	return nil
}

// Close closes the Kafka reader
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
