package notifications

import (
	"context"
	"fmt"
	"time"

	"skybook/pkg/logger"

	"github.com/IBM/sarama"
)

// Producer publishes outward collaborator events. Callers treat every
// publish as fire-and-forget: a broker failure is logged, never
// surfaced to the booking flow.
type Producer interface {
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error
	PublishRefundSettlement(ctx context.Context, settlement *RefundSettlement) error
	Close() error
}

const (
	defaultRetryMax  = 3
	defaultTimeoutMs = 10000
)

// ProducerConfig contains configuration for the Kafka producer
type ProducerConfig struct {
	Brokers           []string
	NotificationTopic string
	SettlementTopic   string
	RetryMax          int
	TimeoutMs         int
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
}

// NewKafkaProducer creates a sync producer with idempotent writes and
// hash partitioning on the booking reference, so one booking's events
// stay ordered within a partition.
func NewKafkaProducer(config *ProducerConfig) (Producer, error) {
	producer, err := sarama.NewSyncProducer(config.Brokers, newSaramaConfig(config))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{producer: producer, config: config}, nil
}

// newSaramaConfig translates ProducerConfig into a sarama config.
// Retry and timeout fall back to sane defaults when unset: the
// idempotent producer requires Retry.Max >= 1 and a positive timeout,
// so zero values would fail sarama's validation outright.
func newSaramaConfig(config *ProducerConfig) *sarama.Config {
	retryMax := config.RetryMax
	if retryMax <= 0 {
		retryMax = defaultRetryMax
	}
	timeoutMs := config.TimeoutMs
	if timeoutMs <= 0 {
		timeoutMs = defaultTimeoutMs
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = retryMax
	saramaConfig.Producer.Timeout = time.Duration(timeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner
	return saramaConfig
}

func (p *kafkaProducer) PublishBookingEvent(ctx context.Context, event *BookingEvent) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.config.NotificationTopic,
		Key:   sarama.StringEncoder(event.BookingRef),
		Value: sarama.ByteEncoder(messageBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	logger.GetDefault().InfoWithContext(ctx, "booking event published", map[string]interface{}{
		"topic":       p.config.NotificationTopic,
		"type":        string(event.Type),
		"booking_ref": event.BookingRef,
		"partition":   partition,
		"offset":      offset,
	})
	return nil
}

func (p *kafkaProducer) PublishRefundSettlement(ctx context.Context, settlement *RefundSettlement) error {
	messageBytes, err := settlement.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal refund settlement: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.config.SettlementTopic,
		Key:   sarama.StringEncoder(settlement.BookingRef),
		Value: sarama.ByteEncoder(messageBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(settlement.Type)},
		},
		Timestamp: settlement.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish refund settlement: %w", err)
	}

	logger.GetDefault().InfoWithContext(ctx, "refund settlement published", map[string]interface{}{
		"topic":         p.config.SettlementTopic,
		"booking_ref":   settlement.BookingRef,
		"refund_amount": settlement.RefundAmount,
		"partition":     partition,
		"offset":        offset,
	})
	return nil
}

func (p *kafkaProducer) Close() error {
	return p.producer.Close()
}

// noopProducer satisfies Producer when Kafka is disabled in config.
type noopProducer struct{}

func NewNoopProducer() Producer {
	return noopProducer{}
}

func (noopProducer) PublishBookingEvent(ctx context.Context, event *BookingEvent) error {
	return nil
}

func (noopProducer) PublishRefundSettlement(ctx context.Context, settlement *RefundSettlement) error {
	return nil
}

func (noopProducer) Close() error {
	return nil
}
