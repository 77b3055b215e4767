package notifications

import (
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaramaConfig_MinimalConfigValidates(t *testing.T) {
	// Brokers and topics only, the way the router wires it.
	cfg := newSaramaConfig(&ProducerConfig{
		Brokers:           []string{"localhost:9092"},
		NotificationTopic: "booking-events",
		SettlementTopic:   "refund-settlements",
	})

	require.NoError(t, cfg.Validate())

	assert.Equal(t, defaultRetryMax, cfg.Producer.Retry.Max)
	assert.Equal(t, time.Duration(defaultTimeoutMs)*time.Millisecond, cfg.Producer.Timeout)
	assert.True(t, cfg.Producer.Idempotent)
	assert.Equal(t, 1, cfg.Net.MaxOpenRequests)
	assert.Equal(t, sarama.WaitForAll, cfg.Producer.RequiredAcks)
}

func TestNewSaramaConfig_ExplicitValuesKept(t *testing.T) {
	cfg := newSaramaConfig(&ProducerConfig{
		Brokers:   []string{"localhost:9092"},
		RetryMax:  7,
		TimeoutMs: 2500,
	})

	require.NoError(t, cfg.Validate())

	assert.Equal(t, 7, cfg.Producer.Retry.Max)
	assert.Equal(t, 2500*time.Millisecond, cfg.Producer.Timeout)
}
