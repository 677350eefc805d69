package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/drying-index-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("loc-1"),
		Value:     []byte(`{"location":{"id":"loc-1"}}`),
		Topic:     "weather-observations",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte("openweathermap")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("loc-1"), raw.Key)
	assert.JSONEq(t, `{"location":{"id":"loc-1"}}`, string(raw.Value))
	assert.Equal(t, "weather-observations", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "openweathermap", raw.Headers["source"])
	assert.Nil(t, raw.Commit)
}

func TestMapOutputEventToMessage(t *testing.T) {
	processedAt := time.Date(2024, 7, 14, 9, 30, 0, 0, time.UTC).Format(time.RFC3339)
	event := domain.OutputEvent{
		Key:   []byte("loc-1"),
		Value: []byte(`{"location":{"id":"loc-1"}}`),
		Headers: map[string]string{
			"status":       domain.StatusOK,
			"processed_at": processedAt,
			"conditions":   domain.ConditionsGood,
		},
	}

	msg := mapOutputEventToMessage(event)

	assert.Equal(t, []byte("loc-1"), msg.Key)
	assert.Equal(t, event.Value, msg.Value)
	assert.Equal(t, []kafkago.Header{
		{Key: "conditions", Value: []byte(domain.ConditionsGood)},
		{Key: "processed_at", Value: []byte(processedAt)},
		{Key: "status", Value: []byte(domain.StatusOK)},
	}, msg.Headers)
}

func TestMapOutputEventToMessage_NoHeaders(t *testing.T) {
	msg := mapOutputEventToMessage(domain.OutputEvent{Key: []byte("k"), Value: []byte("{}")})
	assert.Empty(t, msg.Headers)
}
