package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, ParseBrokers(" k1:9092, ,k2:9092 "))
	assert.Nil(t, ParseBrokers(""))
}

func TestKafkaProducer_PublishOrderCreated(t *testing.T) {
	ctx := context.Background()
	eventTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, nil)
		defer sp.Close()

		sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var evt OrderCreatedEvent
			if err := json.Unmarshal(val, &evt); err != nil {
				return err
			}
			if evt.OrderID != "o1" || evt.TotalAmount != 105 || !evt.EventTime.Equal(eventTime) {
				return errors.New("unexpected event payload")
			}
			return nil
		})

		p := NewKafkaProducerWith(sp, "")
		p.now = func() time.Time { return eventTime }

		err := p.PublishOrderCreated(ctx, OrderCreatedEvent{OrderID: "o1", OrderNumber: "ORD-1", TotalAmount: 105})
		assert.NoError(t, err)
		assert.Equal(t, DefaultOrderCreatedTopic, p.topic)
	})

	t.Run("Broker error", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, nil)
		defer sp.Close()
		sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		p := NewKafkaProducerWith(sp, "orders")
		err := p.PublishOrderCreated(ctx, OrderCreatedEvent{OrderID: "o1"})
		require.Error(t, err)
		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	})
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.PublishOrderCreated(context.Background(), OrderCreatedEvent{OrderID: "o1"}))
	assert.NoError(t, p.Close())
}
