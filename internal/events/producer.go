package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pcstore-be/internal/logger"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const DefaultOrderCreatedTopic = "order.created"

type OrderCreatedEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	CustomerID  string    `json:"customer_id"`
	ItemCount   int       `json:"item_count"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
	EventTime   time.Time `json:"event_time"`
}

// Publisher announces domain events to other systems.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error
	Close() error
}

type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
	now      func() time.Time
}

// ParseBrokers splits a comma separated KAFKA_BROKERS value.
func ParseBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func NewKafkaProducer(brokers []string, topic string) (*KafkaProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return NewKafkaProducerWith(producer, topic), nil
}

// NewKafkaProducerWith wraps an existing producer, such as a sarama mock.
func NewKafkaProducerWith(producer sarama.SyncProducer, topic string) *KafkaProducer {
	if topic == "" {
		topic = DefaultOrderCreatedTopic
	}
	return &KafkaProducer{producer: producer, topic: topic, now: time.Now}
}

func (p *KafkaProducer) PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error {
	event.EventTime = p.now()

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send %s: %w", p.topic, err)
	}

	logger.FromCtx(ctx).Info("event published to kafka",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.String("order_id", event.OrderID),
	)
	return nil
}

func (p *KafkaProducer) Close() error {
	return p.producer.Close()
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error {
	logger.FromCtx(ctx).Debug("event publishing disabled", zap.String("order_id", event.OrderID))
	return nil
}

func (NopPublisher) Close() error { return nil }
