package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TemirB/bytebazaar/internal/pkg/retry"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source internal/notify/publisher.go -destination=internal/notify/publisher_mock_test.go -package=notify

type Publisher interface {
	Publish(ctx context.Context, ev OrderPlaced) error
	Close() error
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// LogPublisher writes events to the application log.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, ev OrderPlaced) error {
	p.logger.Info("Order placed with catalog prices; client-sent prices ignored",
		zap.String("event", ev.Type),
		zap.String("order_id", ev.OrderID),
		zap.Int("lines", len(ev.Lines)),
		zap.String("total", ev.Total.String()),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }

// KafkaPublisher sends events keyed by order id so all records for one order
// land on one partition.
type KafkaPublisher struct {
	writer Writer
	topic  string
}

func NewKafkaWriter(brokers []string, topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: false,
	}
}

func NewKafkaPublisher(writer Writer, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev OrderPlaced) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return retry.Permanent(fmt.Errorf("encode %s: %w", ev.Type, err))
	}
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(ev.OrderID),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "type", Value: []byte(ev.Type)},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
