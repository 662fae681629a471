package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kgo "github.com/segmentio/kafka-go"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

// KafkaPublisher writes post events as JSON, keyed by post id so every event
// for one post lands on the same partition in order.
type KafkaPublisher struct {
	w *kgo.Writer
}

// NewKafkaPublisher creates a writer for the given brokers and topic. Writes
// are synchronous; wrap it in an AsyncPublisher to keep them off the request
// path.
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher: no brokers configured")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka publisher: no topic configured")
	}
	w := &kgo.Writer{
		Addr:                   kgo.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kgo.Hash{},
		RequiredAcks:           kgo.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		MaxAttempts:            3,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{w: w}, nil
}

var _ contract.IEventPublisher = (*KafkaPublisher)(nil)

func (p *KafkaPublisher) Publish(ctx context.Context, event entity.PostEvent) error {
	msg, err := toMessage(event)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error { return p.w.Close() }

func toMessage(event entity.PostEvent) (kgo.Message, error) {
	b, err := json.Marshal(event)
	if err != nil {
		return kgo.Message{}, fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	return kgo.Message{
		Key:   []byte(event.PostID),
		Value: b,
		Time:  event.OccurredAt,
		Headers: []kgo.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}, nil
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

var _ contract.IEventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, entity.PostEvent) error { return nil }
func (NoopPublisher) Close() error                                     { return nil }
