package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/styleseat/satchless/internal/event"
)

// StatusChangedEvent is the wire contract published for each transition.
type StatusChangedEvent struct {
	EventID    string    `json:"event_id"`
	OrderID    int64     `json:"order_id"`
	Token      string    `json:"token"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KafkaSink forwards status changes to a Kafka topic, keyed by order
// token so one order's transitions stay in partition order. Delivery
// failures are logged, never propagated — the status write already
// committed.
type KafkaSink struct {
	writer *kafka.Writer
	log    *slog.Logger
}

func NewKafkaSink(brokers []string, topic string, log *slog.Logger) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		log: log,
	}
}

func (s *KafkaSink) OrderStatusChanged(ctx context.Context, change event.StatusChange) {
	evt := StatusChangedEvent{
		EventID:    uuid.NewString(),
		OrderID:    change.Order.ID,
		Token:      change.Order.Token,
		OldStatus:  string(change.OldStatus),
		NewStatus:  string(change.Order.Status),
		OccurredAt: time.Now().UTC(),
	}
	data, err := json.Marshal(evt)
	if err != nil {
		s.log.Error("marshal status event", "order_id", evt.OrderID, "err", err)
		return
	}
	msg := kafka.Message{Key: []byte(change.Order.Token), Value: data, Time: evt.OccurredAt}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		s.log.Error("publish status event", "order_id", evt.OrderID, "err", err)
	}
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
