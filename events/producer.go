package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"supermock/config"
	"supermock/utils"
)

// Publisher emits booking lifecycle events for downstream consumers
// (analytics, CRM sync). Publishing is best-effort: a broker outage never
// fails the triggering request.
type Publisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
	Close() error
}

// KafkaPublisher writes events to a single topic, hash-balanced by slot ID so
// events for one slot stay ordered.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewPublisher returns a Kafka-backed publisher, or a no-op one when no
// brokers are configured.
func NewPublisher() Publisher {
	brokers := strings.Split(config.AppConfig.KafkaBrokers, ",")
	if config.AppConfig.KafkaBrokers == "" || len(brokers) == 0 {
		utils.GetLogger().Info("events: no kafka brokers configured, event publishing disabled")
		return &NoopPublisher{}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        config.AppConfig.KafkaBookingTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			utils.GetLogger().Sugar().Errorf("events: "+msg, args...)
		}),
	}
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) PublishBookingEvent(ctx context.Context, event BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: failed to marshal booking event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.SlotID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		utils.GetLogger().Error("events: failed to publish booking event",
			zap.String("type", event.Type),
			zap.String("bookingId", event.BookingID),
			zap.Error(err))
		return err
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher discards all events.
type NoopPublisher struct{}

func (p *NoopPublisher) PublishBookingEvent(ctx context.Context, event BookingEvent) error {
	return nil
}

func (p *NoopPublisher) Close() error { return nil }
