// Package events implementa el publicador de eventos de dominio sobre Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appevents "github.com/jhoicas/Compras-api/internal/application/events"
	"github.com/segmentio/kafka-go"
)

var _ appevents.Publisher = (*KafkaPublisher)(nil)

// KafkaPublisher publica eventos JSON en un topic, particionando por key.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher construye el publicador para los brokers y topic dados.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			WriteTimeout: 5 * time.Second,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

// Publish serializa el evento y lo escribe en el topic.
func (p *KafkaPublisher) Publish(ctx context.Context, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serializar evento: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

// Close cierra el writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
