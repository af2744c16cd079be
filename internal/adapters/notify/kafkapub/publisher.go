// Package kafkapub publica los cambios de la tabla acts en un topic de Kafka.
package kafkapub

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"pet-activity-log/internal/domain/acts"
	"pet-activity-log/internal/platform/logger"
)

// ActChanged es el payload publicado por cada mutación.
type ActChanged struct {
	EventID    string        `json:"event_id"`
	Op         acts.ChangeOp `json:"op"`
	OccurredAt time.Time     `json:"occurred_at"`
	Act        actPayload    `json:"act"`
}

type actPayload struct {
	ID   int64     `json:"id"`
	Time time.Time `json:"time"`
	Type acts.Type `json:"type"`
	Text string    `json:"text"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implementa acts.Notifier. Las escrituras son async: un broker lento no frena la API.
type Publisher struct {
	writer messageWriter
	log    logger.Logger
}

func NewPublisher(brokers []string, topic string, log logger.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				log.Warn("kafka publish failed", map[string]any{"err": err, "messages": len(msgs)})
			}
		},
	}
	return &Publisher{writer: w, log: log}
}

func (p *Publisher) Notify(ctx context.Context, c acts.Change) {
	msg, err := buildMessage(c, uuid.NewString())
	if err != nil {
		p.log.Error("kafka encode failed", map[string]any{"err": err, "id": c.Act.ID})
		return
	}
	// El ctx del request se cancela al responder; el writer async no debe depender de él.
	if err := p.writer.WriteMessages(context.WithoutCancel(ctx), msg); err != nil {
		p.log.Warn("kafka enqueue failed", map[string]any{"err": err, "id": c.Act.ID})
	}
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func buildMessage(c acts.Change, eventID string) (kafka.Message, error) {
	body, err := json.Marshal(ActChanged{
		EventID:    eventID,
		Op:         c.Op,
		OccurredAt: c.At.UTC(),
		Act: actPayload{
			ID:   c.Act.ID,
			Time: c.Act.Time.UTC(),
			Type: c.Act.Type,
			Text: c.Act.Text,
		},
	})
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(c.Act.ID, 10)),
		Value: body,
		Time:  c.At,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(eventID)},
			{Key: "op", Value: []byte(c.Op)},
		},
	}, nil
}
