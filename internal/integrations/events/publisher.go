package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher отправляет события изменения отпусков в Kafka
// Ключ сообщения - идентификатор отпуска, поэтому события одного отпуска идут в одну партицию по порядку
type Publisher struct {
	writer messageWriter
	topic  string
	logger Logger

	mu     sync.RWMutex
	closed bool
}

// NewPublisher создает Kafka publisher
func NewPublisher(brokers []string, topic string, batchTimeout time.Duration, logger Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: batchTimeout,
		Logger:       kafka.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger:  kafka.LoggerFunc(logger.Error),
	}

	return newPublisher(writer, topic, logger), nil
}

func newPublisher(writer messageWriter, topic string, logger Logger) *Publisher {
	return &Publisher{
		writer: writer,
		topic:  topic,
		logger: logger,
	}
}

// Publish отправляет событие
func (p *Publisher) Publish(ctx context.Context, event HolidayEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	msg, err := buildMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: Publish - write %s: %v", ErrPublish, event.Type, err)
	}

	p.logger.Info("Event published: type=%s, holiday_id=%s, topic=%s", event.Type, event.Holiday.HolidayID, p.topic)
	return nil
}

// Close закрывает writer, повторные вызовы безопасны
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

func buildMessage(event HolidayEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return kafka.Message{
		Key:   []byte(event.Holiday.HolidayID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}

// NoopPublisher используется, когда публикация событий выключена
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, HolidayEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
