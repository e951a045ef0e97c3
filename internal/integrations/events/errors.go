package events

import "errors"

var (
	// ErrPublish возвращается, когда событие не удалось отправить в Kafka
	ErrPublish = errors.New("events: failed to publish event")

	// ErrEncode возвращается, когда событие не удалось сериализовать
	ErrEncode = errors.New("events: failed to encode event")

	// ErrPublisherClosed возвращается при публикации после Close
	ErrPublisherClosed = errors.New("events: publisher is closed")

	// ErrNoBrokers возвращается, когда список брокеров пуст
	ErrNoBrokers = errors.New("events: at least one broker is required")
)
