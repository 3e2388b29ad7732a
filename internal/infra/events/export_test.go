package events

import "time"

// NewDisconnectedPublisher издатель без соединения: первое подключение произойдёт в Publish
func NewDisconnectedPublisher(url, queue string, logger Logger, now func() time.Time) *AMQPPublisher {
	return &AMQPPublisher{url: url, queue: queue, logger: logger, now: now}
}
