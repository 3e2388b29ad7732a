package events

import "errors"

var (
	ErrConnect = errors.New("events.publisher: failed to connect to broker")
	ErrPublish = errors.New("events.publisher: failed to publish event")
)
