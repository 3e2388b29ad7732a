package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const (
	dialTimeout       = 3 * time.Second
	reconnectCooldown = 5 * time.Second
	heartbeat         = 10 * time.Second
)

// AMQPPublisher публикует события в durable-очередь через default exchange
type AMQPPublisher struct {
	url    string
	queue  string
	logger Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
	// до этого момента повторный dial не делается, Publish сразу возвращает ErrConnect
	retryAfter time.Time
	now        func() time.Time
}

// NewAMQPPublisher подключается к брокеру и объявляет очередь
func NewAMQPPublisher(url, queue string, logger Logger) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url, queue: queue, logger: logger, now: time.Now}
	if err := p.connect(context.Background()); err != nil {
		return nil, err
	}
	return p, nil
}

// connect устанавливает соединение; dial ограничен dialTimeout и дедлайном ctx
func (p *AMQPPublisher) connect(ctx context.Context) error {
	timeout := dialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return fmt.Errorf("%w: dial: %v", ErrConnect, context.DeadlineExceeded)
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: heartbeat,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	p.conn = conn
	if err := p.openChannel(); err != nil {
		_ = conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

// openChannel открывает канал на текущем соединении и объявляет очередь
func (p *AMQPPublisher) openChannel() error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		_ = ch.Close()
		return fmt.Errorf("%w: declare queue %s: %v", ErrConnect, p.queue, err)
	}

	p.ch = ch
	return nil
}

// ensureChannel восстанавливает соединение или только канал, если брокер закрыл его отдельно
func (p *AMQPPublisher) ensureChannel(ctx context.Context) error {
	connOpen := p.conn != nil && !p.conn.IsClosed()
	chOpen := p.ch != nil && !p.ch.IsClosed()

	switch {
	case connOpen && chOpen:
		return nil
	case connOpen:
		p.logger.Warn("Events: broker channel closed, reopening")
		return p.openChannel()
	}

	if p.now().Before(p.retryAfter) {
		return fmt.Errorf("%w: broker unavailable, next attempt after %s", ErrConnect, p.retryAfter.Format(time.RFC3339))
	}

	p.logger.Warn("Events: broker connection lost, reconnecting")
	if err := p.connect(ctx); err != nil {
		p.retryAfter = p.now().Add(reconnectCooldown)
		return err
	}
	p.retryAfter = time.Time{}
	return nil
}

// Publish отправляет событие; при разорванном соединении или канале переподключается один раз
func (p *AMQPPublisher) Publish(ctx context.Context, event ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, event.Type, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(ctx); err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         event.Type,
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		msg,
	); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, event.Type, err)
	}

	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher используется, когда события выключены
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ReservationEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
