package notify

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const dialTimeout = 10 * time.Second

// Channel is the part of *amqp.Channel used for publishing.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPNotifier publishes notifications to a durable topic exchange, routed by kind.
type AMQPNotifier struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
}

func DialAMQP(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	n, err := NewAMQPNotifier(ch, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	n.conn = conn
	return n, nil
}

func NewAMQPNotifier(ch Channel, exchange string) (*AMQPNotifier, error) {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &AMQPNotifier{
		channel:  ch,
		exchange: exchange,
	}, nil
}

func (a *AMQPNotifier) Notify(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	err = a.channel.PublishWithContext(ctx, a.exchange, string(n.Kind), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    n.RequestID.String(),
		Timestamp:    n.SentAt,
		Body:         body,
	})
	if err != nil {
		zap.L().Error("failed to publish notification", zap.Error(err), zap.String("exchange", a.exchange))
		return err
	}
	return nil
}

func (a *AMQPNotifier) Close() {
	if err := a.channel.Close(); err != nil {
		zap.L().Warn("failed to close amqp channel", zap.Error(err))
	}
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			zap.L().Warn("failed to close amqp connection", zap.Error(err))
		}
	}
}
