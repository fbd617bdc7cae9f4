package broker

import (
	"context"
	"log/slog"
	"time"

	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends outbox payloads to a durable topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(cfg config.BrokerConfig) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "declare exchange %s", cfg.Exchange)
	}
	slog.Info("メッセージブローカーに接続しました", "exchange", cfg.Exchange)
	return &Publisher{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey, messageID string, body []byte) error {
	err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return errs.Wrapf(err, "publish %s", routingKey)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
