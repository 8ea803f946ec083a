// Package amqpadapter announces logged plays on a RabbitMQ exchange.
package amqpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"movo-ads/internal/config/configs"
	"movo-ads/internal/core/domain"
)

const publishTimeout = 5 * time.Second

// publisher is the part of *amqp.Channel used to send messages.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// playEvent is the ad.played message body.
type playEvent struct {
	Event      string    `json:"event"`
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	DriverID   string    `json:"driver_id"`
	PlayedAt   time.Time `json:"played_at"`
}

// PlayPublisher implements port.PlayEventPublisher.
type PlayPublisher struct {
	ch         publisher
	exchange   string
	routingKey string
	closeFn    func()
}

// NewPlayPublisher wraps an open channel. Exchange declaration is the
// caller's job; Dial does it.
func NewPlayPublisher(ch publisher, cfg configs.MQ) *PlayPublisher {
	return &PlayPublisher{ch: ch, exchange: cfg.Exchange, routingKey: cfg.RoutingKey, closeFn: func() {}}
}

// Dial connects to the broker, declares the durable topic exchange and
// returns a publisher on it. Close releases the connection.
func Dial(cfg configs.MQ, logger *slog.Logger) (*PlayPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err = ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}
	logger.Info("rabbitmq connected", slog.String("exchange", cfg.Exchange))

	p := NewPlayPublisher(ch, cfg)
	p.closeFn = func() {
		_ = ch.Close()
		_ = conn.Close()
	}
	return p, nil
}

// PublishPlay sends one persistent ad.played message. The play id doubles as
// the message id so consumers can deduplicate.
func (p *PlayPublisher) PublishPlay(ctx context.Context, entry domain.PlayLogEntry) error {
	body, err := json.Marshal(playEvent{
		Event:      p.routingKey,
		ID:         entry.ID,
		CampaignID: entry.CampaignID,
		DriverID:   entry.DriverID,
		PlayedAt:   entry.PlayedAt,
	})
	if err != nil {
		return err
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	return p.ch.PublishWithContext(
		publishCtx,
		p.exchange,
		p.routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    entry.ID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
}

func (p *PlayPublisher) Close() { p.closeFn() }
