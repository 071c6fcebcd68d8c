package events

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"oss-kar/internal/model"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// channel is the subset of *amqp.Channel used for publishing.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// rabbitPublisher publishes events to a RabbitMQ topic exchange.
type rabbitPublisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	logger   zerolog.Logger
	mu       sync.Mutex
}

// NewRabbitPublisher dials RabbitMQ and declares a durable topic exchange.
func NewRabbitPublisher(url, exchange string, logger zerolog.Logger) (Publisher, error) {
	logger = logger.With().Str("component", "rabbitmq-publisher").Logger()

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	logger.Info().Str("exchange", exchange).Msg("RabbitMQ publisher initialised")

	return newRabbitPublisher(conn, ch, exchange, logger), nil
}

func newRabbitPublisher(conn *amqp.Connection, ch channel, exchange string, logger zerolog.Logger) *rabbitPublisher {
	return &rabbitPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}
}

// PublishOrderPlaced sends the event as a persistent JSON message.
func (p *rabbitPublisher) PublishOrderPlaced(ctx context.Context, event model.OrderPlacedEvent) error {
	body, err := encode(event)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ConfigID.String(),
		Timestamp:    time.Now().UTC(),
		Type:         RoutingKeyOrderPlaced,
		Headers: amqp.Table{
			"order_id": strconv.FormatInt(event.OrderID, 10),
		},
		Body: body,
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, p.exchange, RoutingKeyOrderPlaced, false, false, msg); err != nil {
		p.logger.Error().
			Err(err).
			Int64("order_id", event.OrderID).
			Msg("failed to publish order event")
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	p.logger.Debug().Int64("order_id", event.OrderID).Msg("order event published")

	return nil
}

// Close closes the channel and the connection.
func (p *rabbitPublisher) Close() error {
	var firstErr error
	if err := p.ch.Close(); err != nil {
		firstErr = err
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
