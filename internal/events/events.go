// Package events publishes order lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"oss-kar/internal/model"

	"github.com/rs/zerolog"
)

// RoutingKeyOrderPlaced is the routing key of order placement events.
const RoutingKeyOrderPlaced = "order.placed"

// Publisher delivers order events to interested consumers.
type Publisher interface {
	// PublishOrderPlaced announces a committed order.
	PublishOrderPlaced(ctx context.Context, event model.OrderPlacedEvent) error

	// Close releases resources held by the publisher.
	Close() error
}

// nopPublisher drops every event.
type nopPublisher struct {
	logger zerolog.Logger
}

// NewNopPublisher returns a Publisher that only logs at debug level.
func NewNopPublisher(logger zerolog.Logger) Publisher {
	return &nopPublisher{
		logger: logger.With().Str("component", "nop-publisher").Logger(),
	}
}

func (p *nopPublisher) PublishOrderPlaced(_ context.Context, event model.OrderPlacedEvent) error {
	p.logger.Debug().Int64("order_id", event.OrderID).Msg("order event dropped (publishing disabled)")
	return nil
}

func (p *nopPublisher) Close() error {
	return nil
}

// encode serializes an event body.
func encode(event model.OrderPlacedEvent) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order event: %w", err)
	}
	return body, nil
}
