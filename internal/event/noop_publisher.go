package event

import (
	"context"
	"log/slog"
)

// NoopPublisher is used when no broker is configured. It only logs.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopPublisher{logger: logger.With("component", "NoopPublisher")}
}

func (p *NoopPublisher) PublishCustomerCreated(ctx context.Context, event CustomerCreatedEvent) error {
	p.discard(ctx, RoutingKeyCustomerCreated, event.Payload.CustomerID)
	return nil
}

func (p *NoopPublisher) PublishCustomerUpdated(ctx context.Context, event CustomerUpdatedEvent) error {
	p.discard(ctx, RoutingKeyCustomerUpdated, event.Payload.CustomerID)
	return nil
}

func (p *NoopPublisher) PublishCustomerDeleted(ctx context.Context, event CustomerDeletedEvent) error {
	p.discard(ctx, RoutingKeyCustomerDeleted, event.Payload.CustomerID)
	return nil
}

func (p *NoopPublisher) discard(ctx context.Context, routingKey, customerID string) {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping event",
		slog.String("routingKey", routingKey), slog.String("customerID", customerID))
}

var _ EventPublisher = (*NoopPublisher)(nil)
