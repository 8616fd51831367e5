package event

import (
	"context"
	"log/slog"
)

// NopPublisher drops every event. Used when RabbitMQ is disabled or unreachable.
type NopPublisher struct {
	logger *slog.Logger
}

var _ EventPublisher = (*NopPublisher)(nil)

func NewNopPublisher(logger *slog.Logger) *NopPublisher {
	return &NopPublisher{logger: logger.With("component", "NopPublisher")}
}

func (p *NopPublisher) drop(ctx context.Context, routingKey string) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping event", slog.String("routingKey", routingKey))
	return nil
}

func (p *NopPublisher) PublishCustomerCreated(ctx context.Context, _ CustomerCreatedEvent) error {
	return p.drop(ctx, routingKeyCustomerCreated)
}

func (p *NopPublisher) PublishCustomerUpdated(ctx context.Context, _ CustomerUpdatedEvent) error {
	return p.drop(ctx, routingKeyCustomerUpdated)
}

func (p *NopPublisher) PublishCustomerDeleted(ctx context.Context, _ CustomerDeletedEvent) error {
	return p.drop(ctx, routingKeyCustomerDeleted)
}

func (p *NopPublisher) PublishCreditCreated(ctx context.Context, _ CreditCreatedEvent) error {
	return p.drop(ctx, routingKeyCreditCreated)
}
