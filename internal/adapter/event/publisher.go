// Package event publishes domain events to the message bus.
package event

import (
	"context"
	"fmt"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	"github.com/wekeepgrowing/project-planner/pkg/messaging"
)

// Publisher sends events as JSON on a single channel.
type Publisher struct {
	bus     messaging.Publisher
	channel string
}

func NewPublisher(bus messaging.Publisher, channel string) *Publisher {
	return &Publisher{bus: bus, channel: channel}
}

func (p *Publisher) Publish(ctx context.Context, event entity.Event) error {
	if err := p.bus.Publish(ctx, p.channel, event); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}
