package repository

import (
	"context"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

// EventPublisher 도메인 이벤트 발행
type EventPublisher interface {
	Publish(ctx context.Context, event entity.Event) error
}
