package contract

import (
	"context"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

// IEventPublisher publishes committed post events to downstream consumers.
type IEventPublisher interface {
	Publish(ctx context.Context, event entity.PostEvent) error
	Close() error
}
