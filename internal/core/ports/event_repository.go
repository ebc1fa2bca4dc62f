package ports

import (
	"context"

	"github.com/gatherly/events-api/internal/core/domain"
)

// EventRepository is the CRM-backed event store.
type EventRepository interface {
	List(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, actorID string, event *domain.Event) (*domain.Event, error)
	Update(ctx context.Context, actorID string, event *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, actorID, id string) error
}
