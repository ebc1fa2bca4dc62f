package ports

import (
	"context"
	"time"

	"github.com/gatherly/events-api/internal/core/domain"
)

// EventInput is the DTO passed from the transport layer for event mutations.
type EventInput struct {
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Description string
	Status      string
	Capacity    *int
	Location    string
}

// EventService implements event CRUD with ownership enforcement.
type EventService interface {
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, caller domain.Claims, in EventInput) (*domain.Event, error)
	Update(ctx context.Context, caller domain.Claims, id string, in EventInput) (*domain.Event, error)
	Delete(ctx context.Context, caller domain.Claims, id string) error
}
