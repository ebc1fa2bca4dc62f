package ports

import (
	"context"

	"github.com/gatherly/events-api/internal/core/domain"
)

// AttendeeRepository is the CRM-backed registration store.
type AttendeeRepository interface {
	ListByEvent(ctx context.Context, eventID string) ([]domain.Attendee, error)
	FindByID(ctx context.Context, id string) (*domain.Attendee, error)
	Create(ctx context.Context, actorID string, attendee *domain.Attendee) (*domain.Attendee, error)
	// Cancel flips the registration status to Cancelled; the record stays.
	Cancel(ctx context.Context, actorID, id string) (*domain.Attendee, error)
	Delete(ctx context.Context, actorID, id string) error
}
