package ports

import (
	"context"

	"github.com/gatherly/events-api/internal/core/domain"
)

// RegisterAttendeeInput carries the fields needed to register for an event.
type RegisterAttendeeInput struct {
	Name    string
	Email   string
	EventID string
}

// AttendeeService implements registration, cancellation, and removal.
type AttendeeService interface {
	Register(ctx context.Context, caller domain.Claims, in RegisterAttendeeInput) (*domain.Attendee, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Attendee, error)
	Cancel(ctx context.Context, caller domain.Claims, attendeeID string) (*domain.Attendee, error)
	Delete(ctx context.Context, attendeeID string) error
}
