package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gatherly/events-api/internal/core/domain"
	"github.com/gatherly/events-api/internal/core/ports"
)

// AttendeeService implements event registration and cancellation.
type AttendeeService struct {
	attendees ports.AttendeeRepository
	log       zerolog.Logger
}

func NewAttendeeService(attendees ports.AttendeeRepository, log zerolog.Logger) *AttendeeService {
	return &AttendeeService{attendees: attendees, log: log}
}

// Register creates a Confirmed registration for the caller. Malformed
// input is rejected before any outbound call.
func (s *AttendeeService) Register(ctx context.Context, caller domain.Claims, in ports.RegisterAttendeeInput) (*domain.Attendee, error) {
	if in.Name == "" || in.EventID == "" {
		return nil, fmt.Errorf("name and eventId are required: %w", domain.ErrValidation)
	}
	if !validEmail(in.Email) {
		return nil, fmt.Errorf("invalid email %q: %w", in.Email, domain.ErrValidation)
	}

	attendee, err := s.attendees.Create(ctx, caller.UserID, &domain.Attendee{
		Name:    in.Name,
		Email:   in.Email,
		EventID: in.EventID,
		UserID:  caller.UserID,
		Status:  domain.AttendeeConfirmed,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("attendee_id", attendee.ID).Str("event_id", in.EventID).Str("user_id", caller.UserID).Msg("attendee registered")
	return attendee, nil
}

func (s *AttendeeService) ListByEvent(ctx context.Context, eventID string) ([]domain.Attendee, error) {
	return s.attendees.ListByEvent(ctx, eventID)
}

// Cancel transitions a registration to Cancelled. Only the registering
// user or an Admin may cancel; the record itself is kept.
func (s *AttendeeService) Cancel(ctx context.Context, caller domain.Claims, attendeeID string) (*domain.Attendee, error) {
	attendee, err := s.attendees.FindByID(ctx, attendeeID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && attendee.UserID != caller.UserID {
		return nil, domain.ErrForbidden
	}
	return s.attendees.Cancel(ctx, caller.UserID, attendeeID)
}

// Delete removes the registration record outright.
func (s *AttendeeService) Delete(ctx context.Context, attendeeID string) error {
	return s.attendees.Delete(ctx, "", attendeeID)
}

// validEmail is a cheap shape check: something before the @, a domain with
// a dot after it. Real validation belongs to the CRM side.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domainPart := email[at+1:]
	dot := strings.Index(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}
