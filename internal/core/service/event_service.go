package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gatherly/events-api/internal/core/domain"
	"github.com/gatherly/events-api/internal/core/ports"
)

// ListCache abstracts the short-lived Redis cache for the public event list.
type ListCache interface {
	GetEvents(ctx context.Context) ([]domain.Event, bool, error)
	SetEvents(ctx context.Context, events []domain.Event) error
	Invalidate(ctx context.Context) error
}

// EventService implements event CRUD with ownership enforcement. All reads
// and writes go to the CRM; the only local state is the list cache.
type EventService struct {
	events ports.EventRepository
	cache  ListCache
	log    zerolog.Logger
}

func NewEventService(events ports.EventRepository, cache ListCache, log zerolog.Logger) *EventService {
	return &EventService{events: events, cache: cache, log: log}
}

// List returns all events, served from cache when fresh. Cache failures
// degrade to a direct CRM read.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	if s.cache != nil {
		events, hit, err := s.cache.GetEvents(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("event cache read failed, falling back to crm")
		} else if hit {
			return events, nil
		}
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetEvents(ctx, events); err != nil {
			s.log.Warn().Err(err).Msg("event cache write failed")
		}
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, caller domain.Claims, in ports.EventInput) (*domain.Event, error) {
	if err := validateDates(in); err != nil {
		return nil, err
	}

	status := domain.EventStatus(in.Status)
	if status == "" {
		status = domain.EventScheduled
	}

	created, err := s.events.Create(ctx, caller.UserID, &domain.Event{
		Name:        in.Name,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		Status:      status,
		Capacity:    in.Capacity,
		Location:    in.Location,
		OwnerID:     caller.UserID,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Str("event_id", created.ID).Str("owner_id", caller.UserID).Msg("event created")
	return created, nil
}

func (s *EventService) Update(ctx context.Context, caller domain.Claims, id string, in ports.EventInput) (*domain.Event, error) {
	if err := validateDates(in); err != nil {
		return nil, err
	}

	event, err := s.authorizeMutation(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	event.Name = in.Name
	event.StartDate = in.StartDate
	event.EndDate = in.EndDate
	event.Description = in.Description
	event.Capacity = in.Capacity
	event.Location = in.Location
	if in.Status != "" {
		event.Status = domain.EventStatus(in.Status)
	}

	updated, err := s.events.Update(ctx, caller.UserID, event)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *EventService) Delete(ctx context.Context, caller domain.Claims, id string) error {
	if _, err := s.authorizeMutation(ctx, caller, id); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, caller.UserID, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.Info().Str("event_id", id).Str("caller_id", caller.UserID).Msg("event deleted")
	return nil
}

// authorizeMutation fetches the event and enforces the ownership rule:
// Organizers may only mutate events they own, Admins bypass the check.
func (s *EventService) authorizeMutation(ctx context.Context, caller domain.Claims, id string) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && !event.OwnedBy(caller.UserID) {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func (s *EventService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("event cache invalidation failed")
	}
}

// validateDates enforces endDate > startDate before any CRM call.
func validateDates(in ports.EventInput) error {
	if !in.EndDate.After(in.StartDate) {
		return fmt.Errorf("endDate must be after startDate: %w", domain.ErrValidation)
	}
	return nil
}
