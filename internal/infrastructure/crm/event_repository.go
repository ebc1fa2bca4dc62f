package crm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gatherly/events-api/internal/core/domain"
)

const eventsPath = "/events"

// EventRepository implements ports.EventRepository against the org's
// custom events resource.
type EventRepository struct {
	client *Client
}

func NewEventRepository(client *Client) *EventRepository {
	return &EventRepository{client: client}
}

// sfEvent mirrors the Event__c schema.
type sfEvent struct {
	ID          string    `json:"Id,omitempty"`
	Name        string    `json:"Name"`
	StartDate   time.Time `json:"startDate__c"`
	EndDate     time.Time `json:"endDate__c"`
	Description string    `json:"Description__c,omitempty"`
	Status      string    `json:"Status__c"`
	Capacity    *int      `json:"Capacity__c,omitempty"`
	Location    string    `json:"Location__c,omitempty"`
	OwnerID     string    `json:"Custom_Users__c"`
}

func (e sfEvent) toDomain() domain.Event {
	return domain.Event{
		ID:          e.ID,
		Name:        e.Name,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		Status:      domain.EventStatus(e.Status),
		Capacity:    e.Capacity,
		Location:    e.Location,
		OwnerID:     e.OwnerID,
	}
}

func toSFEvent(e *domain.Event) sfEvent {
	return sfEvent{
		ID:          e.ID,
		Name:        e.Name,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		Status:      string(e.Status),
		Capacity:    e.Capacity,
		Location:    e.Location,
		OwnerID:     e.OwnerID,
	}
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	data, err := r.client.do(ctx, http.MethodGet, eventsPath, "", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var records []sfEvent
	if err := decodeData(data, &records); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	events := make([]domain.Event, len(records))
	for i, rec := range records {
		events[i] = rec.toDomain()
	}
	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	data, err := r.client.do(ctx, http.MethodGet, eventsPath+"/"+id, "", nil, http.StatusOK)
	if err != nil {
		return nil, translateNotFound(err, "Event", id)
	}

	var rec sfEvent
	if err := decodeData(data, &rec); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	event := rec.toDomain()
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, actorID string, event *domain.Event) (*domain.Event, error) {
	data, err := r.client.do(ctx, http.MethodPost, eventsPath, actorID, toSFEvent(event), http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var rec sfEvent
	if err := decodeData(data, &rec); err != nil {
		return nil, fmt.Errorf("decode created event: %w", err)
	}
	created := rec.toDomain()
	return &created, nil
}

func (r *EventRepository) Update(ctx context.Context, actorID string, event *domain.Event) (*domain.Event, error) {
	data, err := r.client.do(ctx, http.MethodPut, eventsPath+"/"+event.ID, actorID, toSFEvent(event), http.StatusOK)
	if err != nil {
		return nil, translateNotFound(err, "Event", event.ID)
	}

	var rec sfEvent
	if err := decodeData(data, &rec); err != nil {
		return nil, fmt.Errorf("decode updated event: %w", err)
	}
	updated := rec.toDomain()
	return &updated, nil
}

func (r *EventRepository) Delete(ctx context.Context, actorID, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, eventsPath+"/"+id, actorID, nil, http.StatusOK)
	return translateNotFound(err, "Event", id)
}
