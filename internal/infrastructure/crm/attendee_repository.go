package crm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gatherly/events-api/internal/core/domain"
)

const attendeesPath = "/attendees"

// AttendeeRepository implements ports.AttendeeRepository against the org's
// custom attendees resource.
type AttendeeRepository struct {
	client *Client
}

func NewAttendeeRepository(client *Client) *AttendeeRepository {
	return &AttendeeRepository{client: client}
}

// sfAttendee mirrors the Attendee__c schema.
type sfAttendee struct {
	ID        string    `json:"Id,omitempty"`
	Name      string    `json:"Name"`
	Email     string    `json:"Email__c"`
	EventID   string    `json:"Event__c"`
	UserID    string    `json:"Custom_Users__c"`
	Status    string    `json:"Status__c"`
	CreatedAt time.Time `json:"CreatedDate,omitempty"`
}

func (a sfAttendee) toDomain() domain.Attendee {
	return domain.Attendee{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		EventID:   a.EventID,
		UserID:    a.UserID,
		Status:    domain.AttendeeStatus(a.Status),
		CreatedAt: a.CreatedAt,
	}
}

func (r *AttendeeRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Attendee, error) {
	path := eventsPath + "/" + eventID + attendeesPath
	data, err := r.client.do(ctx, http.MethodGet, path, "", nil, http.StatusOK)
	if err != nil {
		return nil, translateNotFound(err, "Event", eventID)
	}

	var records []sfAttendee
	if err := decodeData(data, &records); err != nil {
		return nil, fmt.Errorf("decode attendees: %w", err)
	}

	attendees := make([]domain.Attendee, len(records))
	for i, rec := range records {
		attendees[i] = rec.toDomain()
	}
	return attendees, nil
}

func (r *AttendeeRepository) FindByID(ctx context.Context, id string) (*domain.Attendee, error) {
	data, err := r.client.do(ctx, http.MethodGet, attendeesPath+"/"+id, "", nil, http.StatusOK)
	if err != nil {
		return nil, translateNotFound(err, "Attendee", id)
	}

	var rec sfAttendee
	if err := decodeData(data, &rec); err != nil {
		return nil, fmt.Errorf("decode attendee: %w", err)
	}
	attendee := rec.toDomain()
	return &attendee, nil
}

func (r *AttendeeRepository) Create(ctx context.Context, actorID string, attendee *domain.Attendee) (*domain.Attendee, error) {
	body := sfAttendee{
		Name:    attendee.Name,
		Email:   attendee.Email,
		EventID: attendee.EventID,
		UserID:  attendee.UserID,
		Status:  string(attendee.Status),
	}

	data, err := r.client.do(ctx, http.MethodPost, attendeesPath, actorID, body, http.StatusCreated)
	if err != nil {
		return nil, translateNotFound(err, "Event", attendee.EventID)
	}

	var rec sfAttendee
	if err := decodeData(data, &rec); err != nil {
		return nil, fmt.Errorf("decode created attendee: %w", err)
	}
	created := rec.toDomain()
	return &created, nil
}

// Cancel flips Status__c to Cancelled; the record itself stays.
func (r *AttendeeRepository) Cancel(ctx context.Context, actorID, id string) (*domain.Attendee, error) {
	body := map[string]string{"Status__c": string(domain.AttendeeCancelled)}
	data, err := r.client.do(ctx, http.MethodPut, attendeesPath+"/"+id, actorID, body, http.StatusOK)
	if err != nil {
		return nil, translateNotFound(err, "Attendee", id)
	}

	var rec sfAttendee
	if err := decodeData(data, &rec); err != nil {
		return nil, fmt.Errorf("decode cancelled attendee: %w", err)
	}
	cancelled := rec.toDomain()
	return &cancelled, nil
}

func (r *AttendeeRepository) Delete(ctx context.Context, actorID, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, attendeesPath+"/"+id, actorID, nil, http.StatusOK)
	return translateNotFound(err, "Attendee", id)
}
