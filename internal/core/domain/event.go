package domain

import "time"

// EventStatus represents the lifecycle state of an event.
type EventStatus string

const (
	EventScheduled  EventStatus = "Scheduled"
	EventInProgress EventStatus = "In Progress"
	EventCompleted  EventStatus = "Completed"
)

// Event is an event record owned by the CRM. OwnerID references the user
// who created it; only the owner (Organizer) or an Admin may mutate it.
type Event struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	Description string      `json:"description,omitempty"`
	Status      EventStatus `json:"status"`
	Capacity    *int        `json:"capacity,omitempty"`
	Location    string      `json:"location,omitempty"`
	OwnerID     string      `json:"ownerId"`
}

// OwnedBy reports whether userID created the event.
func (e *Event) OwnedBy(userID string) bool { return e.OwnerID == userID }
