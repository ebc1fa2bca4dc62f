package domain

import "time"

// AttendeeStatus represents the registration state of an attendee record.
// Cancellation is a status transition, not a deletion.
type AttendeeStatus string

const (
	AttendeeConfirmed AttendeeStatus = "Confirmed"
	AttendeeCancelled AttendeeStatus = "Cancelled"
)

// Attendee is a registration of a user against an event.
type Attendee struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	EventID   string         `json:"eventId"`
	UserID    string         `json:"userId"`
	Status    AttendeeStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}
