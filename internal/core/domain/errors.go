package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")

	// ErrHasAttendees blocks account deletion while attendee records
	// reference the account; only an Admin may force past it.
	ErrHasAttendees = errors.New("account has attendee registrations; only an administrator can force delete it")
)

// NotFoundError carries the resource kind and id so handlers can render
// "<Resource> with ID <id> not found" without string plumbing.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// UpstreamError is a non-success envelope or transport failure from the CRM.
// Status holds the CRM-reported status code when present, zero otherwise.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("crm: %s (status %d)", e.Message, e.Status)
	}
	return "crm: " + e.Message
}
