package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gatherly/events-api/internal/core/domain"
	"github.com/gatherly/events-api/internal/core/ports"
)

type stubAttendeeRepo struct {
	attendees map[string]*domain.Attendee
	calls     int
	cancelled []string
	deleted   []string
}

func newStubAttendeeRepo(attendees ...*domain.Attendee) *stubAttendeeRepo {
	r := &stubAttendeeRepo{attendees: make(map[string]*domain.Attendee)}
	for _, a := range attendees {
		r.attendees[a.ID] = a
	}
	return r
}

func (r *stubAttendeeRepo) ListByEvent(_ context.Context, eventID string) ([]domain.Attendee, error) {
	r.calls++
	var out []domain.Attendee
	for _, a := range r.attendees {
		if a.EventID == eventID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAttendeeRepo) FindByID(_ context.Context, id string) (*domain.Attendee, error) {
	r.calls++
	if a, ok := r.attendees[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, &domain.NotFoundError{Resource: "Attendee", ID: id}
}

func (r *stubAttendeeRepo) Create(_ context.Context, _ string, attendee *domain.Attendee) (*domain.Attendee, error) {
	r.calls++
	clone := *attendee
	clone.ID = "a1"
	r.attendees[clone.ID] = &clone
	return &clone, nil
}

func (r *stubAttendeeRepo) Cancel(_ context.Context, _, id string) (*domain.Attendee, error) {
	r.calls++
	r.cancelled = append(r.cancelled, id)
	a := r.attendees[id]
	a.Status = domain.AttendeeCancelled
	clone := *a
	return &clone, nil
}

func (r *stubAttendeeRepo) Delete(_ context.Context, _, id string) error {
	r.calls++
	r.deleted = append(r.deleted, id)
	delete(r.attendees, id)
	return nil
}

func TestAttendeeService_Register_RejectsMalformedEmail(t *testing.T) {
	repo := newStubAttendeeRepo()
	svc := NewAttendeeService(repo, zerolog.Nop())
	caller := domain.Claims{UserID: "u1", Role: domain.RoleAttendee}

	for _, email := range []string{"", "annx.com", "ann@", "@x.com", "ann@xcom", "ann@x."} {
		_, err := svc.Register(context.Background(), caller, ports.RegisterAttendeeInput{
			Name: "Ann", Email: email, EventID: "e1",
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("email %q: expected ErrValidation, got %v", email, err)
		}
	}
	if repo.calls != 0 {
		t.Fatalf("expected no outbound call on malformed email, got %d", repo.calls)
	}
}

func TestAttendeeService_Register_Confirmed(t *testing.T) {
	repo := newStubAttendeeRepo()
	svc := NewAttendeeService(repo, zerolog.Nop())
	caller := domain.Claims{UserID: "u1", Role: domain.RoleAttendee}

	attendee, err := svc.Register(context.Background(), caller, ports.RegisterAttendeeInput{
		Name: "Ann", Email: "ann@x.com", EventID: "e1",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if attendee.Status != domain.AttendeeConfirmed {
		t.Fatalf("expected Confirmed, got %q", attendee.Status)
	}
	if attendee.UserID != "u1" {
		t.Fatalf("registration must record the caller, got %q", attendee.UserID)
	}
}

func TestAttendeeService_Cancel_OnlyRegistrantOrAdmin(t *testing.T) {
	repo := newStubAttendeeRepo(&domain.Attendee{ID: "a1", UserID: "u1", EventID: "e1", Status: domain.AttendeeConfirmed})
	svc := NewAttendeeService(repo, zerolog.Nop())

	// Someone else's registration.
	other := domain.Claims{UserID: "u2", Role: domain.RoleAttendee}
	if _, err := svc.Cancel(context.Background(), other, "a1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// The registering user.
	registrant := domain.Claims{UserID: "u1", Role: domain.RoleAttendee}
	cancelled, err := svc.Cancel(context.Background(), registrant, "a1")
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if cancelled.Status != domain.AttendeeCancelled {
		t.Fatalf("expected Cancelled, got %q", cancelled.Status)
	}
}

func TestAttendeeService_Cancel_AdminOverride(t *testing.T) {
	repo := newStubAttendeeRepo(&domain.Attendee{ID: "a1", UserID: "u1", Status: domain.AttendeeConfirmed})
	svc := NewAttendeeService(repo, zerolog.Nop())

	if _, err := svc.Cancel(context.Background(), domain.Claims{UserID: "adm", Role: domain.RoleAdmin}, "a1"); err != nil {
		t.Fatalf("admin cancel failed: %v", err)
	}
}

func TestAttendeeService_Cancel_NotFound(t *testing.T) {
	svc := NewAttendeeService(newStubAttendeeRepo(), zerolog.Nop())

	_, err := svc.Cancel(context.Background(), domain.Claims{UserID: "u1"}, "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestAttendeeService_Delete_Hard(t *testing.T) {
	repo := newStubAttendeeRepo(&domain.Attendee{ID: "a1", UserID: "u1"})
	svc := NewAttendeeService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "a1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "a1" {
		t.Fatalf("unexpected deletions: %v", repo.deleted)
	}
}
