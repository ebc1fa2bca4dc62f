package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gatherly/events-api/internal/core/domain"
	"github.com/gatherly/events-api/internal/core/ports"
)

type stubEventService struct {
	createCalls int
	lastCaller  domain.Claims
	lastInput   ports.EventInput
	events      []domain.Event
	event       *domain.Event
	err         error
}

func (s *stubEventService) List(_ context.Context) ([]domain.Event, error) {
	return s.events, s.err
}

func (s *stubEventService) Get(_ context.Context, _ string) (*domain.Event, error) {
	return s.event, s.err
}

func (s *stubEventService) Create(_ context.Context, caller domain.Claims, in ports.EventInput) (*domain.Event, error) {
	s.createCalls++
	s.lastCaller = caller
	s.lastInput = in
	return s.event, s.err
}

func (s *stubEventService) Update(_ context.Context, caller domain.Claims, _ string, in ports.EventInput) (*domain.Event, error) {
	s.lastCaller = caller
	s.lastInput = in
	return s.event, s.err
}

func (s *stubEventService) Delete(_ context.Context, caller domain.Claims, _ string) error {
	s.lastCaller = caller
	return s.err
}

func TestEventHandlerList(t *testing.T) {
	svc := &stubEventService{events: []domain.Event{{ID: "e1", Name: "GopherCon"}}}
	h := NewEventHandler(svc)

	c, rec := newJSONContext(t, http.MethodGet, "/api/events", "")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool           `json:"success"`
		Data    []domain.Event `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Name != "GopherCon" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestEventHandlerGetNotFound(t *testing.T) {
	svc := &stubEventService{err: &domain.NotFoundError{Resource: "Event", ID: "abc"}}
	h := NewEventHandler(svc)

	c, _ := newJSONContext(t, http.MethodGet, "/api/events/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found error to propagate, got %v", err)
	}
}

func TestEventHandlerCreate(t *testing.T) {
	svc := &stubEventService{event: &domain.Event{ID: "e1", Name: "GopherCon", OwnerID: "u1"}}
	h := NewEventHandler(svc)

	body := `{"name":"GopherCon","startDate":"2026-10-01T09:00:00Z","endDate":"2026-10-02T17:00:00Z","location":"Denver"}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/events", body)
	authenticate(c, domain.Claims{UserID: "u1", Role: domain.RoleOrganizer})

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastCaller.UserID != "u1" {
		t.Fatalf("caller not forwarded: %+v", svc.lastCaller)
	}
	if !svc.lastInput.EndDate.After(svc.lastInput.StartDate) {
		t.Fatalf("dates mangled: %+v", svc.lastInput)
	}
}

func TestEventHandlerCreateValidation(t *testing.T) {
	start := time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC).Format(time.RFC3339)
	end := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC).Format(time.RFC3339)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"startDate":"2026-10-01T09:00:00Z","endDate":"2026-10-02T09:00:00Z"}`},
		{"end before start", `{"name":"X","startDate":"` + start + `","endDate":"` + end + `"}`},
		{"zero capacity", `{"name":"X","startDate":"2026-10-01T09:00:00Z","endDate":"2026-10-02T09:00:00Z","capacity":0}`},
		{"unknown status", `{"name":"X","startDate":"2026-10-01T09:00:00Z","endDate":"2026-10-02T09:00:00Z","status":"Done"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubEventService{}
			h := NewEventHandler(svc)
			c, _ := newJSONContext(t, http.MethodPost, "/api/events", tc.body)
			authenticate(c, domain.Claims{UserID: "u1", Role: domain.RoleOrganizer})

			err := h.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
			if svc.createCalls != 0 {
				t.Fatal("service called despite invalid payload")
			}
		})
	}
}

func TestEventHandlerCreateRequiresClaims(t *testing.T) {
	svc := &stubEventService{}
	h := NewEventHandler(svc)

	body := `{"name":"GopherCon","startDate":"2026-10-01T09:00:00Z","endDate":"2026-10-02T09:00:00Z"}`
	c, _ := newJSONContext(t, http.MethodPost, "/api/events", body)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
	if svc.createCalls != 0 {
		t.Fatal("service called without claims")
	}
}

func TestEventHandlerUpdateForbidden(t *testing.T) {
	svc := &stubEventService{err: domain.ErrForbidden}
	h := NewEventHandler(svc)

	body := `{"name":"GopherCon","startDate":"2026-10-01T09:00:00Z","endDate":"2026-10-02T09:00:00Z"}`
	c, _ := newJSONContext(t, http.MethodPut, "/api/events/e1", body)
	c.SetParamNames("id")
	c.SetParamValues("e1")
	authenticate(c, domain.Claims{UserID: "intruder", Role: domain.RoleOrganizer})

	if err := h.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden to propagate, got %v", err)
	}
}

func TestEventHandlerDelete(t *testing.T) {
	svc := &stubEventService{}
	h := NewEventHandler(svc)

	c, rec := newJSONContext(t, http.MethodDelete, "/api/events/e1", "")
	c.SetParamNames("id")
	c.SetParamValues("e1")
	authenticate(c, domain.Claims{UserID: "u1", Role: domain.RoleAdmin})

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
