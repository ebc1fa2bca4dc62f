package crm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gatherly/events-api/internal/core/domain"
)

func TestEventRepositoryListNormalizesFields(t *testing.T) {
	org := newFakeOrg(t)
	org.apex = func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, "ok", []map[string]any{{
			"Id":              "e1",
			"Name":            "GopherCon",
			"startDate__c":    "2026-10-01T09:00:00Z",
			"endDate__c":      "2026-10-02T17:00:00Z",
			"Status__c":       "Scheduled",
			"Location__c":     "Denver",
			"Custom_Users__c": "u1",
		}})
	}
	repo := NewEventRepository(org.connect(t))

	events, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}

	e := events[0]
	if e.ID != "e1" || e.Name != "GopherCon" || e.OwnerID != "u1" {
		t.Fatalf("fields not normalized: %+v", e)
	}
	if e.Status != domain.EventScheduled {
		t.Fatalf("unexpected status: %q", e.Status)
	}
	if !e.StartDate.Equal(time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start date: %v", e.StartDate)
	}
}

func TestEventRepositoryCreateSendsSchemaFields(t *testing.T) {
	org := newFakeOrg(t)
	var sent map[string]any
	org.apex = func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		writeEnvelope(w, 201, "created", map[string]any{
			"Id":           "e2",
			"Name":         sent["Name"],
			"startDate__c": sent["startDate__c"],
			"endDate__c":   sent["endDate__c"],
			"Status__c":    sent["Status__c"],
		})
	}
	repo := NewEventRepository(org.connect(t))

	capacity := 50
	created, err := repo.Create(context.Background(), "u1", &domain.Event{
		Name:      "GopherCon",
		StartDate: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 2, 17, 0, 0, 0, time.UTC),
		Status:    domain.EventScheduled,
		Capacity:  &capacity,
		OwnerID:   "u1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "e2" {
		t.Fatalf("unexpected id: %q", created.ID)
	}

	if sent["Custom_Users__c"] != "u1" {
		t.Fatalf("owner field missing from payload: %+v", sent)
	}
	if sent["Capacity__c"] != float64(50) {
		t.Fatalf("capacity field missing from payload: %+v", sent)
	}
	if _, present := sent["Id"]; present {
		t.Fatal("empty Id should be omitted on create")
	}
}

func TestEventRepositoryFindByIDNotFound(t *testing.T) {
	org := newFakeOrg(t)
	org.apex = func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 404, "record not found", nil)
	}
	repo := NewEventRepository(org.connect(t))

	_, err := repo.FindByID(context.Background(), "abc")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "Event with ID abc not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
