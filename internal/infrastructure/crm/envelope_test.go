package crm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gatherly/events-api/internal/core/domain"
)

func TestDecodeDataObject(t *testing.T) {
	var out struct {
		ID string `json:"Id"`
	}
	raw := json.RawMessage(`{"Id":"001abc"}`)

	if err := decodeData(raw, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != "001abc" {
		t.Fatalf("unexpected id: %q", out.ID)
	}
}

func TestDecodeDataStringEncoded(t *testing.T) {
	// Some Apex resources serialize data as a JSON string of the object.
	var out []struct {
		Name string `json:"Name"`
	}
	raw := json.RawMessage(`"[{\"Name\":\"GopherCon\"}]"`)

	if err := decodeData(raw, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Name != "GopherCon" {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestDecodeDataEmpty(t *testing.T) {
	var out map[string]any
	if err := decodeData(nil, &out); err == nil {
		t.Fatal("expected error for missing payload")
	}
	if err := decodeData(json.RawMessage("null"), &out); err == nil {
		t.Fatal("expected error for null payload")
	}
}

func TestTranslateNotFound(t *testing.T) {
	err := translateNotFound(&domain.UpstreamError{Status: 404, Message: "no such record"}, "Event", "abc")

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err.Error() != "Event with ID abc not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatal("expected ErrNotFound sentinel match")
	}
}

func TestTranslateNotFoundPassthrough(t *testing.T) {
	orig := &domain.UpstreamError{Status: 500, Message: "boom"}
	if got := translateNotFound(orig, "Event", "abc"); got != error(orig) {
		t.Fatalf("expected passthrough, got %v", got)
	}

	plain := errors.New("dial tcp: timeout")
	if got := translateNotFound(plain, "Event", "abc"); got != plain {
		t.Fatalf("expected passthrough, got %v", got)
	}
}
