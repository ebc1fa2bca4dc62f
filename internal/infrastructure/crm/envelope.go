package crm

import (
	"encoding/json"
	"errors"

	"github.com/gatherly/events-api/internal/core/domain"
)

// envelope is the uniform response shape of the org's Apex REST resources.
// statusCode is the CRM-level result, independent of the HTTP status.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// decodeData unmarshals an envelope data payload into v. The Apex side
// sometimes serializes data as a JSON-encoded string of the object rather
// than the object itself; both shapes decode transparently.
func decodeData(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return errors.New("empty data payload")
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return err
		}
		return json.Unmarshal([]byte(inner), v)
	}
	return json.Unmarshal(raw, v)
}

// translateNotFound converts a 404 upstream failure into a typed not-found
// error for the given resource; everything else passes through.
func translateNotFound(err error, resource, id string) error {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) && ue.Status == 404 {
		return &domain.NotFoundError{Resource: resource, ID: id}
	}
	return err
}
