// Package codec serializes the timeline model to the compact transport
// string embedded in host documents, and decodes every historical variant
// of that transport back into a model.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/Chilos/project-gantt/internal/domain"
)

// Encode renders the model as base64 over the UTF-8 bytes of its compact
// JSON form. Dates are written in local time, never UTC, to avoid
// off-by-one-day shifts near midnight.
func Encode(t *domain.Timeline) (string, error) {
	raw, err := json.Marshal(toWire(t))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// decoder is one candidate transport format. Candidates are tried in
// order; the first structurally valid result wins. The list is
// append-only as formats are retired.
type decoder func(payload []byte) (*domain.Timeline, bool)

var decoders = []decoder{
	decodeCurrent,
	decodeLegacyDouble,
}

// Decode parses a transport string in any supported historical variant.
// Malformed or empty input yields a fresh default model; Decode never
// fails and never mutates caller state.
func Decode(s string) *domain.Timeline {
	payload, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err == nil && len(payload) > 0 {
		for _, dec := range decoders {
			if t, ok := dec(payload); ok {
				t.Sanitize()
				return t
			}
		}
	}
	return domain.NewTimeline(time.Now())
}

// decodeCurrent handles the UTF-8-safe form: the payload is the raw JSON
// bytes.
func decodeCurrent(payload []byte) (*domain.Timeline, bool) {
	return parseModel(payload)
}

// decodeLegacyDouble handles the retired double-encoded form, where the
// payload still carries a redundant percent-encoding pass. Probed by
// shape: percent-encoded JSON starts with an escape, plain JSON does not.
func decodeLegacyDouble(payload []byte) (*domain.Timeline, bool) {
	if len(payload) == 0 || payload[0] != '%' {
		return nil, false
	}
	unescaped, err := url.PathUnescape(string(payload))
	if err != nil {
		return nil, false
	}
	return parseModel([]byte(unescaped))
}

func parseModel(raw []byte) (*domain.Timeline, bool) {
	if !Validate(raw) {
		return nil, false
	}
	var w wireTimeline
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, false
	}
	t, err := fromWire(w)
	if err != nil {
		return nil, false
	}
	if t.Validate() != nil {
		return nil, false
	}
	return t, true
}

// Validate checks the candidate's outer shape: start and end dates must be
// present and projects/sprints, when present, must be lists. Entity shapes
// are not deep-validated.
func Validate(raw []byte) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	var s string
	if err := json.Unmarshal(probe["startDate"], &s); err != nil || s == "" {
		return false
	}
	if err := json.Unmarshal(probe["endDate"], &s); err != nil || s == "" {
		return false
	}
	for _, key := range []string{"projects", "sprints"} {
		if v, ok := probe[key]; ok {
			var list []json.RawMessage
			if err := json.Unmarshal(v, &list); err != nil {
				return false
			}
		}
	}
	return true
}
