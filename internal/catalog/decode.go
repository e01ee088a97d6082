package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"mufasa/fitness-brain/internal/domain"
)

// ErrMalformedCatalog is returned when the payload is neither a list of exercises
// nor an object with an "exercises" list.
var ErrMalformedCatalog = errors.New("malformed exercise catalog")

// Decode parses an exercise index payload. Both a flat JSON list and an
// {"exercises": [...]} wrapper are accepted; null entries are dropped.
func Decode(data []byte) ([]domain.ExerciseRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrMalformedCatalog
	}

	var raw []*domain.ExerciseRecord
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
		}
	case '{':
		var wrapper struct {
			Exercises []*domain.ExerciseRecord `json:"exercises"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
		}
		raw = wrapper.Exercises
	default:
		return nil, ErrMalformedCatalog
	}

	records := make([]domain.ExerciseRecord, 0, len(raw))
	for _, rec := range raw {
		if rec == nil {
			continue
		}
		records = append(records, *rec)
	}
	return records, nil
}

// Encode renders records as a flat JSON list, the format Decode reads back.
func Encode(records []domain.ExerciseRecord) ([]byte, error) {
	if records == nil {
		records = []domain.ExerciseRecord{}
	}
	return json.MarshalIndent(records, "", "  ")
}
