// Package program reads training programs from JSON or TOML documents.
package program

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mufasa/fitness-brain/internal/domain"

	"github.com/BurntSushi/toml"
)

var (
	ErrMalformedProgram  = errors.New("malformed program document")
	ErrUnsupportedFormat = errors.New("unsupported program file format")
)

// wireProgram mirrors domain.Program with lenient plan and date fields.
type wireProgram struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Title       string          `json:"title"`
	Goal        string          `json:"goal"`
	Weeks       int             `json:"weeks"`
	DaysPerWeek int             `json:"days_per_week"`
	Plan        json.RawMessage `json:"plan"`
	StartDate   string          `json:"start_date"`
}

// Decode parses a JSON program. A plan that is not a list is treated as no
// plan; a start date may be a calendar date or an RFC 3339 timestamp.
// A program wrapped as {"program": {...}} is unwrapped.
func Decode(data []byte) (*domain.Program, error) {
	var envelope struct {
		Program json.RawMessage `json:"program"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.Program) > 0 && envelope.Program[0] == '{' {
		data = envelope.Program
	}

	var w wireProgram
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProgram, err)
	}

	p := &domain.Program{
		ID:          w.ID,
		UserID:      w.UserID,
		Title:       w.Title,
		Goal:        w.Goal,
		Weeks:       w.Weeks,
		DaysPerWeek: w.DaysPerWeek,
	}
	if raw := bytes.TrimSpace(w.Plan); len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &p.Plan); err != nil {
			return nil, fmt.Errorf("%w: plan: %v", ErrMalformedProgram, err)
		}
	}
	if w.StartDate != "" {
		start, err := parseStartDate(w.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date: %v", ErrMalformedProgram, err)
		}
		p.StartDate = &start
	}
	return p, nil
}

// DecodeTOML parses a TOML program.
func DecodeTOML(data []byte) (*domain.Program, error) {
	var p domain.Program
	if _, err := toml.Decode(string(data), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProgram, err)
	}
	if p.StartDate != nil {
		start := domain.DateOnly(*p.StartDate)
		p.StartDate = &start
	}
	return &p, nil
}

// ParseFile reads a program file, choosing the decoder by extension.
func ParseFile(path string) (*domain.Program, error) {
	var decode func([]byte) (*domain.Program, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = Decode
	case ".toml":
		decode = DecodeTOML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read program file: %w", err)
	}
	return decode(data)
}

func parseStartDate(s string) (time.Time, error) {
	if t, err := domain.ParseDate(s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOnly(t), nil
}
