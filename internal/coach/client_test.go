package coach_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"mufasa/fitness-brain/internal/coach"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk_CachesReplies(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/coach/ask", r.URL.Path)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "rashad", body["user_id"])

		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "reply": "Slow down the lowering on " + body["message"]})
	}))
	defer ts.Close()

	c := coach.NewClient(coach.Config{BaseURL: ts.URL + "/"}, ts.Client())
	require.True(t, c.Enabled())

	ctx := context.Background()
	assert.Equal(t, "Slow down the lowering on squats", c.Ask(ctx, "rashad", "squats"))
	assert.Equal(t, "Slow down the lowering on squats", c.Ask(ctx, "rashad", "squats"))
	assert.Equal(t, int32(1), calls.Load())

	c.Ask(ctx, "rashad", "rows")
	assert.Equal(t, int32(2), calls.Load())
}

func TestAsk_FailuresAreAbsorbed(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "model overloaded", http.StatusServiceUnavailable)
		}},
		{"bad json", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}},
		{"error field", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"ok":false,"error":"quota"}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			c := coach.NewClient(coach.Config{BaseURL: ts.URL}, ts.Client())
			assert.Empty(t, c.Ask(context.Background(), "rashad", "how was my week?"))
		})
	}
}

func TestAsk_Timeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	c := coach.NewClient(coach.Config{BaseURL: ts.URL, Timeout: 50 * time.Millisecond}, ts.Client())
	assert.Empty(t, c.Ask(context.Background(), "rashad", "hello"))
}

func TestAsk_Disabled(t *testing.T) {
	c := coach.NewClient(coach.Config{}, nil)
	assert.False(t, c.Enabled())
	assert.Empty(t, c.Ask(context.Background(), "rashad", "hello"))

	var nilClient *coach.Client
	assert.False(t, nilClient.Enabled())
	assert.Empty(t, nilClient.Ask(context.Background(), "rashad", "hello"))
}
