package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roombook/pkg/model"
)

func testRequest() *model.AvailabilityRequest {
	return &model.AvailabilityRequest{
		Room:        "101",
		Date:        "2024-03-01",
		TimeStart:   "09:00",
		TimeEnd:     "10:00",
		BookingType: "lesson",
	}
}

func TestCheck_DecodesDecision(t *testing.T) {
	var received model.AvailabilityRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/availability/check" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(model.AvailabilityResponse{
			Available: true,
			Message:   "room is available for booking",
		})
	}))
	defer server.Close()

	c := NewAvailabilityClient(server.URL, time.Second, time.Second)
	decision, err := c.Check(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !decision.Available {
		t.Errorf("expected available decision")
	}
	if decision.Message != "room is available for booking" {
		t.Errorf("unexpected message %q", decision.Message)
	}
	if received.Room != "101" || received.BookingType != "lesson" {
		t.Errorf("request not forwarded intact: %+v", received)
	}
}

func TestCheck_DeniedDecisionIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.AvailabilityResponse{
			Available: false,
			Reason:    "room is occupied at this time, conflicts: 1",
		})
	}))
	defer server.Close()

	c := NewAvailabilityClient(server.URL, time.Second, time.Second)
	decision, err := c.Check(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("a 200 denial must decode cleanly, got error: %v", err)
	}
	if decision.Available {
		t.Errorf("expected denied decision")
	}
	if decision.Reason != "room is occupied at this time, conflicts: 1" {
		t.Errorf("expected reason passed through, got %q", decision.Reason)
	}
}

func TestCheck_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"storage failure"}`))
	}))
	defer server.Close()

	c := NewAvailabilityClient(server.URL, time.Second, time.Second)
	_, err := c.Check(context.Background(), testRequest())

	var statusErr *UpstreamStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *UpstreamStatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", statusErr.StatusCode)
	}
	if statusErr.Body != `{"error":"storage failure"}` {
		t.Errorf("expected upstream body preserved, got %q", statusErr.Body)
	}
}

func TestCheck_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := NewAvailabilityClient(server.URL, 20*time.Millisecond, time.Second)
	_, err := c.Check(context.Background(), testRequest())

	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}

func TestCheck_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewAvailabilityClient(server.URL, time.Second, time.Second)
	_, err := c.Check(context.Background(), testRequest())

	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("expected ErrUnreachable, got %v", err)
	}
	if errors.Is(err, ErrTimeout) {
		t.Errorf("a refused connection must not classify as timeout")
	}
}

func TestHealthy(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected bool
	}{
		{"ok", http.StatusOK, true},
		{"server error", http.StatusInternalServerError, false},
		{"not found", http.StatusNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/health" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			c := NewAvailabilityClient(server.URL, time.Second, time.Second)
			if got := c.Healthy(context.Background()); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestHealthy_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewAvailabilityClient(server.URL, time.Second, time.Second)
	if c.Healthy(context.Background()) {
		t.Errorf("expected false for unreachable authority")
	}
}
