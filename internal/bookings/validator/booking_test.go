package validator

import (
	"io"
	"strings"
	"testing"

	"roombook/pkg/logger"
	"roombook/pkg/model"
)

func newTestValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Output:  io.Discard,
		Service: "test",
	})
	return NewBookingValidator(log)
}

func completeRequest() *model.BookingRequest {
	return &model.BookingRequest{
		Room:        "101",
		Date:        "2024-03-01",
		TimeStart:   "09:00",
		TimeEnd:     "10:00",
		BookingType: "lesson",
		UserEmail:   "student@example.com",
	}
}

func TestValidateCreate_Complete(t *testing.T) {
	if err := newTestValidator().ValidateCreate(completeRequest()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateCreate_EachFieldRequired(t *testing.T) {
	tests := []struct {
		name  string
		field string
		blank func(*model.BookingRequest)
	}{
		{"room", "Room", func(r *model.BookingRequest) { r.Room = "" }},
		{"date", "Date", func(r *model.BookingRequest) { r.Date = "" }},
		{"time start", "TimeStart", func(r *model.BookingRequest) { r.TimeStart = "" }},
		{"time end", "TimeEnd", func(r *model.BookingRequest) { r.TimeEnd = "" }},
		{"type", "BookingType", func(r *model.BookingRequest) { r.BookingType = "" }},
		{"email", "UserEmail", func(r *model.BookingRequest) { r.UserEmail = "" }},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := completeRequest()
			tt.blank(req)

			err := v.ValidateCreate(req)
			if err == nil {
				t.Fatalf("expected error for missing %s", tt.field)
			}
			if !strings.Contains(err.Error(), tt.field+" is required") {
				t.Errorf("expected %q in error, got %q", tt.field+" is required", err.Error())
			}
		})
	}
}

func TestValidateCreate_ContentNotJudged(t *testing.T) {
	// Presence only; dates, times and types are the authority's call.
	req := completeRequest()
	req.Date = "not-a-date"
	req.TimeStart = "25:99"
	req.BookingType = "party"
	req.UserEmail = "not-an-email"

	if err := newTestValidator().ValidateCreate(req); err != nil {
		t.Errorf("field content must pass through, got: %v", err)
	}
}

func TestValidateCreate_ReportsAllMissingFields(t *testing.T) {
	err := newTestValidator().ValidateCreate(&model.BookingRequest{})
	if err == nil {
		t.Fatal("expected error for empty request")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 6 {
		t.Errorf("expected 6 field errors, got %d: %v", len(verrs), verrs)
	}
}
