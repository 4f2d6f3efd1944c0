package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"roombook/internal/availability/repository"
	"roombook/pkg/config"
	"roombook/pkg/events"
	"roombook/pkg/model"
)

const (
	businessOpen  = "08:00"
	businessClose = "20:00"
	timeLayout    = "15:04"

	reasonMissingFields = "not all fields filled"
	reasonBadTimeFormat = "invalid time format, use HH:MM"
	reasonBusinessHours = "room is only available from " + businessOpen + " to " + businessClose
	reasonAvailable     = "room is available"
	messageAvailable    = "room is available for booking"
)

// Decision is the outcome of one availability evaluation. Malformed
// distinguishes client-error responses (missing fields, bad time
// format) from well-formed requests that were simply denied.
type Decision struct {
	model.AvailabilityResponse
	Malformed bool
}

type Service interface {
	CheckAvailability(ctx context.Context, req *model.AvailabilityRequest) (*Decision, error)
	ListChecks(ctx context.Context) ([]*model.AvailabilityCheck, error)
	ListBookings(ctx context.Context) ([]*model.RoomBooking, error)
}

type availabilityService struct {
	repo      repository.Repository
	publisher *events.Publisher
	validate  *validator.Validate
	cfg       *config.Config
}

// NewService builds the authority's rule engine. publisher may be nil,
// in which case decisions are only recorded in the audit table.
func NewService(repo repository.Repository, publisher *events.Publisher, cfg *config.Config) Service {
	return &availabilityService{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
		cfg:       cfg,
	}
}

// CheckAvailability evaluates the request against the rule chain in a
// fixed order, stopping at the first failure. Every branch, success or
// failure, records exactly one audit check. On success the canonical
// booking is created immediately; the check IS the reservation.
func (s *availabilityService) CheckAvailability(ctx context.Context, req *model.AvailabilityRequest) (*Decision, error) {
	s.cfg.Log.Info("Availability check received",
		"room", req.Room,
		"date", req.Date,
		"time_start", req.TimeStart,
		"time_end", req.TimeEnd,
		"type", req.BookingType,
	)

	// 1. All fields present.
	if err := s.validate.Struct(req); err != nil {
		if recErr := s.recordCheck(ctx, withSentinels(req), false, reasonMissingFields); recErr != nil {
			return nil, recErr
		}
		return s.deny(reasonMissingFields, true), nil
	}

	// 2. No overlap with confirmed bookings for the same room and date.
	conflicts, err := s.repo.CountConflicts(ctx, req.Room, req.Date, req.TimeStart, req.TimeEnd)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		reason := fmt.Sprintf("room is occupied at this time, conflicts: %d", conflicts)
		if recErr := s.recordCheck(ctx, req, false, reason); recErr != nil {
			return nil, recErr
		}
		return s.deny(reason, false), nil
	}

	// 3. Business hours.
	start, errStart := time.Parse(timeLayout, req.TimeStart)
	end, errEnd := time.Parse(timeLayout, req.TimeEnd)
	if errStart != nil || errEnd != nil {
		logged := *req
		logged.TimeStart = "00:00"
		logged.TimeEnd = "00:00"
		if recErr := s.recordCheck(ctx, &logged, false, reasonBadTimeFormat); recErr != nil {
			return nil, recErr
		}
		return s.deny(reasonBadTimeFormat, true), nil
	}
	open, _ := time.Parse(timeLayout, businessOpen)
	close_, _ := time.Parse(timeLayout, businessClose)
	if start.Before(open) || end.After(close_) {
		if recErr := s.recordCheck(ctx, req, false, reasonBusinessHours); recErr != nil {
			return nil, recErr
		}
		return s.deny(reasonBusinessHours, false), nil
	}

	// 4. Known booking type.
	if !isValidType(req.BookingType) {
		reason := fmt.Sprintf("unknown booking type, valid types: %s", strings.Join(model.ValidBookingTypes(), ", "))
		if recErr := s.recordCheck(ctx, req, false, reason); recErr != nil {
			return nil, recErr
		}
		return s.deny(reason, false), nil
	}

	// 5. Slot is free: commit the canonical booking in the same call.
	booking := &model.RoomBooking{
		Room:        req.Room,
		Date:        req.Date,
		TimeStart:   req.TimeStart,
		TimeEnd:     req.TimeEnd,
		BookingType: req.BookingType,
	}
	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	if recErr := s.recordCheck(ctx, req, true, reasonAvailable); recErr != nil {
		return nil, recErr
	}

	s.cfg.Log.Info("Room booked",
		"booking_id", booking.ID,
		"room", booking.Room,
		"date", booking.Date,
		"time_start", booking.TimeStart,
		"time_end", booking.TimeEnd,
	)

	return &Decision{
		AvailabilityResponse: model.AvailabilityResponse{
			Available: true,
			Message:   messageAvailable,
		},
	}, nil
}

func (s *availabilityService) ListChecks(ctx context.Context) ([]*model.AvailabilityCheck, error) {
	return s.repo.ListChecks(ctx, config.DefaultListLimit)
}

func (s *availabilityService) ListBookings(ctx context.Context) ([]*model.RoomBooking, error) {
	return s.repo.ListBookings(ctx, config.DefaultListLimit)
}

func (s *availabilityService) deny(reason string, malformed bool) *Decision {
	s.cfg.Log.Info("Availability denied", "reason", reason, "malformed", malformed)
	return &Decision{
		AvailabilityResponse: model.AvailabilityResponse{
			Available: false,
			Reason:    reason,
		},
		Malformed: malformed,
	}
}

// recordCheck appends one audit row and, when a publisher is wired,
// mirrors it onto the audit topic. Publish failures are logged only;
// the stored row is authoritative.
func (s *availabilityService) recordCheck(ctx context.Context, req *model.AvailabilityRequest, result bool, reason string) error {
	check := &model.AvailabilityCheck{
		Room:        req.Room,
		Date:        req.Date,
		TimeStart:   req.TimeStart,
		TimeEnd:     req.TimeEnd,
		BookingType: req.BookingType,
		Result:      result,
		Reason:      reason,
	}
	if err := s.repo.CreateCheck(ctx, check); err != nil {
		s.cfg.Log.Error("Failed to record availability check", "error", err)
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, check.Room, check); err != nil {
			s.cfg.Log.Warn("Failed to publish audit event",
				"check_id", check.ID,
				"error", err,
			)
		}
	}
	return nil
}

// withSentinels substitutes the original's placeholder values before a
// malformed request is written to the audit log.
func withSentinels(req *model.AvailabilityRequest) *model.AvailabilityRequest {
	logged := *req
	if logged.Room == "" {
		logged.Room = "N/A"
	}
	if logged.Date == "" {
		logged.Date = time.Now().Format("2006-01-02")
	}
	if logged.TimeStart == "" {
		logged.TimeStart = "00:00"
	}
	if logged.TimeEnd == "" {
		logged.TimeEnd = "00:00"
	}
	if logged.BookingType == "" {
		logged.BookingType = "unknown"
	}
	return &logged
}

func isValidType(bookingType string) bool {
	for _, t := range model.ValidBookingTypes() {
		if bookingType == t {
			return true
		}
	}
	return false
}
