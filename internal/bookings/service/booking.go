package service

import (
	"context"
	"errors"

	bookingserrors "roombook/internal/bookings/errors"
	"roombook/internal/bookings/repository"
	"roombook/internal/bookings/validator"
	"roombook/pkg/client"
	"roombook/pkg/config"
	apperrors "roombook/pkg/errors"
	"roombook/pkg/model"
)

// AvailabilityChecker is the gateway's view of the authority: one
// synchronous decision call and one reachability probe.
type AvailabilityChecker interface {
	Check(ctx context.Context, req *model.AvailabilityRequest) (*model.AvailabilityResponse, error)
	Healthy(ctx context.Context) bool
}

type BookingService interface {
	Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
	Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
	AuthorityStatus(ctx context.Context) bool
}

type bookingService struct {
	repo      repository.BookingRepository
	checker   AvailabilityChecker
	validator *validator.BookingValidator
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	checker AvailabilityChecker,
	bookingValidator *validator.BookingValidator,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		checker:   checker,
		validator: bookingValidator,
		cfg:       cfg,
	}
}

// Create persists a booking only after the authority has confirmed the
// slot. The authority commits its own canonical record inside the
// check call; the row written here is the gateway's denormalized copy.
func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("not all fields filled", map[string]any{"error": err.Error()})
	}

	query := &model.AvailabilityRequest{
		Room:        req.Room,
		Date:        req.Date,
		TimeStart:   req.TimeStart,
		TimeEnd:     req.TimeEnd,
		BookingType: req.BookingType,
	}

	s.cfg.Log.Info("Forwarding availability query",
		"url", s.cfg.AvailabilityServiceURL,
		"room", query.Room,
		"date", query.Date,
		"time_start", query.TimeStart,
		"time_end", query.TimeEnd,
	)

	decision, err := s.checker.Check(ctx, query)
	if err != nil {
		return nil, s.mapCheckError(err)
	}

	if !decision.Available {
		s.cfg.Log.Info("Booking denied by availability service", "reason", decision.Reason)
		return nil, apperrors.Denied(decision.Reason)
	}

	booking := &model.Booking{
		Room:        req.Room,
		Date:        req.Date,
		TimeStart:   req.TimeStart,
		TimeEnd:     req.TimeEnd,
		BookingType: req.BookingType,
		UserEmail:   req.UserEmail,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"room", booking.Room,
		"date", booking.Date,
		"email", booking.UserEmail,
	)
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("failed to retrieve booking", err)
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx, config.DefaultListLimit)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("failed to retrieve bookings", err)
	}
	return bookings, nil
}

// Update re-validates with the authority only when an identity field
// (room, date, time range) actually changed relative to the stored
// row. Comparison is raw string equality, so "9:00" and "09:00" count
// as different values. If the authority denies or cannot be reached,
// the stored row is left untouched.
func (s *bookingService) Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("booking ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("failed to check booking existence", err)
	}

	merged := s.mergeUpdates(existing, updates)

	if identityChanged(existing, merged) {
		query := &model.AvailabilityRequest{
			Room:        merged.Room,
			Date:        merged.Date,
			TimeStart:   merged.TimeStart,
			TimeEnd:     merged.TimeEnd,
			BookingType: merged.BookingType,
		}

		s.cfg.Log.Info("Re-checking availability for update", "id", id)
		decision, err := s.checker.Check(ctx, query)
		if err != nil {
			return nil, s.mapCheckError(err)
		}
		if !decision.Available {
			s.cfg.Log.Info("Booking update denied by availability service",
				"id", id,
				"reason", decision.Reason,
			)
			return nil, apperrors.Denied(decision.Reason)
		}
	}

	if err := s.repo.Update(ctx, merged); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to update booking", "id", id, "error", err)
		return nil, apperrors.Internal("failed to update booking", err)
	}

	s.cfg.Log.Info("Booking updated successfully", "id", id)
	return merged, nil
}

// Delete removes only the gateway's own row. The authority's canonical
// booking survives; the divergence is part of the design.
func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("booking ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		return apperrors.Internal("failed to delete booking", err)
	}

	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	return nil
}

func (s *bookingService) AuthorityStatus(ctx context.Context) bool {
	return s.checker.Healthy(ctx)
}

// mapCheckError turns transport failures into the distinct 503s the
// client should see. None of these are recorded anywhere on the
// gateway side; the response is their only trace.
func (s *bookingService) mapCheckError(err error) error {
	var statusErr *client.UpstreamStatusError

	switch {
	case errors.Is(err, client.ErrTimeout):
		s.cfg.Log.Error("Availability service timed out")
		return apperrors.Timeout("availability service is not responding (timeout)")

	case errors.As(err, &statusErr):
		s.cfg.Log.Error("Availability service returned an error",
			"status", statusErr.StatusCode,
			"body", statusErr.Body,
		)
		return apperrors.Unavailable("availability service returned an error").
			WithDetails(map[string]any{
				"status": statusErr.StatusCode,
				"body":   statusErr.Body,
			})

	case errors.Is(err, client.ErrUnreachable):
		s.cfg.Log.Error("Cannot reach availability service", "error", err)
		return apperrors.Unavailable("cannot connect to availability service, make sure it is running")

	default:
		s.cfg.Log.Error("Availability check failed", "error", err)
		return apperrors.Unavailable("could not verify availability")
	}
}

func (s *bookingService) mergeUpdates(existing *model.Booking, updates *model.BookingUpdate) *model.Booking {
	merged := *existing

	if updates.Room != nil {
		merged.Room = *updates.Room
	}
	if updates.Date != nil {
		merged.Date = *updates.Date
	}
	if updates.TimeStart != nil {
		merged.TimeStart = *updates.TimeStart
	}
	if updates.TimeEnd != nil {
		merged.TimeEnd = *updates.TimeEnd
	}
	if updates.BookingType != nil {
		merged.BookingType = *updates.BookingType
	}
	if updates.UserEmail != nil {
		merged.UserEmail = *updates.UserEmail
	}

	return &merged
}

func identityChanged(existing, merged *model.Booking) bool {
	return existing.Room != merged.Room ||
		existing.Date != merged.Date ||
		existing.TimeStart != merged.TimeStart ||
		existing.TimeEnd != merged.TimeEnd
}
