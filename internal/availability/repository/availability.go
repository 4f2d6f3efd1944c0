package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roombook/pkg/model"
)

// Repository owns the authority's two tables: the canonical room
// bookings and the append-only availability check log.
type Repository interface {
	CreateBooking(ctx context.Context, booking *model.RoomBooking) error
	CountConflicts(ctx context.Context, room, date, timeStart, timeEnd string) (int64, error)
	ListBookings(ctx context.Context, limit int) ([]*model.RoomBooking, error)
	CreateCheck(ctx context.Context, check *model.AvailabilityCheck) error
	ListChecks(ctx context.Context, limit int) ([]*model.AvailabilityCheck, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreateBooking(ctx context.Context, booking *model.RoomBooking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	booking.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create room booking: %w", err)
	}
	return nil
}

// CountConflicts uses the open-interval overlap test: an existing
// booking conflicts when existing.time_start < new.time_end AND
// existing.time_end > new.time_start. Abutting intervals do not
// conflict. "HH:MM" strings compare correctly lexicographically.
func (r *gormRepository) CountConflicts(ctx context.Context, room, date, timeStart, timeEnd string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RoomBooking{}).
		Where("room = ? AND date = ? AND time_start < ? AND time_end > ?", room, date, timeEnd, timeStart).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count conflicting bookings: %w", err)
	}
	return count, nil
}

func (r *gormRepository) ListBookings(ctx context.Context, limit int) ([]*model.RoomBooking, error) {
	var bookings []*model.RoomBooking
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list room bookings: %w", err)
	}
	return bookings, nil
}

func (r *gormRepository) CreateCheck(ctx context.Context, check *model.AvailabilityCheck) error {
	if check.ID == "" {
		check.ID = uuid.NewString()
	}
	check.CheckedAt = time.Now().UTC().Truncate(time.Millisecond)

	if err := r.db.WithContext(ctx).Create(check).Error; err != nil {
		return fmt.Errorf("failed to record availability check: %w", err)
	}
	return nil
}

func (r *gormRepository) ListChecks(ctx context.Context, limit int) ([]*model.AvailabilityCheck, error) {
	var checks []*model.AvailabilityCheck
	err := r.db.WithContext(ctx).
		Order("checked_at DESC").
		Limit(limit).
		Find(&checks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list availability checks: %w", err)
	}
	return checks, nil
}
