package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingserrors "roombook/internal/bookings/errors"
	"roombook/pkg/model"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	FindAll(ctx context.Context, limit int) ([]*model.Booking, error)
	Update(ctx context.Context, booking *model.Booking) error
	Delete(ctx context.Context, id string) error
}

type gormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) BookingRepository {
	return &gormBookingRepository{db: db}
}

func (r *gormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	booking.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *gormBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &booking, nil
}

func (r *gormBookingRepository) FindAll(ctx context.Context, limit int) ([]*model.Booking, error) {
	var bookings []*model.Booking
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *gormBookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	result := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", booking.ID).
		Updates(map[string]any{
			"room":         booking.Room,
			"date":         booking.Date,
			"time_start":   booking.TimeStart,
			"time_end":     booking.TimeEnd,
			"booking_type": booking.BookingType,
			"user_email":   booking.UserEmail,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return bookingserrors.ErrNotFound
	}
	return nil
}

func (r *gormBookingRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Booking{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return bookingserrors.ErrNotFound
	}
	return nil
}
