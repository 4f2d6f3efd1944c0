package repository

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingserrors "roombook/internal/bookings/errors"
	"roombook/pkg/database"
	"roombook/pkg/logger"
	"roombook/pkg/model"
)

func newTestRepo(t *testing.T) BookingRepository {
	t.Helper()

	log := logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Output:  io.Discard,
		Service: "test",
	})

	db, err := database.Connect(":memory:", log)
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, database.Migrate(db, &model.Booking{}))

	return NewGormBookingRepository(db)
}

func seedBooking(t *testing.T, repo BookingRepository) *model.Booking {
	t.Helper()
	booking := &model.Booking{
		Room:        "101",
		Date:        "2024-03-01",
		TimeStart:   "09:00",
		TimeEnd:     "10:00",
		BookingType: model.TypeLesson,
		UserEmail:   "student@example.com",
	}
	require.NoError(t, repo.Create(context.Background(), booking))
	return booking
}

func TestCreate_AssignsIDAndTimestamp(t *testing.T) {
	repo := newTestRepo(t)

	booking := seedBooking(t, repo)

	assert.NotEmpty(t, booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestFindByID(t *testing.T) {
	repo := newTestRepo(t)
	seeded := seedBooking(t, repo)

	found, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)
	assert.Equal(t, "student@example.com", found.UserEmail)
}

func TestFindByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, bookingserrors.ErrNotFound)
}

func TestFindAll_Limited(t *testing.T) {
	repo := newTestRepo(t)
	for i := 0; i < 52; i++ {
		seedBooking(t, repo)
	}

	bookings, err := repo.FindAll(context.Background(), 50)
	require.NoError(t, err)
	assert.Len(t, bookings, 50)
}

func TestUpdate(t *testing.T) {
	repo := newTestRepo(t)
	booking := seedBooking(t, repo)

	booking.Room = "202"
	booking.UserEmail = "teacher@example.com"
	require.NoError(t, repo.Update(context.Background(), booking))

	found, err := repo.FindByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "202", found.Room)
	assert.Equal(t, "teacher@example.com", found.UserEmail)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Update(context.Background(), &model.Booking{ID: "missing", Room: "101"})
	assert.ErrorIs(t, err, bookingserrors.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	booking := seedBooking(t, repo)

	require.NoError(t, repo.Delete(context.Background(), booking.ID))

	_, err := repo.FindByID(context.Background(), booking.ID)
	assert.ErrorIs(t, err, bookingserrors.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), booking.ID), bookingserrors.ErrNotFound)
}
