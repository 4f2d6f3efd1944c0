package model

import "time"

// Booking types accepted by the availability authority.
const (
	TypeLesson  = "lesson"
	TypeExam    = "exam"
	TypeMeeting = "meeting"
)

func ValidBookingTypes() []string {
	return []string{TypeLesson, TypeExam, TypeMeeting}
}

// RoomBooking is the authority's canonical reservation record. It is
// created the moment a check succeeds; there is no separate
// hold/confirm handshake.
//
// Date is "2006-01-02", TimeStart/TimeEnd are "HH:MM". Times stay
// strings end to end: "HH:MM" compares correctly as a string, and the
// services exchange them verbatim.
type RoomBooking struct {
	ID          string    `json:"id" gorm:"column:id;primaryKey"`
	Room        string    `json:"room" gorm:"column:room;index:idx_room_date"`
	Date        string    `json:"date" gorm:"column:date;index:idx_room_date"`
	TimeStart   string    `json:"time_start" gorm:"column:time_start"`
	TimeEnd     string    `json:"time_end" gorm:"column:time_end"`
	BookingType string    `json:"type" gorm:"column:booking_type"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (RoomBooking) TableName() string { return "room_bookings" }

// Booking is the gateway's own denormalized record, written only after
// the authority has confirmed the slot. It lives in a separate store
// from RoomBooking and the two are never reconciled.
type Booking struct {
	ID          string    `json:"id" gorm:"column:id;primaryKey"`
	Room        string    `json:"room" gorm:"column:room"`
	Date        string    `json:"date" gorm:"column:date"`
	TimeStart   string    `json:"time_start" gorm:"column:time_start"`
	TimeEnd     string    `json:"time_end" gorm:"column:time_end"`
	BookingType string    `json:"type" gorm:"column:booking_type"`
	UserEmail   string    `json:"email" gorm:"column:user_email"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Booking) TableName() string { return "bookings" }

// BookingRequest is the gateway's create payload.
type BookingRequest struct {
	Room        string `json:"room" validate:"required"`
	Date        string `json:"date" validate:"required"`
	TimeStart   string `json:"time_start" validate:"required"`
	TimeEnd     string `json:"time_end" validate:"required"`
	BookingType string `json:"type" validate:"required"`
	UserEmail   string `json:"email" validate:"required"`
}

// BookingUpdate carries partial update fields; nil means "keep stored value".
type BookingUpdate struct {
	Room        *string `json:"room,omitempty"`
	Date        *string `json:"date,omitempty"`
	TimeStart   *string `json:"time_start,omitempty"`
	TimeEnd     *string `json:"time_end,omitempty"`
	BookingType *string `json:"type,omitempty"`
	UserEmail   *string `json:"email,omitempty"`
}
