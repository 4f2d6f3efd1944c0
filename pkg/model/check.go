package model

import "time"

// AvailabilityCheck is one immutable audit record of a check decision.
// Exactly one row is written per request the authority receives,
// malformed requests included. Rows are never updated or deleted.
type AvailabilityCheck struct {
	ID          string    `json:"id" gorm:"column:id;primaryKey"`
	Room        string    `json:"room" gorm:"column:room"`
	Date        string    `json:"date" gorm:"column:date"`
	TimeStart   string    `json:"time_start" gorm:"column:time_start"`
	TimeEnd     string    `json:"time_end" gorm:"column:time_end"`
	BookingType string    `json:"type" gorm:"column:booking_type"`
	Result      bool      `json:"result" gorm:"column:result"`
	Reason      string    `json:"reason" gorm:"column:reason"`
	CheckedAt   time.Time `json:"checked_at" gorm:"column:checked_at;index"`
}

func (AvailabilityCheck) TableName() string { return "availability_checks" }
