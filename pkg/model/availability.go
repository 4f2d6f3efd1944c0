package model

// AvailabilityRequest is the normalized query the gateway sends to the
// availability authority before it persists anything.
type AvailabilityRequest struct {
	Room        string `json:"room" validate:"required"`
	Date        string `json:"date" validate:"required"`
	TimeStart   string `json:"time_start" validate:"required"`
	TimeEnd     string `json:"time_end" validate:"required"`
	BookingType string `json:"type" validate:"required"`
}

// AvailabilityResponse is the authority's decision. Reason is set on
// every denial; Message only on success.
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
}
