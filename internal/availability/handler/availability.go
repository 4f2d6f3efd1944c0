package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"roombook/internal/availability/service"
	apperrors "roombook/pkg/errors"
	httputil "roombook/pkg/http"
	"roombook/pkg/logger"
	"roombook/pkg/model"
)

type AvailabilityHandler struct {
	service service.Service
	log     *logger.Logger
}

func NewAvailabilityHandler(svc service.Service, log *logger.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: svc,
		log:     log,
	}
}

type ChecksResponse struct {
	Count  int                        `json:"count"`
	Checks []*model.AvailabilityCheck `json:"checks"`
}

type BookingsResponse struct {
	Count    int                  `json:"count"`
	Bookings []*model.RoomBooking `json:"bookings"`
}

// Check evaluates one availability request. Malformed input yields 400;
// a well-formed request always yields 200, whether or not the slot is
// free — denial is a normal outcome, not an error.
func (h *AvailabilityHandler) Check(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("invalid request body"))
		return
	}

	decision, err := h.service.CheckAvailability(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	status := http.StatusOK
	if decision.Malformed {
		status = http.StatusBadRequest
	}
	httputil.WriteJSON(w, status, decision.AvailabilityResponse)
}

func (h *AvailabilityHandler) ListChecks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	checks, err := h.service.ListChecks(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if checks == nil {
		checks = []*model.AvailabilityCheck{}
	}
	httputil.WriteSuccess(w, ChecksResponse{Count: len(checks), Checks: checks})
}

func (h *AvailabilityHandler) ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if bookings == nil {
		bookings = []*model.RoomBooking{}
	}
	httputil.WriteSuccess(w, BookingsResponse{Count: len(bookings), Bookings: bookings})
}

func (h *AvailabilityHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/availability/check", h.Check)
	router.GET("/api/v1/availability/checks", h.ListChecks)
	router.GET("/api/v1/availability/bookings-list", h.ListBookings)
}
