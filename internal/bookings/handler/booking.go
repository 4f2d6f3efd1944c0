package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"roombook/internal/bookings/service"
	apperrors "roombook/pkg/errors"
	httputil "roombook/pkg/http"
	"roombook/pkg/logger"
	"roombook/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(svc service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: svc,
		log:     log,
	}
}

type BookingResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Booking *model.Booking `json:"booking,omitempty"`
}

type BookingListResponse struct {
	Count    int              `json:"count"`
	Bookings []*model.Booking `json:"bookings"`
}

type AuthorityStatusResponse struct {
	Available bool `json:"available"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("invalid request body"))
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, BookingResponse{
		Success: true,
		Message: "booking created successfully",
		Booking: booking,
	})
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}
	httputil.WriteSuccess(w, BookingListResponse{Count: len(bookings), Bookings: bookings})
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, booking)
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var updates model.BookingUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("invalid request body"))
		return
	}

	booking, err := h.service.Update(r.Context(), id, &updates)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, BookingResponse{
		Success: true,
		Message: "booking updated successfully",
		Booking: booking,
	})
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, BookingResponse{
		Success: true,
		Message: fmt.Sprintf("booking %s deleted successfully", id),
	})
}

// CheckAuthority reports whether the availability service answers its
// health endpoint. Boolean only; failure detail is deliberately
// swallowed.
func (h *BookingHandler) CheckAuthority(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, AuthorityStatusResponse{
		Available: h.service.AuthorityStatus(r.Context()),
	})
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings", h.List)
	router.GET("/api/v1/bookings/id/:id", h.GetByID)
	router.PUT("/api/v1/bookings/id/:id", h.Update)
	router.DELETE("/api/v1/bookings/id/:id", h.Delete)
	router.GET("/api/v1/bookings/check-authority", h.CheckAuthority)
}
