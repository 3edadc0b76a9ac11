package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"courtmaster-backend/internal/availability"
	"courtmaster-backend/internal/domain"
	"courtmaster-backend/internal/service"
)

// BookingHandler exposes the availability and pricing core over REST. It
// contains no domain logic; every verdict and price comes from the service.
type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

type availabilityRequest struct {
	Date      string                   `json:"date"`
	StartTime int                      `json:"start_time"`
	EndTime   int                      `json:"end_time"`
	CourtID   string                   `json:"court_id,omitempty"`
	CoachID   string                   `json:"coach_id,omitempty"`
	Resources []domain.ResourceRequest `json:"resources,omitempty"`
}

func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	result, err := h.svc.CheckAvailability(r.Context(), availability.Request{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CourtID:   req.CourtID,
		CoachID:   req.CoachID,
		Resources: req.Resources,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type quoteRequest struct {
	CourtID   string                   `json:"court_id"`
	Date      string                   `json:"date"`
	StartTime int                      `json:"start_time"`
	EndTime   int                      `json:"end_time"`
	CoachID   string                   `json:"coach_id,omitempty"`
	Resources []domain.ResourceRequest `json:"resources,omitempty"`
}

func (h *BookingHandler) QuotePrice(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	breakdown, err := h.svc.QuotePrice(r.Context(), req.CourtID, req.Date, req.StartTime, req.EndTime, req.CoachID, req.Resources)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, breakdown)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	result, err := h.svc.CreateBooking(r.Context(), req)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings := h.svc.ListBookings(r.Context())
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	respondJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.svc.GetBooking(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.svc.CancelBooking(r.Context(), id) {
		respondError(w, http.StatusNotFound, "booking not found: "+id)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.svc.DeleteBooking(r.Context(), id) {
		respondError(w, http.StatusNotFound, "booking not found: "+id)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *BookingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.svc.Reset(r.Context())
	respondJSON(w, http.StatusOK, map[string]bool{"reset": true})
}

func (h *BookingHandler) SlotGrid(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	courtID := r.URL.Query().Get("court_id")
	slots, err := h.svc.SlotGrid(r.Context(), date, courtID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, slots)
}

func (h *BookingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Stats(r.Context()))
}
