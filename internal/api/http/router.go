package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the REST surface of the reservation engine.
func NewRouter(bookings *BookingHandler, cat *CatalogHandler) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/availability/check", bookings.CheckAvailability).Methods(http.MethodPost)
	api.HandleFunc("/availability/slots", bookings.SlotGrid).Methods(http.MethodGet)
	api.HandleFunc("/pricing/quote", bookings.QuotePrice).Methods(http.MethodPost)

	api.HandleFunc("/bookings", bookings.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings", bookings.ListBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", bookings.GetBooking).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/cancel", bookings.CancelBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", bookings.DeleteBooking).Methods(http.MethodDelete)

	api.HandleFunc("/admin/reset", bookings.Reset).Methods(http.MethodPost)
	api.HandleFunc("/admin/stats", bookings.Stats).Methods(http.MethodGet)

	api.HandleFunc("/catalog/courts", cat.ListCourts).Methods(http.MethodGet)
	api.HandleFunc("/catalog/coaches", cat.ListCoaches).Methods(http.MethodGet)
	api.HandleFunc("/catalog/inventory", cat.ListInventory).Methods(http.MethodGet)
	api.HandleFunc("/catalog/rules", cat.ListRules).Methods(http.MethodGet)

	return r
}
