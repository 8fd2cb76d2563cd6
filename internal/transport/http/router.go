package http

import (
	"log/slog"
	"net/http"
)

// NewHandler wires every route and the middleware chain into one handler.
func NewHandler(catalog CatalogService, bookings BookingService, corsOrigins []string, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", HealthHandler)
	mux.Handle("/trains", HandleTrains(catalog))
	mux.Handle("/trains/", HandleTrainByNo(catalog))
	mux.Handle("/bookings", HandleBookings(bookings))
	mux.Handle("/bookings/", HandleBookingByID(bookings))
	mux.Handle("/", NotFoundHandler())

	return RequestID(RequestLogger(CORS(corsOrigins, mux), logger))
}
