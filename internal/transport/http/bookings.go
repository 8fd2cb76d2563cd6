package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Coderush2004/railway-desk/internal/app"
	"github.com/Coderush2004/railway-desk/internal/domain"
)

// BookingService is the minimal interface needed by the booking endpoints.
type BookingService interface {
	BookTicket(ctx context.Context, in app.BookTicketInput) (domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID int) (domain.Booking, error)
}

// HandleBookings returns an HTTP handler for booking tickets and listing
// active bookings.
func HandleBookings(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			bookings, err := svc.ListBookings(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]bookingResponse, 0, len(bookings))
			for _, b := range bookings {
				resp = append(resp, newBookingResponse(b))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
		case http.MethodPost:
			var req createBookingRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}
			if err := validate.Struct(req); err != nil {
				writeError(w, http.StatusBadRequest, codeValidationFailed, validationMessage(err))
				return
			}

			travelDate, err := domain.ParseTravelDate(req.TravelDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidTravelDate, err.Error())
				return
			}

			booking, err := svc.BookTicket(r.Context(), app.BookTicketInput{
				TrainNo:       req.TrainNo,
				PassengerName: req.PassengerName,
				Age:           req.Age,
				Gender:        req.Gender,
				Seats:         req.Seats,
				TravelDate:    travelDate,
			})
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTrainNotFound):
					writeError(w, http.StatusNotFound, codeTrainNotFound, err.Error())
				case errors.Is(err, domain.ErrInsufficientSeats):
					writeError(w, http.StatusConflict, codeInsufficientSeats, err.Error())
				case errors.Is(err, domain.ErrInvalidDate):
					writeError(w, http.StatusBadRequest, codeInvalidTravelDate, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newBookingResponse(booking))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleBookingByID returns an HTTP handler for cancelling a booking. The
// removed booking is echoed back for confirmation display.
func HandleBookingByID(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID, ok := parseBookingPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		booking, err := svc.CancelBooking(r.Context(), bookingID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrBookingNotFound):
				writeError(w, http.StatusNotFound, codeBookingNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newBookingResponse(booking))
	}
}

func parseBookingPath(path string) (int, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] != "bookings" {
		return 0, false
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

type createBookingRequest struct {
	TrainNo       int    `json:"train_no" validate:"required,gt=0"`
	PassengerName string `json:"passenger_name" validate:"required"`
	Age           int    `json:"age" validate:"required,gt=0,lte=120"`
	Gender        string `json:"gender" validate:"required"`
	Seats         int    `json:"seats" validate:"required,gt=0"`
	TravelDate    string `json:"travel_date" validate:"required"`
}

type passengerResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

type bookingResponse struct {
	ID          int               `json:"id"`
	Passenger   passengerResponse `json:"passenger"`
	TrainNo     int               `json:"train_no"`
	SeatsBooked int               `json:"seats_booked"`
	TotalFare   float64           `json:"total_fare"`
	TravelDate  string            `json:"travel_date"`
	CreatedAt   time.Time         `json:"created_at"`
}

func newBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID: b.ID,
		Passenger: passengerResponse{
			ID:     b.Passenger.ID,
			Name:   b.Passenger.Name,
			Age:    b.Passenger.Age,
			Gender: b.Passenger.Gender,
		},
		TrainNo:     b.TrainNo,
		SeatsBooked: b.SeatsBooked,
		TotalFare:   b.TotalFare,
		TravelDate:  b.TravelDate.Format(domain.TravelDateLayout),
		CreatedAt:   b.CreatedAt,
	}
}
