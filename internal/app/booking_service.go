package app

import (
	"context"
	"time"

	"github.com/Coderush2004/railway-desk/internal/clock"
	"github.com/Coderush2004/railway-desk/internal/domain"
)

// BookingRepository is the combined registry/ledger surface the booking
// flow needs. WithTx must run fn as one atomic critical section so the
// check-then-reserve sequence cannot interleave with another caller.
type BookingRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetTrain(ctx context.Context, trainNo int) (domain.Train, error)
	ReserveSeats(ctx context.Context, trainNo, seats int) error
	ReleaseSeats(ctx context.Context, trainNo, seats int) error
	CreatePassenger(ctx context.Context, name string, age int, gender string) (domain.Passenger, error)
	GetPassenger(ctx context.Context, id int) (domain.Passenger, error)
	AppendBooking(ctx context.Context, b domain.Booking) (domain.Booking, error)
	GetBooking(ctx context.Context, id int) (domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	RemoveBooking(ctx context.Context, id int) (domain.Booking, error)
}

type BookingService struct {
	repo  BookingRepository
	clock clock.Clock
}

func NewBookingService(repo BookingRepository, clk clock.Clock) *BookingService {
	return &BookingService{
		repo:  repo,
		clock: clk,
	}
}

type BookTicketInput struct {
	TrainNo       int
	PassengerName string
	Age           int
	Gender        string
	Seats         int
	TravelDate    time.Time
}

// BookTicket reserves seats and appends a booking. Every precondition is
// checked before any mutation: a failure must not leave behind a passenger
// or a partial reservation.
func (s *BookingService) BookTicket(ctx context.Context, in BookTicketInput) (domain.Booking, error) {
	if in.TravelDate.IsZero() {
		return domain.Booking{}, domain.ErrInvalidDate
	}

	var result domain.Booking

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		train, err := s.repo.GetTrain(txCtx, in.TrainNo)
		if err != nil {
			return err
		}
		if in.Seats <= 0 || in.Seats > train.AvailableSeats {
			return domain.ErrInsufficientSeats
		}

		passenger, err := s.repo.CreatePassenger(txCtx, in.PassengerName, in.Age, in.Gender)
		if err != nil {
			return err
		}

		totalFare := float64(in.Seats) * train.FarePerSeat

		if err := s.repo.ReserveSeats(txCtx, in.TrainNo, in.Seats); err != nil {
			return err
		}

		booking, err := s.repo.AppendBooking(txCtx, domain.Booking{
			Passenger:   passenger,
			TrainNo:     in.TrainNo,
			SeatsBooked: in.Seats,
			TotalFare:   totalFare,
			TravelDate:  in.TravelDate,
			CreatedAt:   s.clock.Now(),
		})
		if err != nil {
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		return domain.Booking{}, err
	}
	return result, nil
}

// ListBookings returns active bookings in creation order.
func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.ListBookings(ctx)
}

// CancelBooking releases the booked seats back to the train, removes the
// booking from the ledger, and returns the removed record for confirmation.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID int) (domain.Booking, error) {
	var result domain.Booking

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		booking, err := s.repo.GetBooking(txCtx, bookingID)
		if err != nil {
			return err
		}
		if err := s.repo.ReleaseSeats(txCtx, booking.TrainNo, booking.SeatsBooked); err != nil {
			return err
		}
		removed, err := s.repo.RemoveBooking(txCtx, bookingID)
		if err != nil {
			return err
		}
		result = removed
		return nil
	})
	if err != nil {
		return domain.Booking{}, err
	}
	return result, nil
}

func (s *BookingService) GetPassenger(ctx context.Context, id int) (domain.Passenger, error) {
	return s.repo.GetPassenger(ctx, id)
}
