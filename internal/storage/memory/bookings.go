package memory

import (
	"context"

	"github.com/Coderush2004/railway-desk/internal/domain"
)

// AppendBooking assigns the next booking id (starting at 1000, never
// reused even after cancellation) and appends the booking to the ledger.
func (s *Store) AppendBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	defer s.lock(ctx)()

	b.ID = s.nextBookingID
	s.nextBookingID++
	s.bookings = append(s.bookings, b)
	return b, nil
}

func (s *Store) GetBooking(ctx context.Context, id int) (domain.Booking, error) {
	defer s.lock(ctx)()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Booking{}, domain.ErrBookingNotFound
}

// ListBookings returns active bookings in creation order.
func (s *Store) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	defer s.lock(ctx)()

	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

// RemoveBooking hard-deletes the booking and returns the removed record.
// No history is retained.
func (s *Store) RemoveBooking(ctx context.Context, id int) (domain.Booking, error) {
	defer s.lock(ctx)()

	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return b, nil
		}
	}
	return domain.Booking{}, domain.ErrBookingNotFound
}
