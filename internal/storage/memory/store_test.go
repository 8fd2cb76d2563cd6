package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coderush2004/railway-desk/internal/domain"
)

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	ctx := context.Background()
	for _, tr := range []domain.Train{
		{TrainNo: 11001, Name: "Kolkata Express", Source: "Kolkata", Destination: "Delhi", TotalSeats: 100, FarePerSeat: 750.0},
		{TrainNo: 12002, Name: "Duronto Express", Source: "Mumbai", Destination: "Pune", TotalSeats: 80, FarePerSeat: 300.0},
		{TrainNo: 13003, Name: "Shatabdi Express", Source: "Chennai", Destination: "Bangalore", TotalSeats: 120, FarePerSeat: 600.0},
	} {
		require.NoError(t, s.InsertTrain(ctx, tr))
	}
	return s
}

func TestStore_InsertTrain(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("sets available to total", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.InsertTrain(ctx, domain.Train{TrainNo: 1, Name: "A", TotalSeats: 50}))

		got, err := s.GetTrain(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 50, got.AvailableSeats)
	})

	t.Run("rejects duplicate train number", func(t *testing.T) {
		s := newSeededStore(t)
		err := s.InsertTrain(ctx, domain.Train{TrainNo: 11001, Name: "Imposter", TotalSeats: 10})
		assert.ErrorIs(t, err, domain.ErrDuplicateTrainID)
	})
}

func TestStore_GetTrain_NotFound(t *testing.T) {
	t.Parallel()

	s := newSeededStore(t)
	_, err := s.GetTrain(context.Background(), 99999)
	assert.ErrorIs(t, err, domain.ErrTrainNotFound)
}

func TestStore_ListTrains_AscendingTrainNo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := NewStore()
	for _, no := range []int{13003, 11001, 12002} {
		require.NoError(t, s.InsertTrain(ctx, domain.Train{TrainNo: no, Name: "T", TotalSeats: 1}))
	}

	trains, err := s.ListTrains(ctx)
	require.NoError(t, err)
	require.Len(t, trains, 3)
	assert.Equal(t, 11001, trains[0].TrainNo)
	assert.Equal(t, 12002, trains[1].TrainNo)
	assert.Equal(t, 13003, trains[2].TrainNo)
}

func TestStore_ReserveSeats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("decrements available", func(t *testing.T) {
		s := newSeededStore(t)
		require.NoError(t, s.ReserveSeats(ctx, 11001, 2))

		got, err := s.GetTrain(ctx, 11001)
		require.NoError(t, err)
		assert.Equal(t, 98, got.AvailableSeats)
	})

	t.Run("rejects zero and negative counts", func(t *testing.T) {
		s := newSeededStore(t)
		assert.ErrorIs(t, s.ReserveSeats(ctx, 11001, 0), domain.ErrInsufficientSeats)
		assert.ErrorIs(t, s.ReserveSeats(ctx, 11001, -3), domain.ErrInsufficientSeats)

		got, _ := s.GetTrain(ctx, 11001)
		assert.Equal(t, 100, got.AvailableSeats)
	})

	t.Run("rejects over-capacity request without mutating", func(t *testing.T) {
		s := newSeededStore(t)
		assert.ErrorIs(t, s.ReserveSeats(ctx, 12002, 81), domain.ErrInsufficientSeats)

		got, _ := s.GetTrain(ctx, 12002)
		assert.Equal(t, 80, got.AvailableSeats)
	})

	t.Run("unknown train", func(t *testing.T) {
		s := newSeededStore(t)
		assert.ErrorIs(t, s.ReserveSeats(ctx, 1, 1), domain.ErrTrainNotFound)
	})
}

func TestStore_ReleaseSeats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("restores reserved seats", func(t *testing.T) {
		s := newSeededStore(t)
		require.NoError(t, s.ReserveSeats(ctx, 11001, 5))
		require.NoError(t, s.ReleaseSeats(ctx, 11001, 5))

		got, _ := s.GetTrain(ctx, 11001)
		assert.Equal(t, 100, got.AvailableSeats)
	})

	// Current policy has no clamp against TotalSeats; callers release the
	// exact reserved count. Pinned so a future clamp is a deliberate change.
	t.Run("no upper clamp", func(t *testing.T) {
		s := newSeededStore(t)
		require.NoError(t, s.ReleaseSeats(ctx, 11001, 7))

		got, _ := s.GetTrain(ctx, 11001)
		assert.Equal(t, 107, got.AvailableSeats)
	})
}

func TestStore_CreatePassenger_SequentialIDsFromOne(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := NewStore()
	p1, err := s.CreatePassenger(ctx, "Asha", 30, "F")
	require.NoError(t, err)
	p2, err := s.CreatePassenger(ctx, "Ravi", 40, "M")
	require.NoError(t, err)

	assert.Equal(t, 1, p1.ID)
	assert.Equal(t, 2, p2.ID)

	got, err := s.GetPassenger(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)

	_, err = s.GetPassenger(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrPassengerNotFound)
}

func TestStore_Bookings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("ids start at 1000 and are never reused", func(t *testing.T) {
		s := NewStore()
		b1, err := s.AppendBooking(ctx, domain.Booking{TrainNo: 11001, SeatsBooked: 2, TravelDate: date})
		require.NoError(t, err)
		assert.Equal(t, 1000, b1.ID)

		_, err = s.RemoveBooking(ctx, b1.ID)
		require.NoError(t, err)

		b2, err := s.AppendBooking(ctx, domain.Booking{TrainNo: 11001, SeatsBooked: 1, TravelDate: date})
		require.NoError(t, err)
		assert.Equal(t, 1001, b2.ID)
	})

	t.Run("list preserves creation order", func(t *testing.T) {
		s := NewStore()
		for i := 0; i < 3; i++ {
			_, err := s.AppendBooking(ctx, domain.Booking{TrainNo: 11001, SeatsBooked: 1, TravelDate: date})
			require.NoError(t, err)
		}

		bookings, err := s.ListBookings(ctx)
		require.NoError(t, err)
		require.Len(t, bookings, 3)
		assert.Equal(t, 1000, bookings[0].ID)
		assert.Equal(t, 1001, bookings[1].ID)
		assert.Equal(t, 1002, bookings[2].ID)
	})

	t.Run("remove hard-deletes", func(t *testing.T) {
		s := NewStore()
		b, err := s.AppendBooking(ctx, domain.Booking{TrainNo: 11001, SeatsBooked: 2, TravelDate: date})
		require.NoError(t, err)

		removed, err := s.RemoveBooking(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, removed.ID)

		_, err = s.GetBooking(ctx, b.ID)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)

		bookings, err := s.ListBookings(ctx)
		require.NoError(t, err)
		assert.Empty(t, bookings)
	})

	t.Run("remove unknown booking", func(t *testing.T) {
		s := NewStore()
		_, err := s.RemoveBooking(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})
}

func TestStore_WithTx_NestedCallsShareSection(t *testing.T) {
	t.Parallel()

	s := newSeededStore(t)
	err := s.WithTx(context.Background(), func(txCtx context.Context) error {
		if err := s.ReserveSeats(txCtx, 11001, 3); err != nil {
			return err
		}
		// Nested WithTx must not deadlock on the outer section.
		return s.WithTx(txCtx, func(inner context.Context) error {
			return s.ReleaseSeats(inner, 11001, 3)
		})
	})
	require.NoError(t, err)

	got, _ := s.GetTrain(context.Background(), 11001)
	assert.Equal(t, 100, got.AvailableSeats)
}
