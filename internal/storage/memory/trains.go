package memory

import (
	"context"
	"sort"

	"github.com/Coderush2004/railway-desk/internal/domain"
)

// InsertTrain adds a train with available seats equal to the total.
// Fails with ErrDuplicateTrainID when the number is already registered.
func (s *Store) InsertTrain(ctx context.Context, t domain.Train) error {
	defer s.lock(ctx)()

	if _, ok := s.trains[t.TrainNo]; ok {
		return domain.ErrDuplicateTrainID
	}
	t.AvailableSeats = t.TotalSeats
	s.trains[t.TrainNo] = &t
	return nil
}

func (s *Store) GetTrain(ctx context.Context, trainNo int) (domain.Train, error) {
	defer s.lock(ctx)()

	t, ok := s.trains[trainNo]
	if !ok {
		return domain.Train{}, domain.ErrTrainNotFound
	}
	return *t, nil
}

// ListTrains returns all trains in ascending train number. Map iteration
// order is not stable, so the registry pins this order explicitly.
func (s *Store) ListTrains(ctx context.Context) ([]domain.Train, error) {
	defer s.lock(ctx)()

	out := make([]domain.Train, 0, len(s.trains))
	for _, t := range s.trains {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TrainNo < out[j].TrainNo })
	return out, nil
}

// ReserveSeats decrements availability by seats. The caller must have
// checked 0 < seats <= available; the store re-checks and fails with
// ErrInsufficientSeats so a missed check cannot drive availability negative.
func (s *Store) ReserveSeats(ctx context.Context, trainNo, seats int) error {
	defer s.lock(ctx)()

	t, ok := s.trains[trainNo]
	if !ok {
		return domain.ErrTrainNotFound
	}
	if seats <= 0 || seats > t.AvailableSeats {
		return domain.ErrInsufficientSeats
	}
	t.AvailableSeats -= seats
	return nil
}

// ReleaseSeats increments availability by seats. There is no clamp against
// TotalSeats: cancellation releases exactly the previously reserved count,
// so the gap stays latent. A clamp would mask a mismatched release instead
// of surfacing it.
func (s *Store) ReleaseSeats(ctx context.Context, trainNo, seats int) error {
	defer s.lock(ctx)()

	t, ok := s.trains[trainNo]
	if !ok {
		return domain.ErrTrainNotFound
	}
	t.AvailableSeats += seats
	return nil
}
