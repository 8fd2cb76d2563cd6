package memory

import (
	"context"

	"github.com/Coderush2004/railway-desk/internal/domain"
)

// CreatePassenger assigns the next sequential id and inserts the record.
// IDs are registry-assigned, so duplicates are structurally impossible.
func (s *Store) CreatePassenger(ctx context.Context, name string, age int, gender string) (domain.Passenger, error) {
	defer s.lock(ctx)()

	p := domain.Passenger{
		ID:     s.nextPassengerID,
		Name:   name,
		Age:    age,
		Gender: gender,
	}
	s.nextPassengerID++
	s.passengers[p.ID] = p
	return p, nil
}

func (s *Store) GetPassenger(ctx context.Context, id int) (domain.Passenger, error) {
	defer s.lock(ctx)()

	p, ok := s.passengers[id]
	if !ok {
		return domain.Passenger{}, domain.ErrPassengerNotFound
	}
	return p, nil
}
