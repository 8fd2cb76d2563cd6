// Package memory holds the registries and the booking ledger as plain
// map-keyed in-process state. Nothing survives process exit.
package memory

import (
	"context"
	"sync"

	"github.com/Coderush2004/railway-desk/internal/domain"
)

// Store is the process-wide registry state: trains keyed by train number,
// passengers keyed by id, bookings in creation order. ID counters are
// monotonic and never reused.
type Store struct {
	mu sync.Mutex

	trains     map[int]*domain.Train
	passengers map[int]domain.Passenger
	bookings   []domain.Booking

	nextPassengerID int
	nextBookingID   int
}

const (
	firstPassengerID = 1
	firstBookingID   = 1000
)

func NewStore() *Store {
	return &Store{
		trains:          make(map[int]*domain.Train),
		passengers:      make(map[int]domain.Passenger),
		nextPassengerID: firstPassengerID,
		nextBookingID:   firstBookingID,
	}
}

type txKey struct{}

// WithTx runs fn as one critical section over the whole store. Book/cancel
// sequences are check-then-mutate, so with concurrent callers (the HTTP
// transport) the sequence must hold the lock end to end to keep the seat
// invariant. Nested calls reuse the outer section.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}

// lock acquires the store mutex unless the context already runs inside
// WithTx. Callers defer the returned func.
func (s *Store) lock(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
