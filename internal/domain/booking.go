package domain

import "time"

// Booking ties a passenger to seats on a train for a travel date. It owns
// the passenger record it created; the train is referenced by number only.
// TotalFare is fixed at booking time and never recomputed.
type Booking struct {
	ID          int
	Passenger   Passenger
	TrainNo     int
	SeatsBooked int
	TotalFare   float64
	TravelDate  time.Time
	CreatedAt   time.Time
}
