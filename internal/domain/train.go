package domain

// Train is a sellable service between two stations with aggregate seat
// inventory (no per-seat assignment).
type Train struct {
	TrainNo        int
	Name           string
	Source         string
	Destination    string
	TotalSeats     int
	AvailableSeats int
	FarePerSeat    float64
}
