package domain

// Passenger is created as a side effect of a successful booking and is
// immutable afterwards. IDs are assigned by the registry, starting at 1.
type Passenger struct {
	ID     int
	Name   string
	Age    int
	Gender string
}
