package cli

import (
	"fmt"
	"strings"

	"github.com/Coderush2004/railway-desk/internal/domain"
)

const listSeparator = "----------------------"

func renderTrain(t domain.Train) string {
	return fmt.Sprintf(
		"Train No: %d\nName: %s\nFrom: %s\nTo: %s\nTotal Seats: %d\nAvailable: %d\nFare/Seat: %s\n",
		t.TrainNo, t.Name, t.Source, t.Destination, t.TotalSeats, t.AvailableSeats, renderFare(t.FarePerSeat),
	)
}

func renderPassenger(p domain.Passenger) string {
	return fmt.Sprintf(
		"Passenger ID: %d\nName: %s\nAge: %d\nGender: %s\n",
		p.ID, p.Name, p.Age, p.Gender,
	)
}

// renderBooking shows a booking with the referenced train's name resolved
// by the caller (the booking itself holds only the train number).
func renderBooking(b domain.Booking, trainName string) string {
	return fmt.Sprintf(
		"Booking ID: %d\nPassenger: %s\nTrain: %d (%s)\nSeats: %d\nTotal Fare: %s\nTravel Date: %s\n",
		b.ID, b.Passenger.Name, b.TrainNo, trainName, b.SeatsBooked,
		renderFare(b.TotalFare), b.TravelDate.Format(domain.TravelDateLayout),
	)
}

func renderTrainList(trains []domain.Train) string {
	blocks := make([]string, 0, len(trains))
	for _, t := range trains {
		blocks = append(blocks, renderTrain(t))
	}
	return joinBlocks(blocks)
}

func renderBookingList(bookings []domain.Booking, trainName func(int) string) string {
	blocks := make([]string, 0, len(bookings))
	for _, b := range bookings {
		blocks = append(blocks, renderBooking(b, trainName(b.TrainNo)))
	}
	return joinBlocks(blocks)
}

func joinBlocks(blocks []string) string {
	var sb strings.Builder
	for _, block := range blocks {
		sb.WriteString(block)
		sb.WriteString("\n" + listSeparator + "\n")
	}
	return sb.String()
}

func renderFare(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
