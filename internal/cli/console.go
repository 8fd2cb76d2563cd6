package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Coderush2004/railway-desk/internal/app"
)

// NewConsoleCommand creates the console command: an interactive desk menu
// over the same core the API serves.
func NewConsoleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Run the interactive ticketing desk",
		Long: `Run the ticketing desk as an interactive terminal menu: add and view
trains, book tickets, view and cancel bookings. State lives only for the
lifetime of the session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			catalog, bookings, err := buildServices(ctx, rootOpts.SeedPath)
			if err != nil {
				return err
			}
			c := &console{
				prompt:   newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
				out:      cmd.OutOrStdout(),
				catalog:  catalog,
				bookings: bookings,
			}
			return c.run(ctx)
		},
	}
	return cmd
}

type console struct {
	prompt   *prompter
	out      io.Writer
	catalog  *app.CatalogService
	bookings *app.BookingService
}

const menu = `
Railway Ticketing Desk
 1) Add train
 2) View all trains
 3) Search train
 4) Book ticket
 5) View all bookings
 6) Cancel booking
 0) Exit
`

func (c *console) run(ctx context.Context) error {
	for {
		fmt.Fprint(c.out, menu)
		choice, err := c.prompt.line("Select")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.addTrain(ctx)
		case "2":
			err = c.viewTrains(ctx)
		case "3":
			err = c.searchTrain(ctx)
		case "4":
			err = c.bookTicket(ctx)
		case "5":
			err = c.viewBookings(ctx)
		case "6":
			err = c.cancelBooking(ctx)
		case "0":
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown option.")
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			// Operation errors are user-visible messages, never fatal.
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
}

func (c *console) addTrain(ctx context.Context) error {
	trainNo, err := c.prompt.intField("Train number")
	if err != nil {
		return err
	}
	name, err := c.prompt.line("Train name")
	if err != nil {
		return err
	}
	source, err := c.prompt.line("Source station")
	if err != nil {
		return err
	}
	destination, err := c.prompt.line("Destination station")
	if err != nil {
		return err
	}
	totalSeats, err := c.prompt.intField("Total seats")
	if err != nil {
		return err
	}
	fare, err := c.prompt.floatField("Fare per seat")
	if err != nil {
		return err
	}

	train, err := c.catalog.AddTrain(ctx, app.AddTrainInput{
		TrainNo:     trainNo,
		Name:        name,
		Source:      source,
		Destination: destination,
		TotalSeats:  totalSeats,
		FarePerSeat: fare,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Train added successfully!")
	fmt.Fprint(c.out, renderTrain(train))
	return nil
}

func (c *console) viewTrains(ctx context.Context) error {
	trains, err := c.catalog.ListTrains(ctx)
	if err != nil {
		return err
	}
	if len(trains) == 0 {
		fmt.Fprintln(c.out, "No trains available.")
		return nil
	}
	fmt.Fprint(c.out, renderTrainList(trains))
	return nil
}

func (c *console) searchTrain(ctx context.Context) error {
	trainNo, err := c.prompt.intField("Train number")
	if err != nil {
		return err
	}
	train, err := c.catalog.GetTrain(ctx, trainNo)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, renderTrain(train))
	return nil
}

func (c *console) bookTicket(ctx context.Context) error {
	trainNo, err := c.prompt.intField("Train number")
	if err != nil {
		return err
	}
	name, err := c.prompt.line("Passenger name")
	if err != nil {
		return err
	}
	age, err := c.prompt.intField("Age")
	if err != nil {
		return err
	}
	gender, err := c.prompt.line("Gender")
	if err != nil {
		return err
	}
	seats, err := c.prompt.intField("Number of seats")
	if err != nil {
		return err
	}
	travelDate, err := c.prompt.dateField("Travel date (YYYY-MM-DD)")
	if err != nil {
		return err
	}

	booking, err := c.bookings.BookTicket(ctx, app.BookTicketInput{
		TrainNo:       trainNo,
		PassengerName: name,
		Age:           age,
		Gender:        gender,
		Seats:         seats,
		TravelDate:    travelDate,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Booking successful!")
	fmt.Fprint(c.out, renderPassenger(booking.Passenger))
	fmt.Fprint(c.out, renderBooking(booking, c.trainName(ctx, booking.TrainNo)))
	return nil
}

func (c *console) viewBookings(ctx context.Context) error {
	bookings, err := c.bookings.ListBookings(ctx)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		fmt.Fprintln(c.out, "No bookings done yet.")
		return nil
	}
	fmt.Fprint(c.out, renderBookingList(bookings, func(trainNo int) string {
		return c.trainName(ctx, trainNo)
	}))
	return nil
}

func (c *console) cancelBooking(ctx context.Context) error {
	bookingID, err := c.prompt.intField("Booking ID")
	if err != nil {
		return err
	}
	booking, err := c.bookings.CancelBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Booking cancelled.")
	fmt.Fprint(c.out, renderBooking(booking, c.trainName(ctx, booking.TrainNo)))
	return nil
}

func (c *console) trainName(ctx context.Context, trainNo int) string {
	train, err := c.catalog.GetTrain(ctx, trainNo)
	if err != nil {
		return ""
	}
	return train.Name
}
