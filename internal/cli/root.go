// Package cli wires the railway-desk command tree: an HTTP API server and
// an interactive desk console over the same in-memory core.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Coderush2004/railway-desk/internal/app"
	"github.com/Coderush2004/railway-desk/internal/clock"
	"github.com/Coderush2004/railway-desk/internal/config"
	"github.com/Coderush2004/railway-desk/internal/storage/memory"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	SeedPath string
}

// NewRootCommand creates the root command for the railway-desk CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "railway-desk",
		Short: "Railway ticketing desk",
		Long:  "In-memory train catalog, passenger registry and booking ledger,\nexposed as an HTTP API (serve) or an interactive desk menu (console).",
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.SeedPath, "seed", "", "YAML seed catalog (default: built-in trains)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewConsoleCommand(opts))

	return cmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// buildServices constructs the store and services and seeds the catalog.
func buildServices(ctx context.Context, seedPath string) (*app.CatalogService, *app.BookingService, error) {
	store := memory.NewStore()
	catalog := app.NewCatalogService(store)
	bookings := app.NewBookingService(store, clock.NewSystem())

	seed, err := config.LoadSeed(seedPath)
	if err != nil {
		return nil, nil, err
	}
	inputs := make([]app.AddTrainInput, 0, len(seed))
	for _, t := range seed {
		inputs = append(inputs, app.AddTrainInput{
			TrainNo:     t.TrainNo,
			Name:        t.Name,
			Source:      t.Source,
			Destination: t.Destination,
			TotalSeats:  t.TotalSeats,
			FarePerSeat: t.FarePerSeat,
		})
	}
	if err := catalog.SeedTrains(ctx, inputs); err != nil {
		return nil, nil, err
	}
	return catalog, bookings, nil
}
